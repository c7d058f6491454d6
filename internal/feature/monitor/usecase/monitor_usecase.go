// Package usecase implements the standalone monitoring loop: fetch the
// current price, evaluate the alert rules and deliver every trigger.
package usecase

import (
	"context"
	"log/slog"

	"xrp_alert_backend/internal/feature/alerts/domain/entity"
)

// PriceFetcher fetches the current price from the market source.
type PriceFetcher interface {
	FetchPrice(ctx context.Context) (float64, error)
}

// AlertChecker evaluates the configured alert rules against a price.
type AlertChecker interface {
	Check(price float64) []entity.TriggeredAlert
}

// Notifier delivers a triggered-alert message to an external channel.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// TriggerRecorder persists a triggered alert to the audit log.
type TriggerRecorder interface {
	Record(ctx context.Context, trigger entity.TriggeredAlert) error
}

// Watcher runs one monitoring tick at a time. Delivery and recording failures
// are logged and never abort the tick.
type Watcher struct {
	price    PriceFetcher
	alerts   AlertChecker
	notifier Notifier
	recorder TriggerRecorder
}

// NewWatcher creates a new Watcher with the given collaborators.
func NewWatcher(price PriceFetcher, alerts AlertChecker, notifier Notifier, recorder TriggerRecorder) *Watcher {
	return &Watcher{price: price, alerts: alerts, notifier: notifier, recorder: recorder}
}

// Poll performs a single monitoring tick. When the price cannot be fetched
// the tick is skipped; the alert rules are left untouched either way.
func (w *Watcher) Poll(ctx context.Context) {
	price, err := w.price.FetchPrice(ctx)
	if err != nil {
		slog.Warn("poll skipped: price unavailable", "error", err)
		return
	}

	triggered := w.alerts.Check(price)
	for _, tr := range triggered {
		if err := w.notifier.Notify(ctx, tr.Message); err != nil {
			slog.Error("send notification failed", "error", err, "alert_id", tr.AlertID)
		}
		if err := w.recorder.Record(ctx, tr); err != nil {
			slog.Error("record trigger failed", "error", err, "alert_id", tr.AlertID)
		}
	}

	if len(triggered) > 0 {
		slog.Info("alerts triggered", "count", len(triggered), "price", price)
	} else {
		slog.Debug("no alerts triggered", "price", price)
	}
}

package adapters

import (
	"context"

	"xrp_alert_backend/internal/feature/alerts/domain/entity"
)

// NoopRecorder is a no-op TriggerRecorder used when no trigger database is configured.
type NoopRecorder struct{}

// NewNoopRecorder creates a new NoopRecorder.
func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

// Record discards the trigger.
func (*NoopRecorder) Record(_ context.Context, _ entity.TriggeredAlert) error { return nil }

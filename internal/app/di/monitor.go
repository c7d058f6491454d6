package di

import (
	"time"

	"gorm.io/gorm"

	"xrp_alert_backend/internal/feature/monitor/adapters"
	monitorusecase "xrp_alert_backend/internal/feature/monitor/usecase"
	infrahttp "xrp_alert_backend/internal/platform/http"
	"xrp_alert_backend/internal/platform/notify"
)

// NewNotifier creates a Notifier implementation.
// If Telegram credentials are configured, it returns a Telegram-backed
// implementation with exponential backoff retry. Otherwise, notifications
// are discarded.
func NewNotifier() monitorusecase.Notifier {
	cfg := notify.LoadConfig()
	if cfg.BotToken == "" || cfg.ChatID == "" {
		return notify.NoopNotifier{}
	}
	tg := notify.NewTelegramNotifier(cfg, infrahttp.NewHTTPClient(30*time.Second))
	return notify.NewRetryNotifier(tg, notify.DefaultMaxRetries)
}

// NewTriggerRecorder creates a TriggerRecorder implementation.
// If a trigger database is available, it returns a GORM-backed implementation.
// Otherwise, triggers are not recorded.
func NewTriggerRecorder(db *gorm.DB) monitorusecase.TriggerRecorder {
	if db == nil {
		return adapters.NewNoopRecorder()
	}
	return adapters.NewTriggerGorm(db)
}

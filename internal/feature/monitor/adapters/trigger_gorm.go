package adapters

import (
	"context"

	"gorm.io/gorm"

	"xrp_alert_backend/internal/feature/alerts/domain/entity"
	"xrp_alert_backend/internal/feature/monitor/usecase"
)

// triggerGorm is a GORM implementation of the TriggerRecorder interface.
type triggerGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure triggerGorm implements TriggerRecorder.
var _ usecase.TriggerRecorder = (*triggerGorm)(nil)

// NewTriggerGorm creates a new instance of triggerGorm.
func NewTriggerGorm(db *gorm.DB) *triggerGorm {
	return &triggerGorm{db: db}
}

// Record persists a triggered alert to the audit log.
func (r *triggerGorm) Record(ctx context.Context, tr entity.TriggeredAlert) error {
	model := TriggerModelFromEntity(tr)
	return r.db.WithContext(ctx).Create(model).Error
}

// Package adapters provides trigger-log implementations for the monitor feature.
package adapters

import (
	"time"

	"xrp_alert_backend/internal/feature/alerts/domain/entity"
)

// TriggerModel is the GORM model for the triggered_alerts table.
type TriggerModel struct {
	ID          uint      `gorm:"primaryKey"`
	AlertID     string    `gorm:"size:36;index"`
	Symbol      string    `gorm:"size:16;not null"`
	Message     string    `gorm:"size:256"`
	Price       float64   `gorm:"not null"`
	Threshold   float64   `gorm:"not null"`
	TriggeredAt time.Time `gorm:"index;not null"`
}

// TableName returns the table name for GORM.
func (TriggerModel) TableName() string {
	return "triggered_alerts"
}

// TriggerModelFromEntity converts a triggered alert to its GORM model.
func TriggerModelFromEntity(tr entity.TriggeredAlert) *TriggerModel {
	return &TriggerModel{
		AlertID:     tr.AlertID,
		Symbol:      tr.Symbol,
		Message:     tr.Message,
		Price:       tr.Price,
		Threshold:   tr.Threshold,
		TriggeredAt: tr.Timestamp,
	}
}

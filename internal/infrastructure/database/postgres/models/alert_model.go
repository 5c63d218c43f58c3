package models

import "time"

// AlertModel represents the database model for alerts
type AlertModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	AlertType  string    `gorm:"type:varchar(32);not null;index"`
	Severity   string    `gorm:"type:varchar(16);not null"`
	EntityType string    `gorm:"type:varchar(32);not null;index:idx_alerts_entity"`
	EntityID   int64     `gorm:"not null;index:idx_alerts_entity"`
	Message    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

func (AlertModel) TableName() string {
	return "alerts"
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics-inventory-api/internal/domain/alert"
	"logistics-inventory-api/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

type AlertRepository struct {
	db *DB
}

func NewAlertRepository(db *DB) *AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) Create(ctx context.Context, a *alert.Alert) error {
	a.CreatedAt = time.Now()

	dbModel := toAlertModel(a)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}

	a.ID = dbModel.ID
	return nil
}

func (r *AlertRepository) GetByID(ctx context.Context, id int64) (*alert.Alert, error) {
	var dbModel models.AlertModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, alert.ErrAlertNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}

	return toAlertEntity(&dbModel), nil
}

func (r *AlertRepository) List(ctx context.Context) ([]*alert.Alert, error) {
	var dbModels []models.AlertModel
	if err := r.db.DB.WithContext(ctx).Order("created_at DESC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	alerts := make([]*alert.Alert, len(dbModels))
	for i := range dbModels {
		alerts[i] = toAlertEntity(&dbModels[i])
	}
	return alerts, nil
}

func (r *AlertRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.AlertModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete alert: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return alert.ErrAlertNotFound
	}

	return nil
}

func (r *AlertRepository) FindByTypeAndEntity(ctx context.Context, alertType alert.Type, entityType alert.EntityType, entityID int64) (*alert.Alert, error) {
	var dbModel models.AlertModel
	err := r.db.DB.WithContext(ctx).
		Where("alert_type = ? AND entity_type = ? AND entity_id = ?", string(alertType), string(entityType), entityID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, alert.ErrAlertNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find alert: %w", err)
	}

	return toAlertEntity(&dbModel), nil
}

func (r *AlertRepository) DeleteByTypeAndEntity(ctx context.Context, alertType alert.Type, entityType alert.EntityType, entityID int64) error {
	err := r.db.DB.WithContext(ctx).
		Where("alert_type = ? AND entity_type = ? AND entity_id = ?", string(alertType), string(entityType), entityID).
		Delete(&models.AlertModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete alert by entity: %w", err)
	}

	return nil
}

func (r *AlertRepository) DeleteByTypeOlderThan(ctx context.Context, alertType alert.Type, cutoff time.Time) (int64, error) {
	result := r.db.DB.WithContext(ctx).
		Where("alert_type = ? AND created_at < ?", string(alertType), cutoff).
		Delete(&models.AlertModel{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge alerts: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func toAlertModel(a *alert.Alert) *models.AlertModel {
	return &models.AlertModel{
		ID:         a.ID,
		AlertType:  string(a.AlertType),
		Severity:   string(a.Severity),
		EntityType: string(a.EntityType),
		EntityID:   a.EntityID,
		Message:    a.Message,
		CreatedAt:  a.CreatedAt,
	}
}

func toAlertEntity(m *models.AlertModel) *alert.Alert {
	return &alert.Alert{
		ID:         m.ID,
		AlertType:  alert.Type(m.AlertType),
		Severity:   alert.Severity(m.Severity),
		EntityType: alert.EntityType(m.EntityType),
		EntityID:   m.EntityID,
		Message:    m.Message,
		CreatedAt:  m.CreatedAt,
	}
}

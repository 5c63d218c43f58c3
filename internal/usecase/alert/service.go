package alert

import (
	"context"
	"errors"
	"time"

	domainAlert "logistics-inventory-api/internal/domain/alert"
	"logistics-inventory-api/internal/logger"

	"go.uber.org/zap"
)

// Service implements alert use cases. Lifecycle services raise and resolve
// alerts through it; the HTTP layer lists and dismisses them.
type Service struct {
	alertRepo domainAlert.Repository
}

func NewService(alertRepo domainAlert.Repository) *Service {
	return &Service{alertRepo: alertRepo}
}

// Raise creates an alert unless one with the same (type, entity) already
// exists, so a condition that persists across sweeps produces one alert,
// not one per sweep.
func (s *Service) Raise(ctx context.Context, alertType domainAlert.Type, severity domainAlert.Severity, entityType domainAlert.EntityType, entityID int64, message string) error {
	_, err := s.alertRepo.FindByTypeAndEntity(ctx, alertType, entityType, entityID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainAlert.ErrAlertNotFound) {
		return err
	}

	a := &domainAlert.Alert{
		AlertType:  alertType,
		Severity:   severity,
		EntityType: entityType,
		EntityID:   entityID,
		Message:    message,
	}
	if err := s.alertRepo.Create(ctx, a); err != nil {
		return err
	}

	logger.Info("Alert raised",
		zap.String("alert_type", string(alertType)),
		zap.String("entity_type", string(entityType)),
		zap.Int64("entity_id", entityID),
	)
	return nil
}

// Resolve removes the alert for (type, entity) if one exists. Resolving a
// condition that never alerted is a no-op.
func (s *Service) Resolve(ctx context.Context, alertType domainAlert.Type, entityType domainAlert.EntityType, entityID int64) error {
	return s.alertRepo.DeleteByTypeAndEntity(ctx, alertType, entityType, entityID)
}

func (s *Service) ListAlerts(ctx context.Context) ([]*AlertResponse, error) {
	alerts, err := s.alertRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*AlertResponse, len(alerts))
	for i, a := range alerts {
		responses[i] = toAlertResponse(a)
	}
	return responses, nil
}

func (s *Service) GetAlert(ctx context.Context, id int64) (*AlertResponse, error) {
	a, err := s.alertRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAlertResponse(a), nil
}

func (s *Service) DeleteAlert(ctx context.Context, id int64) error {
	return s.alertRepo.Delete(ctx, id)
}

// PurgeTerminalEvents removes event alerts older than maxAge. Condition
// alerts (low stock, shipment delayed) are resolved by the code that
// clears the condition and are never purged by age. Shortage alerts are
// included: the failed start they describe is a past event, not a live
// condition.
func (s *Service) PurgeTerminalEvents(ctx context.Context, maxAge time.Duration) error {
	cutoff := time.Now().Add(-maxAge)
	purgeable := []domainAlert.Type{
		domainAlert.TypeShipmentCancelled,
		domainAlert.TypeProductionCancelled,
		domainAlert.TypeProductionReversed,
		domainAlert.TypeRawMaterialShortage,
	}

	var total int64
	for _, alertType := range purgeable {
		n, err := s.alertRepo.DeleteByTypeOlderThan(ctx, alertType, cutoff)
		if err != nil {
			return err
		}
		total += n
	}

	if total > 0 {
		logger.Info("Purged stale alerts", zap.Int64("count", total))
	}
	return nil
}

package alert

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, alert *Alert) error
	GetByID(ctx context.Context, id int64) (*Alert, error)
	List(ctx context.Context) ([]*Alert, error)
	Delete(ctx context.Context, id int64) error

	// FindByTypeAndEntity returns the existing alert for (type, entity) or
	// ErrAlertNotFound; used for per-entity deduplication.
	FindByTypeAndEntity(ctx context.Context, alertType Type, entityType EntityType, entityID int64) (*Alert, error)
	DeleteByTypeAndEntity(ctx context.Context, alertType Type, entityType EntityType, entityID int64) error
	DeleteByTypeOlderThan(ctx context.Context, alertType Type, cutoff time.Time) (int64, error)
}

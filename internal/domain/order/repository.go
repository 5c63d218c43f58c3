package order

import (
	"context"
	"time"

	"logistics-inventory-api/internal/lifecycle"
)

type Repository interface {
	Create(ctx context.Context, order *ProductionOrder) error
	GetByID(ctx context.Context, id int64) (*ProductionOrder, error)
	List(ctx context.Context) ([]*ProductionOrder, error)

	UpdateStatus(ctx context.Context, update StatusUpdate) error

	// Scheduler queries.
	ListDueToStart(ctx context.Context, today time.Time) ([]*ProductionOrder, error)
	ListDueToComplete(ctx context.Context, today time.Time) ([]*ProductionOrder, error)
}

// StatusUpdate writes a status change plus the date fields the transition
// maintains. Optional fields are applied only when non-nil.
type StatusUpdate struct {
	OrderID               int64
	Status                lifecycle.Status
	StartDate             *time.Time
	PlannedCompletionDate *time.Time
	ActualCompletionDate  *time.Time
	ClearPlannedDate      bool
}

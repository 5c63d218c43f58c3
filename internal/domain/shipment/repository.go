package shipment

import (
	"context"
	"time"

	"logistics-inventory-api/internal/lifecycle"
)

// Repository defines persistence operations for shipments.
type Repository interface {
	Create(ctx context.Context, shipment *Shipment) error
	GetByID(ctx context.Context, id int64) (*Shipment, error)
	List(ctx context.Context, direction *Direction) ([]*Shipment, error)

	UpdateStatus(ctx context.Context, update StatusUpdate) error

	// Scheduler queries: shipments whose dates make them due for an
	// automatic transition.
	ListDueForTransit(ctx context.Context, today time.Time) ([]*Shipment, error)
	ListOverdue(ctx context.Context, today time.Time) ([]*Shipment, error)

	// NextReferenceSequence returns the next per-day sequence number used
	// to build reference codes.
	NextReferenceSequence(ctx context.Context, day time.Time) (int, error)
}

// StatusUpdate is the single write shape for status transitions. Optional
// fields are applied only when non-nil, so a transition writes exactly the
// fields its rules touch.
type StatusUpdate struct {
	ShipmentID          int64
	Status              lifecycle.Status
	ActualArrivalDate   *time.Time
	EstimateArrivalDate *time.Time
	DepartureDate       *time.Time
}

package order

import (
	"time"

	"logistics-inventory-api/internal/lifecycle"

	"logistics-inventory-api/internal/domain/catalog"
)

// ProductionOrder turns raw materials into a finished product. Materials
// are reserved when the order starts and either consumed on completion or
// returned on cancellation; a completed order can be compensated with the
// reverse action.
type ProductionOrder struct {
	ID            int64
	ReferenceCode string
	Status        lifecycle.Status

	ProductID       int64
	ProductQuantity float64

	// At least one line is required to create an order.
	Materials []MaterialLine

	CreationDate          time.Time
	StartDate             *time.Time
	PlannedCompletionDate *time.Time
	ActualCompletionDate  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations (for joins)
	Product *catalog.Product
}

// MaterialLine is one raw-material requirement of a production order.
type MaterialLine struct {
	ID            int64
	OrderID       int64
	RawMaterialID int64
	Quantity      float64

	RawMaterial *catalog.RawMaterial
}

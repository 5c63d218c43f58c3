package shipment

import (
	"time"

	"logistics-inventory-api/internal/lifecycle"

	"logistics-inventory-api/internal/domain/catalog"
)

// Direction tells whether a shipment brings raw materials in from a
// supplier or sends finished products out to a customer.
type Direction string

const (
	DirectionInbound  Direction = "INBOUND"
	DirectionOutbound Direction = "OUTBOUND"
)

// TransportMode drives the default arrival estimate at creation.
type TransportMode string

const (
	ModeTruck TransportMode = "TRUCK"
	ModeSea   TransportMode = "SEA"
	ModeAir   TransportMode = "AIR"
)

// Shipment is an inbound or outbound movement of goods. After creation the
// only mutable field is the status (plus the dates the transitions
// themselves maintain); everything else is fixed at creation time.
type Shipment struct {
	ID            int64
	ReferenceCode string

	Direction     Direction
	TransportMode TransportMode
	Status        lifecycle.Status
	Quantity      float64

	// Material link: product for OUTBOUND, raw material for INBOUND.
	ProductID     *int64
	RawMaterialID *int64

	// Counterparty: supplier for INBOUND, free-text customer for OUTBOUND.
	SupplierID   *int64
	CustomerName *string

	DepartureDate       time.Time
	EstimateArrivalDate time.Time
	// Set exactly when the shipment reaches DELIVERED, never otherwise.
	ActualArrivalDate *time.Time

	TrackingNumber *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations (for joins)
	Product     *catalog.Product
	RawMaterial *catalog.RawMaterial
	Supplier    *catalog.Supplier
}

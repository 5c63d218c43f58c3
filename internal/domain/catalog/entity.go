package catalog

import "time"

// Product is a finished good the plant produces and ships outbound.
type Product struct {
	ID          int64
	Name        string
	Description string
	Unit        string
	SKU         string

	// Minutes of production time per unit; used to derive planned
	// completion dates for production orders.
	ProductionDurationMinutes *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RawMaterial is an input material received through inbound shipments and
// consumed by production orders.
type RawMaterial struct {
	ID          int64
	Name        string
	Description string
	Unit        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Supplier is the counterparty of inbound shipments.
type Supplier struct {
	ID           int64
	SupplierName string
	Email        string
	Phone        string
	Address      string
	City         string
	Country      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

package inventory

import "time"

// ProductInventory tracks on-hand quantity of a finished product.
// A reorder threshold of zero disables low-stock tracking for the row.
type ProductInventory struct {
	ID               int64
	ProductID        int64
	Quantity         float64
	ReorderThreshold float64
	LastUpdated      time.Time
}

// RawMaterialInventory tracks on-hand quantity of a raw material.
type RawMaterialInventory struct {
	ID               int64
	RawMaterialID    int64
	Quantity         float64
	ReorderThreshold float64
	LastUpdated      time.Time
}

// LowStock reports whether the row is at or below its reorder threshold.
// Rows with no threshold are never low.
func (i *ProductInventory) LowStock() bool {
	return i.ReorderThreshold > 0 && i.Quantity <= i.ReorderThreshold
}

func (i *RawMaterialInventory) LowStock() bool {
	return i.ReorderThreshold > 0 && i.Quantity <= i.ReorderThreshold
}

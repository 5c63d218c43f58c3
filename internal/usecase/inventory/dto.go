package inventory

import (
	"time"

	domainInventory "logistics-inventory-api/internal/domain/inventory"
)

type CreateProductInventoryRequest struct {
	ProductID        int64   `json:"productId" validate:"required,gt=0"`
	Quantity         float64 `json:"quantity" validate:"omitempty,gte=0"`
	ReorderThreshold float64 `json:"reorderThreshold" validate:"omitempty,gte=0"`
}

type CreateRawMaterialInventoryRequest struct {
	RawMaterialID    int64   `json:"rawMaterialId" validate:"required,gt=0"`
	Quantity         float64 `json:"quantity" validate:"omitempty,gte=0"`
	ReorderThreshold float64 `json:"reorderThreshold" validate:"omitempty,gte=0"`
}

type UpdateInventoryRequest struct {
	Quantity         float64 `json:"quantity" validate:"gte=0"`
	ReorderThreshold float64 `json:"reorderThreshold" validate:"gte=0"`
}

type ProductInventoryResponse struct {
	ID               int64     `json:"id"`
	ProductID        int64     `json:"productId"`
	Quantity         float64   `json:"quantity"`
	ReorderThreshold float64   `json:"reorderThreshold"`
	LowStock         bool      `json:"lowStock"`
	LastUpdated      time.Time `json:"lastUpdated"`
}

type RawMaterialInventoryResponse struct {
	ID               int64     `json:"id"`
	RawMaterialID    int64     `json:"rawMaterialId"`
	Quantity         float64   `json:"quantity"`
	ReorderThreshold float64   `json:"reorderThreshold"`
	LowStock         bool      `json:"lowStock"`
	LastUpdated      time.Time `json:"lastUpdated"`
}

func toProductInventoryResponse(inv *domainInventory.ProductInventory) *ProductInventoryResponse {
	return &ProductInventoryResponse{
		ID:               inv.ID,
		ProductID:        inv.ProductID,
		Quantity:         inv.Quantity,
		ReorderThreshold: inv.ReorderThreshold,
		LowStock:         inv.LowStock(),
		LastUpdated:      inv.LastUpdated,
	}
}

func toRawMaterialInventoryResponse(inv *domainInventory.RawMaterialInventory) *RawMaterialInventoryResponse {
	return &RawMaterialInventoryResponse{
		ID:               inv.ID,
		RawMaterialID:    inv.RawMaterialID,
		Quantity:         inv.Quantity,
		ReorderThreshold: inv.ReorderThreshold,
		LowStock:         inv.LowStock(),
		LastUpdated:      inv.LastUpdated,
	}
}

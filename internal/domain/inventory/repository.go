package inventory

import "context"

type ProductInventoryRepository interface {
	Create(ctx context.Context, inv *ProductInventory) error
	GetByID(ctx context.Context, id int64) (*ProductInventory, error)
	GetByProductID(ctx context.Context, productID int64) (*ProductInventory, error)
	Update(ctx context.Context, inv *ProductInventory) error
	List(ctx context.Context) ([]*ProductInventory, error)

	// Adjust atomically applies delta to the row's quantity and returns the
	// updated row. A negative delta that would drive the quantity below zero
	// fails with ErrInsufficientStock and leaves the row unchanged.
	Adjust(ctx context.Context, productID int64, delta float64) (*ProductInventory, error)
}

type RawMaterialInventoryRepository interface {
	Create(ctx context.Context, inv *RawMaterialInventory) error
	GetByID(ctx context.Context, id int64) (*RawMaterialInventory, error)
	GetByRawMaterialID(ctx context.Context, rawMaterialID int64) (*RawMaterialInventory, error)
	Update(ctx context.Context, inv *RawMaterialInventory) error
	List(ctx context.Context) ([]*RawMaterialInventory, error)

	Adjust(ctx context.Context, rawMaterialID int64, delta float64) (*RawMaterialInventory, error)
}

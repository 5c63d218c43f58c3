package catalog

import "context"

type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id int64) (*Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*Product, error)
}

type RawMaterialRepository interface {
	Create(ctx context.Context, material *RawMaterial) error
	GetByID(ctx context.Context, id int64) (*RawMaterial, error)
	Update(ctx context.Context, material *RawMaterial) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*RawMaterial, error)
}

type SupplierRepository interface {
	Create(ctx context.Context, supplier *Supplier) error
	GetByID(ctx context.Context, id int64) (*Supplier, error)
	Update(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*Supplier, error)
}

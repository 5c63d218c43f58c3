package catalog

import (
	"time"

	domainCatalog "logistics-inventory-api/internal/domain/catalog"
)

type CreateProductRequest struct {
	Name                      string `json:"name" validate:"required,min=1,max=255"`
	Description               string `json:"description" validate:"omitempty,max=2000"`
	Unit                      string `json:"unit" validate:"required,min=1,max=32"`
	SKU                       string `json:"sku" validate:"required,min=1,max=64"`
	ProductionDurationMinutes *int64 `json:"productionDurationMinutes" validate:"omitempty,gt=0"`
}

type UpdateProductRequest struct {
	Name                      string `json:"name" validate:"required,min=1,max=255"`
	Description               string `json:"description" validate:"omitempty,max=2000"`
	Unit                      string `json:"unit" validate:"required,min=1,max=32"`
	SKU                       string `json:"sku" validate:"required,min=1,max=64"`
	ProductionDurationMinutes *int64 `json:"productionDurationMinutes" validate:"omitempty,gt=0"`
}

type ProductResponse struct {
	ID                        int64     `json:"id"`
	Name                      string    `json:"name"`
	Description               string    `json:"description"`
	Unit                      string    `json:"unit"`
	SKU                       string    `json:"sku"`
	ProductionDurationMinutes *int64    `json:"productionDurationMinutes,omitempty"`
	CreatedAt                 time.Time `json:"createdAt"`
	UpdatedAt                 time.Time `json:"updatedAt"`
}

type CreateRawMaterialRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Unit        string `json:"unit" validate:"required,min=1,max=32"`
}

type RawMaterialResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Unit        string    `json:"unit"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateSupplierRequest struct {
	SupplierName string `json:"supplierName" validate:"required,min=1,max=255"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"omitempty,max=32"`
	Address      string `json:"address" validate:"omitempty,max=500"`
	City         string `json:"city" validate:"omitempty,max=128"`
	Country      string `json:"country" validate:"omitempty,max=128"`
}

type SupplierResponse struct {
	ID           int64     `json:"id"`
	SupplierName string    `json:"supplierName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toProductResponse(p *domainCatalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:                        p.ID,
		Name:                      p.Name,
		Description:               p.Description,
		Unit:                      p.Unit,
		SKU:                       p.SKU,
		ProductionDurationMinutes: p.ProductionDurationMinutes,
		CreatedAt:                 p.CreatedAt,
		UpdatedAt:                 p.UpdatedAt,
	}
}

func toRawMaterialResponse(m *domainCatalog.RawMaterial) *RawMaterialResponse {
	return &RawMaterialResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Unit:        m.Unit,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toSupplierResponse(s *domainCatalog.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:           s.ID,
		SupplierName: s.SupplierName,
		Email:        s.Email,
		Phone:        s.Phone,
		Address:      s.Address,
		City:         s.City,
		Country:      s.Country,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

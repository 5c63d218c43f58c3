package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics-inventory-api/internal/domain/catalog"
	"logistics-inventory-api/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

type ProductRepository struct {
	db *DB
}

func NewProductRepository(db *DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *catalog.Product) error {
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()

	dbModel := toProductModel(p)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return catalog.ErrDuplicateSKU
		}
		return fmt.Errorf("failed to create product: %w", err)
	}

	p.ID = dbModel.ID
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*catalog.Product, error) {
	var dbModel models.ProductModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return toProductEntity(&dbModel), nil
}

func (r *ProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	p.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":                        p.Name,
			"description":                 p.Description,
			"unit":                        p.Unit,
			"sku":                         p.SKU,
			"production_duration_minutes": p.ProductionDurationMinutes,
			"updated_at":                  p.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.ProductModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*catalog.Product, error) {
	var dbModels []models.ProductModel
	if err := r.db.DB.WithContext(ctx).Order("name ASC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*catalog.Product, len(dbModels))
	for i := range dbModels {
		products[i] = toProductEntity(&dbModels[i])
	}
	return products, nil
}

type RawMaterialRepository struct {
	db *DB
}

func NewRawMaterialRepository(db *DB) *RawMaterialRepository {
	return &RawMaterialRepository{db: db}
}

func (r *RawMaterialRepository) Create(ctx context.Context, m *catalog.RawMaterial) error {
	m.CreatedAt = time.Now()
	m.UpdatedAt = time.Now()

	dbModel := toRawMaterialModel(m)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create raw material: %w", err)
	}

	m.ID = dbModel.ID
	return nil
}

func (r *RawMaterialRepository) GetByID(ctx context.Context, id int64) (*catalog.RawMaterial, error) {
	var dbModel models.RawMaterialModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrRawMaterialNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get raw material: %w", err)
	}

	return toRawMaterialEntity(&dbModel), nil
}

func (r *RawMaterialRepository) Update(ctx context.Context, m *catalog.RawMaterial) error {
	m.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.RawMaterialModel{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"name":        m.Name,
			"description": m.Description,
			"unit":        m.Unit,
			"updated_at":  m.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update raw material: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrRawMaterialNotFound
	}

	return nil
}

func (r *RawMaterialRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.RawMaterialModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete raw material: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrRawMaterialNotFound
	}

	return nil
}

func (r *RawMaterialRepository) List(ctx context.Context) ([]*catalog.RawMaterial, error) {
	var dbModels []models.RawMaterialModel
	if err := r.db.DB.WithContext(ctx).Order("name ASC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list raw materials: %w", err)
	}

	materials := make([]*catalog.RawMaterial, len(dbModels))
	for i := range dbModels {
		materials[i] = toRawMaterialEntity(&dbModels[i])
	}
	return materials, nil
}

type SupplierRepository struct {
	db *DB
}

func NewSupplierRepository(db *DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) Create(ctx context.Context, s *catalog.Supplier) error {
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()

	dbModel := toSupplierModel(s)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}

	s.ID = dbModel.ID
	return nil
}

func (r *SupplierRepository) GetByID(ctx context.Context, id int64) (*catalog.Supplier, error) {
	var dbModel models.SupplierModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrSupplierNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}

	return toSupplierEntity(&dbModel), nil
}

func (r *SupplierRepository) Update(ctx context.Context, s *catalog.Supplier) error {
	s.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.SupplierModel{}).
		Where("id = ?", s.ID).
		Updates(map[string]interface{}{
			"supplier_name": s.SupplierName,
			"email":         s.Email,
			"phone":         s.Phone,
			"address":       s.Address,
			"city":          s.City,
			"country":       s.Country,
			"updated_at":    s.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update supplier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrSupplierNotFound
	}

	return nil
}

func (r *SupplierRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.SupplierModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete supplier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrSupplierNotFound
	}

	return nil
}

func (r *SupplierRepository) List(ctx context.Context) ([]*catalog.Supplier, error) {
	var dbModels []models.SupplierModel
	if err := r.db.DB.WithContext(ctx).Order("supplier_name ASC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}

	suppliers := make([]*catalog.Supplier, len(dbModels))
	for i := range dbModels {
		suppliers[i] = toSupplierEntity(&dbModels[i])
	}
	return suppliers, nil
}

func toProductModel(p *catalog.Product) *models.ProductModel {
	return &models.ProductModel{
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

func toProductEntity(m *models.ProductModel) *catalog.Product {
	return &catalog.Product{
		ID:                        m.ID,
		Name:                      m.Name,
		Description:               m.Description,
		Unit:                      m.Unit,
		SKU:                       m.SKU,
		ProductionDurationMinutes: m.ProductionDurationMinutes,
		CreatedAt:                 m.CreatedAt,
		UpdatedAt:                 m.UpdatedAt,
	}
}

func toRawMaterialModel(m *catalog.RawMaterial) *models.RawMaterialModel {
	return &models.RawMaterialModel{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Unit:        m.Unit,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toRawMaterialEntity(m *models.RawMaterialModel) *catalog.RawMaterial {
	return &catalog.RawMaterial{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Unit:        m.Unit,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toSupplierModel(s *catalog.Supplier) *models.SupplierModel {
	return &models.SupplierModel{
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

func toSupplierEntity(m *models.SupplierModel) *catalog.Supplier {
	return &catalog.Supplier{
		ID:           m.ID,
		SupplierName: m.SupplierName,
		Email:        m.Email,
		Phone:        m.Phone,
		Address:      m.Address,
		City:         m.City,
		Country:      m.Country,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

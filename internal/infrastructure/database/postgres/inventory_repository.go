package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics-inventory-api/internal/domain/inventory"
	"logistics-inventory-api/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

type ProductInventoryRepository struct {
	db *DB
}

func NewProductInventoryRepository(db *DB) *ProductInventoryRepository {
	return &ProductInventoryRepository{db: db}
}

func (r *ProductInventoryRepository) Create(ctx context.Context, inv *inventory.ProductInventory) error {
	inv.LastUpdated = time.Now()

	dbModel := toProductInventoryModel(inv)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create product inventory: %w", err)
	}

	inv.ID = dbModel.ID
	return nil
}

func (r *ProductInventoryRepository) GetByID(ctx context.Context, id int64) (*inventory.ProductInventory, error) {
	var dbModel models.ProductInventoryModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, inventory.ErrInventoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product inventory: %w", err)
	}

	return toProductInventoryEntity(&dbModel), nil
}

func (r *ProductInventoryRepository) GetByProductID(ctx context.Context, productID int64) (*inventory.ProductInventory, error) {
	var dbModel models.ProductInventoryModel
	err := r.db.DB.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, inventory.ErrInventoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product inventory: %w", err)
	}

	return toProductInventoryEntity(&dbModel), nil
}

func (r *ProductInventoryRepository) Update(ctx context.Context, inv *inventory.ProductInventory) error {
	inv.LastUpdated = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.ProductInventoryModel{}).
		Where("id = ?", inv.ID).
		Updates(map[string]interface{}{
			"quantity":          inv.Quantity,
			"reorder_threshold": inv.ReorderThreshold,
			"last_updated":      inv.LastUpdated,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update product inventory: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return inventory.ErrInventoryNotFound
	}

	return nil
}

func (r *ProductInventoryRepository) List(ctx context.Context) ([]*inventory.ProductInventory, error) {
	var dbModels []models.ProductInventoryModel
	if err := r.db.DB.WithContext(ctx).Order("product_id ASC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list product inventories: %w", err)
	}

	invs := make([]*inventory.ProductInventory, len(dbModels))
	for i := range dbModels {
		invs[i] = toProductInventoryEntity(&dbModels[i])
	}
	return invs, nil
}

// Adjust applies the delta with a single guarded UPDATE so concurrent
// reservations cannot drive the quantity below zero.
func (r *ProductInventoryRepository) Adjust(ctx context.Context, productID int64, delta float64) (*inventory.ProductInventory, error) {
	result := r.db.DB.WithContext(ctx).
		Model(&models.ProductInventoryModel{}).
		Where("product_id = ? AND quantity + ? >= 0", productID, delta).
		Updates(map[string]interface{}{
			"quantity":     gorm.Expr("quantity + ?", delta),
			"last_updated": time.Now(),
		})

	if result.Error != nil {
		return nil, fmt.Errorf("failed to adjust product inventory: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Either the row is missing or the delta would go negative.
		if _, err := r.GetByProductID(ctx, productID); err != nil {
			return nil, err
		}
		return nil, inventory.ErrInsufficientStock
	}

	return r.GetByProductID(ctx, productID)
}

type RawMaterialInventoryRepository struct {
	db *DB
}

func NewRawMaterialInventoryRepository(db *DB) *RawMaterialInventoryRepository {
	return &RawMaterialInventoryRepository{db: db}
}

func (r *RawMaterialInventoryRepository) Create(ctx context.Context, inv *inventory.RawMaterialInventory) error {
	inv.LastUpdated = time.Now()

	dbModel := toRawMaterialInventoryModel(inv)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create raw material inventory: %w", err)
	}

	inv.ID = dbModel.ID
	return nil
}

func (r *RawMaterialInventoryRepository) GetByID(ctx context.Context, id int64) (*inventory.RawMaterialInventory, error) {
	var dbModel models.RawMaterialInventoryModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, inventory.ErrInventoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get raw material inventory: %w", err)
	}

	return toRawMaterialInventoryEntity(&dbModel), nil
}

func (r *RawMaterialInventoryRepository) GetByRawMaterialID(ctx context.Context, rawMaterialID int64) (*inventory.RawMaterialInventory, error) {
	var dbModel models.RawMaterialInventoryModel
	err := r.db.DB.WithContext(ctx).
		Where("raw_material_id = ?", rawMaterialID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, inventory.ErrInventoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get raw material inventory: %w", err)
	}

	return toRawMaterialInventoryEntity(&dbModel), nil
}

func (r *RawMaterialInventoryRepository) Update(ctx context.Context, inv *inventory.RawMaterialInventory) error {
	inv.LastUpdated = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.RawMaterialInventoryModel{}).
		Where("id = ?", inv.ID).
		Updates(map[string]interface{}{
			"quantity":          inv.Quantity,
			"reorder_threshold": inv.ReorderThreshold,
			"last_updated":      inv.LastUpdated,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update raw material inventory: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return inventory.ErrInventoryNotFound
	}

	return nil
}

func (r *RawMaterialInventoryRepository) List(ctx context.Context) ([]*inventory.RawMaterialInventory, error) {
	var dbModels []models.RawMaterialInventoryModel
	if err := r.db.DB.WithContext(ctx).Order("raw_material_id ASC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list raw material inventories: %w", err)
	}

	invs := make([]*inventory.RawMaterialInventory, len(dbModels))
	for i := range dbModels {
		invs[i] = toRawMaterialInventoryEntity(&dbModels[i])
	}
	return invs, nil
}

func (r *RawMaterialInventoryRepository) Adjust(ctx context.Context, rawMaterialID int64, delta float64) (*inventory.RawMaterialInventory, error) {
	result := r.db.DB.WithContext(ctx).
		Model(&models.RawMaterialInventoryModel{}).
		Where("raw_material_id = ? AND quantity + ? >= 0", rawMaterialID, delta).
		Updates(map[string]interface{}{
			"quantity":     gorm.Expr("quantity + ?", delta),
			"last_updated": time.Now(),
		})

	if result.Error != nil {
		return nil, fmt.Errorf("failed to adjust raw material inventory: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		if _, err := r.GetByRawMaterialID(ctx, rawMaterialID); err != nil {
			return nil, err
		}
		return nil, inventory.ErrInsufficientStock
	}

	return r.GetByRawMaterialID(ctx, rawMaterialID)
}

func toProductInventoryModel(inv *inventory.ProductInventory) *models.ProductInventoryModel {
	return &models.ProductInventoryModel{
		ID:               inv.ID,
		ProductID:        inv.ProductID,
		Quantity:         inv.Quantity,
		ReorderThreshold: inv.ReorderThreshold,
		LastUpdated:      inv.LastUpdated,
	}
}

func toProductInventoryEntity(m *models.ProductInventoryModel) *inventory.ProductInventory {
	return &inventory.ProductInventory{
		ID:               m.ID,
		ProductID:        m.ProductID,
		Quantity:         m.Quantity,
		ReorderThreshold: m.ReorderThreshold,
		LastUpdated:      m.LastUpdated,
	}
}

func toRawMaterialInventoryModel(inv *inventory.RawMaterialInventory) *models.RawMaterialInventoryModel {
	return &models.RawMaterialInventoryModel{
		ID:               inv.ID,
		RawMaterialID:    inv.RawMaterialID,
		Quantity:         inv.Quantity,
		ReorderThreshold: inv.ReorderThreshold,
		LastUpdated:      inv.LastUpdated,
	}
}

func toRawMaterialInventoryEntity(m *models.RawMaterialInventoryModel) *inventory.RawMaterialInventory {
	return &inventory.RawMaterialInventory{
		ID:               m.ID,
		RawMaterialID:    m.RawMaterialID,
		Quantity:         m.Quantity,
		ReorderThreshold: m.ReorderThreshold,
		LastUpdated:      m.LastUpdated,
	}
}

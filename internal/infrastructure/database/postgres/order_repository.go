package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics-inventory-api/internal/domain/order"
	"logistics-inventory-api/internal/infrastructure/database/postgres/models"
	"logistics-inventory-api/internal/lifecycle"

	"gorm.io/gorm"
)

type ProductionOrderRepository struct {
	db *DB
}

func NewProductionOrderRepository(db *DB) *ProductionOrderRepository {
	return &ProductionOrderRepository{db: db}
}

// Create inserts the order together with its material lines in one
// transaction.
func (r *ProductionOrderRepository) Create(ctx context.Context, o *order.ProductionOrder) error {
	o.CreatedAt = time.Now()
	o.UpdatedAt = time.Now()
	if o.Status == "" {
		o.Status = lifecycle.OrderPlanned
	}

	dbModel := toProductionOrderModel(o)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create production order: %w", err)
	}

	o.ID = dbModel.ID
	for i := range dbModel.Materials {
		o.Materials[i].ID = dbModel.Materials[i].ID
		o.Materials[i].OrderID = dbModel.ID
	}
	return nil
}

func (r *ProductionOrderRepository) GetByID(ctx context.Context, id int64) (*order.ProductionOrder, error) {
	var dbModel models.ProductionOrderModel
	err := r.db.DB.WithContext(ctx).
		Preload("Product").
		Preload("Materials").
		Preload("Materials.RawMaterial").
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, order.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get production order: %w", err)
	}

	return toProductionOrderEntity(&dbModel), nil
}

func (r *ProductionOrderRepository) List(ctx context.Context) ([]*order.ProductionOrder, error) {
	var dbModels []models.ProductionOrderModel
	err := r.db.DB.WithContext(ctx).
		Preload("Product").
		Preload("Materials").
		Preload("Materials.RawMaterial").
		Order("created_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list production orders: %w", err)
	}

	orders := make([]*order.ProductionOrder, len(dbModels))
	for i := range dbModels {
		orders[i] = toProductionOrderEntity(&dbModels[i])
	}
	return orders, nil
}

func (r *ProductionOrderRepository) UpdateStatus(ctx context.Context, update order.StatusUpdate) error {
	fields := map[string]interface{}{
		"status":     string(update.Status),
		"updated_at": time.Now(),
	}
	if update.StartDate != nil {
		fields["start_date"] = update.StartDate
	}
	if update.PlannedCompletionDate != nil {
		fields["planned_completion_date"] = update.PlannedCompletionDate
	}
	if update.ClearPlannedDate {
		fields["planned_completion_date"] = nil
	}
	if update.ActualCompletionDate != nil {
		fields["actual_completion_date"] = update.ActualCompletionDate
	}

	result := r.db.DB.WithContext(ctx).
		Model(&models.ProductionOrderModel{}).
		Where("id = ?", update.OrderID).
		Updates(fields)

	if result.Error != nil {
		return fmt.Errorf("failed to update production order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *ProductionOrderRepository) ListDueToStart(ctx context.Context, today time.Time) ([]*order.ProductionOrder, error) {
	var dbModels []models.ProductionOrderModel
	err := r.db.DB.WithContext(ctx).
		Preload("Materials").
		Where("status = ? AND start_date IS NOT NULL AND start_date <= ?", string(lifecycle.OrderPlanned), today).
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders due to start: %w", err)
	}

	orders := make([]*order.ProductionOrder, len(dbModels))
	for i := range dbModels {
		orders[i] = toProductionOrderEntity(&dbModels[i])
	}
	return orders, nil
}

func (r *ProductionOrderRepository) ListDueToComplete(ctx context.Context, today time.Time) ([]*order.ProductionOrder, error) {
	var dbModels []models.ProductionOrderModel
	err := r.db.DB.WithContext(ctx).
		Preload("Materials").
		Where("status = ? AND planned_completion_date IS NOT NULL AND planned_completion_date <= ?", string(lifecycle.OrderInProgress), today).
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders due to complete: %w", err)
	}

	orders := make([]*order.ProductionOrder, len(dbModels))
	for i := range dbModels {
		orders[i] = toProductionOrderEntity(&dbModels[i])
	}
	return orders, nil
}

func toProductionOrderModel(o *order.ProductionOrder) *models.ProductionOrderModel {
	m := &models.ProductionOrderModel{
		ID:                    o.ID,
		ReferenceCode:         o.ReferenceCode,
		Status:                string(o.Status),
		ProductID:             o.ProductID,
		ProductQuantity:       o.ProductQuantity,
		CreationDate:          o.CreationDate,
		StartDate:             o.StartDate,
		PlannedCompletionDate: o.PlannedCompletionDate,
		ActualCompletionDate:  o.ActualCompletionDate,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}

	m.Materials = make([]models.ProductionOrderMaterialModel, len(o.Materials))
	for i, line := range o.Materials {
		m.Materials[i] = models.ProductionOrderMaterialModel{
			ID:            line.ID,
			OrderID:       line.OrderID,
			RawMaterialID: line.RawMaterialID,
			Quantity:      line.Quantity,
		}
	}

	return m
}

func toProductionOrderEntity(m *models.ProductionOrderModel) *order.ProductionOrder {
	o := &order.ProductionOrder{
		ID:                    m.ID,
		ReferenceCode:         m.ReferenceCode,
		Status:                lifecycle.Status(m.Status),
		ProductID:             m.ProductID,
		ProductQuantity:       m.ProductQuantity,
		CreationDate:          m.CreationDate,
		StartDate:             m.StartDate,
		PlannedCompletionDate: m.PlannedCompletionDate,
		ActualCompletionDate:  m.ActualCompletionDate,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}

	if m.Product != nil {
		o.Product = toProductEntity(m.Product)
	}

	o.Materials = make([]order.MaterialLine, len(m.Materials))
	for i := range m.Materials {
		line := order.MaterialLine{
			ID:            m.Materials[i].ID,
			OrderID:       m.Materials[i].OrderID,
			RawMaterialID: m.Materials[i].RawMaterialID,
			Quantity:      m.Materials[i].Quantity,
		}
		if m.Materials[i].RawMaterial != nil {
			line.RawMaterial = toRawMaterialEntity(m.Materials[i].RawMaterial)
		}
		o.Materials[i] = line
	}

	return o
}

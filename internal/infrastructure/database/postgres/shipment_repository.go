package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics-inventory-api/internal/domain/shipment"
	"logistics-inventory-api/internal/infrastructure/database/postgres/models"
	"logistics-inventory-api/internal/lifecycle"

	"gorm.io/gorm"
)

type ShipmentRepository struct {
	db *DB
}

func NewShipmentRepository(db *DB) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

func (r *ShipmentRepository) Create(ctx context.Context, s *shipment.Shipment) error {
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()
	if s.Status == "" {
		s.Status = lifecycle.ShipmentPlanned
	}

	dbModel := toShipmentModel(s)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create shipment: %w", err)
	}

	s.ID = dbModel.ID
	return nil
}

func (r *ShipmentRepository) GetByID(ctx context.Context, id int64) (*shipment.Shipment, error) {
	var dbModel models.ShipmentModel
	err := r.db.DB.WithContext(ctx).
		Preload("Product").
		Preload("RawMaterial").
		Preload("Supplier").
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shipment.ErrShipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}

	return toShipmentEntity(&dbModel), nil
}

func (r *ShipmentRepository) List(ctx context.Context, direction *shipment.Direction) ([]*shipment.Shipment, error) {
	query := r.db.DB.WithContext(ctx).
		Preload("Product").
		Preload("RawMaterial").
		Preload("Supplier")

	if direction != nil {
		query = query.Where("direction = ?", string(*direction))
	}

	var dbModels []models.ShipmentModel
	if err := query.Order("created_at DESC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}

	shipments := make([]*shipment.Shipment, len(dbModels))
	for i := range dbModels {
		shipments[i] = toShipmentEntity(&dbModels[i])
	}
	return shipments, nil
}

func (r *ShipmentRepository) UpdateStatus(ctx context.Context, update shipment.StatusUpdate) error {
	fields := map[string]interface{}{
		"status":     string(update.Status),
		"updated_at": time.Now(),
	}
	if update.ActualArrivalDate != nil {
		fields["actual_arrival_date"] = update.ActualArrivalDate
	}
	if update.EstimateArrivalDate != nil {
		fields["estimate_arrival_date"] = update.EstimateArrivalDate
	}
	if update.DepartureDate != nil {
		fields["departure_date"] = update.DepartureDate
	}

	result := r.db.DB.WithContext(ctx).
		Model(&models.ShipmentModel{}).
		Where("id = ?", update.ShipmentID).
		Updates(fields)

	if result.Error != nil {
		return fmt.Errorf("failed to update shipment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shipment.ErrShipmentNotFound
	}

	return nil
}

func (r *ShipmentRepository) ListDueForTransit(ctx context.Context, today time.Time) ([]*shipment.Shipment, error) {
	var dbModels []models.ShipmentModel
	err := r.db.DB.WithContext(ctx).
		Where("status = ? AND departure_date <= ?", string(lifecycle.ShipmentPlanned), today).
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments due for transit: %w", err)
	}

	shipments := make([]*shipment.Shipment, len(dbModels))
	for i := range dbModels {
		shipments[i] = toShipmentEntity(&dbModels[i])
	}
	return shipments, nil
}

func (r *ShipmentRepository) ListOverdue(ctx context.Context, today time.Time) ([]*shipment.Shipment, error) {
	var dbModels []models.ShipmentModel
	err := r.db.DB.WithContext(ctx).
		Where("status = ? AND estimate_arrival_date < ?", string(lifecycle.ShipmentInTransit), today).
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue shipments: %w", err)
	}

	shipments := make([]*shipment.Shipment, len(dbModels))
	for i := range dbModels {
		shipments[i] = toShipmentEntity(&dbModels[i])
	}
	return shipments, nil
}

func (r *ShipmentRepository) NextReferenceSequence(ctx context.Context, day time.Time) (int, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var count int64
	err := r.db.DB.WithContext(ctx).
		Model(&models.ShipmentModel{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count shipments for reference sequence: %w", err)
	}

	return int(count) + 1, nil
}

func toShipmentModel(s *shipment.Shipment) *models.ShipmentModel {
	return &models.ShipmentModel{
		ID:                  s.ID,
		ReferenceCode:       s.ReferenceCode,
		Direction:           string(s.Direction),
		TransportMode:       string(s.TransportMode),
		Status:              string(s.Status),
		Quantity:            s.Quantity,
		ProductID:           s.ProductID,
		RawMaterialID:       s.RawMaterialID,
		SupplierID:          s.SupplierID,
		CustomerName:        s.CustomerName,
		DepartureDate:       s.DepartureDate,
		EstimateArrivalDate: s.EstimateArrivalDate,
		ActualArrivalDate:   s.ActualArrivalDate,
		TrackingNumber:      s.TrackingNumber,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

func toShipmentEntity(m *models.ShipmentModel) *shipment.Shipment {
	s := &shipment.Shipment{
		ID:                  m.ID,
		ReferenceCode:       m.ReferenceCode,
		Direction:           shipment.Direction(m.Direction),
		TransportMode:       shipment.TransportMode(m.TransportMode),
		Status:              lifecycle.Status(m.Status),
		Quantity:            m.Quantity,
		ProductID:           m.ProductID,
		RawMaterialID:       m.RawMaterialID,
		SupplierID:          m.SupplierID,
		CustomerName:        m.CustomerName,
		DepartureDate:       m.DepartureDate,
		EstimateArrivalDate: m.EstimateArrivalDate,
		ActualArrivalDate:   m.ActualArrivalDate,
		TrackingNumber:      m.TrackingNumber,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}

	if m.Product != nil {
		s.Product = toProductEntity(m.Product)
	}
	if m.RawMaterial != nil {
		s.RawMaterial = toRawMaterialEntity(m.RawMaterial)
	}
	if m.Supplier != nil {
		s.Supplier = toSupplierEntity(m.Supplier)
	}

	return s
}

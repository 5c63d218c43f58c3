package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainAlert "logistics-inventory-api/internal/domain/alert"
	domainCatalog "logistics-inventory-api/internal/domain/catalog"
	domainInventory "logistics-inventory-api/internal/domain/inventory"
	domainShipment "logistics-inventory-api/internal/domain/shipment"
	"logistics-inventory-api/internal/lifecycle"
	"logistics-inventory-api/internal/logger"
	appErrors "logistics-inventory-api/pkg/errors"
	"logistics-inventory-api/pkg/utils"

	"go.uber.org/zap"
)

// Transit time defaults per transport mode, in days from departure.
const (
	transitDaysAir   = 1
	transitDaysTruck = 2
	transitDaysSea   = 21
)

// Alerts is the slice of the alert service the shipment lifecycle needs.
type Alerts interface {
	Raise(ctx context.Context, alertType domainAlert.Type, severity domainAlert.Severity, entityType domainAlert.EntityType, entityID int64, message string) error
	Resolve(ctx context.Context, alertType domainAlert.Type, entityType domainAlert.EntityType, entityID int64) error
}

// Service implements shipment use cases
type Service struct {
	shipmentRepo    domainShipment.Repository
	productRepo     domainCatalog.ProductRepository
	rawMaterialRepo domainCatalog.RawMaterialRepository
	supplierRepo    domainCatalog.SupplierRepository
	productInvRepo  domainInventory.ProductInventoryRepository
	materialInvRepo domainInventory.RawMaterialInventoryRepository
	alerts          Alerts

	now func() time.Time
}

func NewService(
	shipmentRepo domainShipment.Repository,
	productRepo domainCatalog.ProductRepository,
	rawMaterialRepo domainCatalog.RawMaterialRepository,
	supplierRepo domainCatalog.SupplierRepository,
	productInvRepo domainInventory.ProductInventoryRepository,
	materialInvRepo domainInventory.RawMaterialInventoryRepository,
	alerts Alerts,
) *Service {
	return &Service{
		shipmentRepo:    shipmentRepo,
		productRepo:     productRepo,
		rawMaterialRepo: rawMaterialRepo,
		supplierRepo:    supplierRepo,
		productInvRepo:  productInvRepo,
		materialInvRepo: materialInvRepo,
		alerts:          alerts,
		now:             time.Now,
	}
}

// CreateShipment registers a new shipment in PLANNED status. Outbound
// shipments reserve finished-goods stock immediately, so a shipment that
// cannot be covered is rejected before anything is written.
func (s *Service) CreateShipment(ctx context.Context, req *CreateShipmentRequest) (*ShipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidationError, "Invalid input", err)
	}

	direction := domainShipment.Direction(req.Direction)
	mode := domainShipment.TransportMode(req.TransportMode)

	departureDate, err := time.Parse(dateLayout, req.DepartureDate)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidationError, "Invalid departure date", err)
	}

	if err := s.validateLinks(ctx, direction, req); err != nil {
		return nil, err
	}

	estimateArrivalDate, err := resolveEstimate(req.EstimateArrivalDate, departureDate, mode)
	if err != nil {
		return nil, err
	}

	if direction == domainShipment.DirectionOutbound {
		if err := s.reserveProductStock(ctx, *req.ProductID, req.Quantity); err != nil {
			return nil, err
		}
	}

	referenceCode, err := s.nextReferenceCode(ctx)
	if err != nil {
		return nil, err
	}

	entity := &domainShipment.Shipment{
		ReferenceCode:       referenceCode,
		Direction:           direction,
		TransportMode:       mode,
		Status:              lifecycle.ShipmentPlanned,
		Quantity:            req.Quantity,
		ProductID:           req.ProductID,
		RawMaterialID:       req.RawMaterialID,
		SupplierID:          req.SupplierID,
		CustomerName:        req.CustomerName,
		DepartureDate:       departureDate,
		EstimateArrivalDate: estimateArrivalDate,
		TrackingNumber:      req.TrackingNumber,
	}

	if err := s.shipmentRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	created, err := s.shipmentRepo.GetByID(ctx, entity.ID)
	if err != nil {
		return nil, err
	}

	logger.Info("Shipment created",
		zap.Int64("shipment_id", created.ID),
		zap.String("reference_code", created.ReferenceCode),
		zap.String("direction", string(created.Direction)),
		zap.String("event", "shipment_created"),
	)

	return toShipmentResponse(created, s.now()), nil
}

func (s *Service) GetShipment(ctx context.Context, id int64) (*ShipmentResponse, error) {
	entity, err := s.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toShipmentResponse(entity, s.now()), nil
}

func (s *Service) ListShipments(ctx context.Context, direction *domainShipment.Direction) ([]*ShipmentResponse, error) {
	entities, err := s.shipmentRepo.List(ctx, direction)
	if err != nil {
		return nil, err
	}

	today := s.now()
	responses := make([]*ShipmentResponse, len(entities))
	for i, entity := range entities {
		responses[i] = toShipmentResponse(entity, today)
	}
	return responses, nil
}

// TransitionOptions returns the statuses the shipment can move to right
// now, with DELIVERED filtered out while the shipment has not departed.
func (s *Service) TransitionOptions(ctx context.Context, id int64) ([]string, error) {
	entity, err := s.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	options := lifecycle.ShipmentTransitionOptions(entity.Status, entity.DepartureDate, s.now())
	out := make([]string, len(options))
	for i, status := range options {
		out[i] = string(status)
	}
	return out, nil
}

// ChangeStatus moves a shipment through its lifecycle. All validation runs
// before any write: an illegal transition, a failed delivery guard, or bad
// extra input leaves the shipment and its side effects untouched.
func (s *Service) ChangeStatus(ctx context.Context, req *ChangeStatusRequest) (*ShipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidationError, "Invalid input", err)
	}

	target := lifecycle.Status(req.TargetStatus)

	entity, err := s.shipmentRepo.GetByID(ctx, req.ShipmentID)
	if err != nil {
		return nil, err
	}

	if req.ExpectedStatus != nil && lifecycle.Status(*req.ExpectedStatus) != entity.Status {
		return nil, appErrors.NewAppError(
			appErrors.CodeStaleEntity,
			fmt.Sprintf("Shipment is %s, not %s", entity.Status, *req.ExpectedStatus),
			nil,
		)
	}

	if err := lifecycle.ValidateTransition(lifecycle.KindShipment, entity.Status, target); err != nil {
		return nil, err
	}

	today := s.now()

	if target == lifecycle.ShipmentDelivered && !lifecycle.DeliveryAllowed(entity.DepartureDate, today) {
		return nil, appErrors.NewAppError(
			appErrors.CodeValidationError,
			"Shipment cannot be delivered before its departure date",
			nil,
		)
	}

	extraSpec := lifecycle.RequiresExtraInput(lifecycle.KindShipment, entity.Status, target)
	var extraInput lifecycle.ExtraInput
	if req.NewEstimateArrivalDate != nil {
		parsed, err := time.Parse(dateLayout, *req.NewEstimateArrivalDate)
		if err != nil {
			return nil, appErrors.NewAppError(appErrors.CodeValidationError, "Invalid new estimate arrival date", err)
		}
		extraInput.NewEstimateArrivalDate = &parsed
	}
	if err := lifecycle.ValidateExtraInput(extraSpec, extraInput, entity.DepartureDate); err != nil {
		return nil, err
	}

	update := domainShipment.StatusUpdate{
		ShipmentID: entity.ID,
		Status:     target,
	}
	if extraSpec != nil {
		update.EstimateArrivalDate = extraInput.NewEstimateArrivalDate
	}
	if target == lifecycle.ShipmentDelivered {
		update.ActualArrivalDate = &today
	}

	if err := s.applySideEffects(ctx, entity, target); err != nil {
		return nil, err
	}

	if err := s.shipmentRepo.UpdateStatus(ctx, update); err != nil {
		return nil, err
	}

	logger.Info("Shipment status changed",
		zap.Int64("shipment_id", entity.ID),
		zap.String("from", string(entity.Status)),
		zap.String("to", string(target)),
		zap.String("event", "shipment_status_changed"),
	)

	updated, err := s.shipmentRepo.GetByID(ctx, entity.ID)
	if err != nil {
		return nil, err
	}
	return toShipmentResponse(updated, today), nil
}

// applySideEffects runs the inventory and alert consequences of a
// transition. entity still carries the pre-transition status.
func (s *Service) applySideEffects(ctx context.Context, entity *domainShipment.Shipment, target lifecycle.Status) error {
	switch target {
	case lifecycle.ShipmentDelivered:
		if entity.Direction == domainShipment.DirectionInbound && entity.RawMaterialID != nil {
			if err := s.creditMaterialStock(ctx, *entity.RawMaterialID, entity.Quantity); err != nil {
				return err
			}
		}

	case lifecycle.ShipmentDelayed:
		message := fmt.Sprintf("Shipment %s is delayed past its estimated arrival", entity.ReferenceCode)
		if err := s.alerts.Raise(ctx, domainAlert.TypeShipmentDelayed, domainAlert.SeverityWarning, domainAlert.EntityShipment, entity.ID, message); err != nil {
			return err
		}

	case lifecycle.ShipmentCancelled:
		if entity.Direction == domainShipment.DirectionOutbound && entity.ProductID != nil {
			if err := s.returnProductStock(ctx, *entity.ProductID, entity.Quantity); err != nil {
				return err
			}
		}
		message := fmt.Sprintf("Shipment %s was cancelled", entity.ReferenceCode)
		if err := s.alerts.Raise(ctx, domainAlert.TypeShipmentCancelled, domainAlert.SeverityInfo, domainAlert.EntityShipment, entity.ID, message); err != nil {
			return err
		}
	}

	// Leaving DELAYED clears the delay alert, whatever the destination.
	if entity.Status == lifecycle.ShipmentDelayed && target != lifecycle.ShipmentDelayed {
		if err := s.alerts.Resolve(ctx, domainAlert.TypeShipmentDelayed, domainAlert.EntityShipment, entity.ID); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) validateLinks(ctx context.Context, direction domainShipment.Direction, req *CreateShipmentRequest) error {
	switch direction {
	case domainShipment.DirectionOutbound:
		if req.ProductID == nil || req.CustomerName == nil {
			return appErrors.NewAppError(
				appErrors.CodeValidationError,
				"Outbound shipments require a product and a customer name",
				domainShipment.ErrMissingMaterialLink,
			)
		}
		if _, err := s.productRepo.GetByID(ctx, *req.ProductID); err != nil {
			return err
		}

	case domainShipment.DirectionInbound:
		if req.RawMaterialID == nil || req.SupplierID == nil {
			return appErrors.NewAppError(
				appErrors.CodeValidationError,
				"Inbound shipments require a raw material and a supplier",
				domainShipment.ErrMissingMaterialLink,
			)
		}
		if _, err := s.rawMaterialRepo.GetByID(ctx, *req.RawMaterialID); err != nil {
			return err
		}
		if _, err := s.supplierRepo.GetByID(ctx, *req.SupplierID); err != nil {
			return err
		}
	}

	return nil
}

// reserveProductStock debits finished goods for an outbound shipment. A
// reservation that drains the row to or below its threshold raises a
// low-stock alert.
func (s *Service) reserveProductStock(ctx context.Context, productID int64, quantity float64) error {
	inv, err := s.productInvRepo.Adjust(ctx, productID, -quantity)
	if errors.Is(err, domainInventory.ErrInsufficientStock) || errors.Is(err, domainInventory.ErrInventoryNotFound) {
		return appErrors.NewAppError(
			appErrors.CodeInsufficientStock,
			"Insufficient product stock to cover the shipment",
			err,
		)
	}
	if err != nil {
		return err
	}

	if inv.LowStock() {
		message := fmt.Sprintf("Product %d stock is at or below its reorder threshold", productID)
		return s.alerts.Raise(ctx, domainAlert.TypeLowStock, domainAlert.SeverityWarning, domainAlert.EntityProduct, productID, message)
	}
	return nil
}

// returnProductStock credits back stock reserved at creation when an
// outbound shipment is cancelled.
func (s *Service) returnProductStock(ctx context.Context, productID int64, quantity float64) error {
	inv, err := s.productInvRepo.Adjust(ctx, productID, quantity)
	if errors.Is(err, domainInventory.ErrInventoryNotFound) {
		return s.productInvRepo.Create(ctx, &domainInventory.ProductInventory{
			ProductID: productID,
			Quantity:  quantity,
		})
	}
	if err != nil {
		return err
	}

	if !inv.LowStock() {
		return s.alerts.Resolve(ctx, domainAlert.TypeLowStock, domainAlert.EntityProduct, productID)
	}
	return nil
}

// creditMaterialStock adds delivered raw materials to inventory, creating
// the row on first delivery of a material.
func (s *Service) creditMaterialStock(ctx context.Context, rawMaterialID int64, quantity float64) error {
	inv, err := s.materialInvRepo.Adjust(ctx, rawMaterialID, quantity)
	if errors.Is(err, domainInventory.ErrInventoryNotFound) {
		return s.materialInvRepo.Create(ctx, &domainInventory.RawMaterialInventory{
			RawMaterialID: rawMaterialID,
			Quantity:      quantity,
		})
	}
	if err != nil {
		return err
	}

	if !inv.LowStock() {
		return s.alerts.Resolve(ctx, domainAlert.TypeLowStock, domainAlert.EntityRawMaterial, rawMaterialID)
	}
	return nil
}

func resolveEstimate(raw *string, departureDate time.Time, mode domainShipment.TransportMode) (time.Time, error) {
	if raw != nil {
		estimate, err := time.Parse(dateLayout, *raw)
		if err != nil {
			return time.Time{}, appErrors.NewAppError(appErrors.CodeValidationError, "Invalid estimate arrival date", err)
		}
		if estimate.Before(departureDate) {
			return time.Time{}, appErrors.NewAppError(
				appErrors.CodeValidationError,
				"Estimate arrival date must not be earlier than the departure date",
				domainShipment.ErrEstimateBeforeDeparture,
			)
		}
		return estimate, nil
	}

	days := transitDaysTruck
	switch mode {
	case domainShipment.ModeAir:
		days = transitDaysAir
	case domainShipment.ModeSea:
		days = transitDaysSea
	}
	return departureDate.AddDate(0, 0, days), nil
}

// nextReferenceCode builds SHIP-YYYYMMDD-NNN from today's creation
// sequence.
func (s *Service) nextReferenceCode(ctx context.Context) (string, error) {
	today := s.now()
	seq, err := s.shipmentRepo.NextReferenceSequence(ctx, today)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("SHIP-%s-%03d", today.Format("20060102"), seq), nil
}

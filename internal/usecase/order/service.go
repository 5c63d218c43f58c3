package order

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	domainAlert "logistics-inventory-api/internal/domain/alert"
	domainCatalog "logistics-inventory-api/internal/domain/catalog"
	domainInventory "logistics-inventory-api/internal/domain/inventory"
	domainOrder "logistics-inventory-api/internal/domain/order"
	"logistics-inventory-api/internal/lifecycle"
	"logistics-inventory-api/internal/logger"
	appErrors "logistics-inventory-api/pkg/errors"
	"logistics-inventory-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Alerts is the slice of the alert service the order lifecycle needs.
type Alerts interface {
	Raise(ctx context.Context, alertType domainAlert.Type, severity domainAlert.Severity, entityType domainAlert.EntityType, entityID int64, message string) error
	Resolve(ctx context.Context, alertType domainAlert.Type, entityType domainAlert.EntityType, entityID int64) error
}

// Service implements production order use cases
type Service struct {
	orderRepo       domainOrder.Repository
	productRepo     domainCatalog.ProductRepository
	rawMaterialRepo domainCatalog.RawMaterialRepository
	productInvRepo  domainInventory.ProductInventoryRepository
	materialInvRepo domainInventory.RawMaterialInventoryRepository
	alerts          Alerts

	now func() time.Time
}

func NewService(
	orderRepo domainOrder.Repository,
	productRepo domainCatalog.ProductRepository,
	rawMaterialRepo domainCatalog.RawMaterialRepository,
	productInvRepo domainInventory.ProductInventoryRepository,
	materialInvRepo domainInventory.RawMaterialInventoryRepository,
	alerts Alerts,
) *Service {
	return &Service{
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		rawMaterialRepo: rawMaterialRepo,
		productInvRepo:  productInvRepo,
		materialInvRepo: materialInvRepo,
		alerts:          alerts,
		now:             time.Now,
	}
}

// CreateOrder registers a production order in PLANNED status. Materials
// are only referenced here; stock is reserved when the order starts.
func (s *Service) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*OrderResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidationError, "Invalid input", err)
	}
	if len(req.Materials) == 0 {
		return nil, appErrors.NewAppError(appErrors.CodeValidationError, "At least one raw material line is required", domainOrder.ErrNoMaterialLines)
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	lines := make([]domainOrder.MaterialLine, len(req.Materials))
	for i, lineReq := range req.Materials {
		if _, err := s.rawMaterialRepo.GetByID(ctx, lineReq.RawMaterialID); err != nil {
			return nil, err
		}
		lines[i] = domainOrder.MaterialLine{
			RawMaterialID: lineReq.RawMaterialID,
			Quantity:      lineReq.Quantity,
		}
	}

	today := s.now()
	entity := &domainOrder.ProductionOrder{
		ReferenceCode:   nextReferenceCode(),
		Status:          lifecycle.OrderPlanned,
		ProductID:       req.ProductID,
		ProductQuantity: req.ProductQuantity,
		Materials:       lines,
		CreationDate:    today,
	}

	if req.StartDate != nil {
		startDate, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			return nil, appErrors.NewAppError(appErrors.CodeValidationError, "Invalid start date", err)
		}
		entity.StartDate = &startDate
		entity.PlannedCompletionDate = plannedCompletion(startDate, product, req.ProductQuantity)
	}

	if err := s.orderRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	created, err := s.orderRepo.GetByID(ctx, entity.ID)
	if err != nil {
		return nil, err
	}

	logger.Info("Production order created",
		zap.Int64("order_id", created.ID),
		zap.String("reference_code", created.ReferenceCode),
		zap.String("event", "production_order_created"),
	)

	return toOrderResponse(created), nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*OrderResponse, error) {
	entity, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(entity), nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*OrderResponse, error) {
	entities, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*OrderResponse, len(entities))
	for i, entity := range entities {
		responses[i] = toOrderResponse(entity)
	}
	return responses, nil
}

// ChangeStatus moves an order through its forward lifecycle. Starting an
// order reserves its materials; completing it credits finished goods;
// cancelling an in-progress order returns what was reserved.
func (s *Service) ChangeStatus(ctx context.Context, id int64, req *ChangeStatusRequest) (*OrderResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidationError, "Invalid input", err)
	}

	target := lifecycle.Status(req.TargetStatus)

	entity, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ExpectedStatus != nil && lifecycle.Status(*req.ExpectedStatus) != entity.Status {
		return nil, appErrors.NewAppError(
			appErrors.CodeStaleEntity,
			fmt.Sprintf("Production order is %s, not %s", entity.Status, *req.ExpectedStatus),
			nil,
		)
	}

	if err := lifecycle.ValidateTransition(lifecycle.KindProductionOrder, entity.Status, target); err != nil {
		return nil, err
	}

	var update domainOrder.StatusUpdate
	switch target {
	case lifecycle.OrderInProgress:
		update, err = s.startOrder(ctx, entity)
	case lifecycle.OrderCompleted:
		update, err = s.completeOrder(ctx, entity)
	case lifecycle.OrderCancelled:
		update, err = s.cancelOrder(ctx, entity)
	default:
		update = domainOrder.StatusUpdate{OrderID: entity.ID, Status: target}
	}
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(ctx, update); err != nil {
		return nil, err
	}

	logger.Info("Production order status changed",
		zap.Int64("order_id", entity.ID),
		zap.String("from", string(entity.Status)),
		zap.String("to", string(target)),
		zap.String("event", "production_order_status_changed"),
	)

	updated, err := s.orderRepo.GetByID(ctx, entity.ID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(updated), nil
}

// Reverse compensates a completed order: finished goods leave inventory
// and the consumed materials come back. It is the only path to REVERSED.
func (s *Service) Reverse(ctx context.Context, id int64) (*OrderResponse, error) {
	entity, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if entity.Status != lifecycle.OrderCompleted {
		return nil, appErrors.NewAppError(
			appErrors.CodeInvalidTransition,
			fmt.Sprintf("Cannot reverse a production order in status %s", entity.Status),
			domainOrder.ErrNotCompleted,
		)
	}

	if _, err := s.productInvRepo.Adjust(ctx, entity.ProductID, -entity.ProductQuantity); err != nil {
		if errors.Is(err, domainInventory.ErrInsufficientStock) || errors.Is(err, domainInventory.ErrInventoryNotFound) {
			return nil, appErrors.NewAppError(
				appErrors.CodeInsufficientStock,
				"Finished goods from this order are no longer in stock",
				domainOrder.ErrFinishedGoodsMoved,
			)
		}
		return nil, err
	}

	for materialID, quantity := range aggregateMaterials(entity.Materials) {
		if err := s.creditMaterial(ctx, materialID, quantity); err != nil {
			return nil, err
		}
	}

	update := domainOrder.StatusUpdate{OrderID: entity.ID, Status: lifecycle.OrderReversed}
	if err := s.orderRepo.UpdateStatus(ctx, update); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Production order %s was reversed", entity.ReferenceCode)
	if err := s.alerts.Raise(ctx, domainAlert.TypeProductionReversed, domainAlert.SeverityInfo, domainAlert.EntityProductionOrder, entity.ID, message); err != nil {
		return nil, err
	}

	logger.Info("Production order reversed",
		zap.Int64("order_id", entity.ID),
		zap.String("reference_code", entity.ReferenceCode),
		zap.String("event", "production_order_reversed"),
	)

	updated, err := s.orderRepo.GetByID(ctx, entity.ID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(updated), nil
}

// startOrder reserves every material line. On a shortage the lines already
// debited are credited back, a shortage alert is raised, and the order
// stays PLANNED.
func (s *Service) startOrder(ctx context.Context, entity *domainOrder.ProductionOrder) (domainOrder.StatusUpdate, error) {
	var debited []domainOrder.MaterialLine
	for _, line := range entity.Materials {
		if _, err := s.materialInvRepo.Adjust(ctx, line.RawMaterialID, -line.Quantity); err != nil {
			for _, done := range debited {
				if creditErr := s.creditMaterial(ctx, done.RawMaterialID, done.Quantity); creditErr != nil {
					return domainOrder.StatusUpdate{}, creditErr
				}
			}

			if errors.Is(err, domainInventory.ErrInsufficientStock) || errors.Is(err, domainInventory.ErrInventoryNotFound) {
				message := fmt.Sprintf("Raw material %d stock cannot cover production order %s", line.RawMaterialID, entity.ReferenceCode)
				if alertErr := s.alerts.Raise(ctx, domainAlert.TypeRawMaterialShortage, domainAlert.SeverityCritical, domainAlert.EntityRawMaterial, line.RawMaterialID, message); alertErr != nil {
					return domainOrder.StatusUpdate{}, alertErr
				}
				return domainOrder.StatusUpdate{}, appErrors.NewAppError(
					appErrors.CodeInsufficientStock,
					"Insufficient raw material stock to start the order",
					domainOrder.ErrMaterialShortage,
				)
			}
			return domainOrder.StatusUpdate{}, err
		}
		debited = append(debited, line)
	}

	update := domainOrder.StatusUpdate{
		OrderID: entity.ID,
		Status:  lifecycle.OrderInProgress,
	}

	startDate := s.now()
	if entity.StartDate != nil {
		startDate = *entity.StartDate
	} else {
		update.StartDate = &startDate
	}
	if entity.PlannedCompletionDate == nil {
		product, err := s.productRepo.GetByID(ctx, entity.ProductID)
		if err != nil {
			return domainOrder.StatusUpdate{}, err
		}
		update.PlannedCompletionDate = plannedCompletion(startDate, product, entity.ProductQuantity)
	}

	return update, nil
}

func (s *Service) completeOrder(ctx context.Context, entity *domainOrder.ProductionOrder) (domainOrder.StatusUpdate, error) {
	inv, err := s.productInvRepo.Adjust(ctx, entity.ProductID, entity.ProductQuantity)
	if errors.Is(err, domainInventory.ErrInventoryNotFound) {
		createErr := s.productInvRepo.Create(ctx, &domainInventory.ProductInventory{
			ProductID: entity.ProductID,
			Quantity:  entity.ProductQuantity,
		})
		if createErr != nil {
			return domainOrder.StatusUpdate{}, createErr
		}
	} else if err != nil {
		return domainOrder.StatusUpdate{}, err
	} else if !inv.LowStock() {
		if resolveErr := s.alerts.Resolve(ctx, domainAlert.TypeLowStock, domainAlert.EntityProduct, entity.ProductID); resolveErr != nil {
			return domainOrder.StatusUpdate{}, resolveErr
		}
	}

	today := s.now()
	return domainOrder.StatusUpdate{
		OrderID:              entity.ID,
		Status:               lifecycle.OrderCompleted,
		ActualCompletionDate: &today,
	}, nil
}

func (s *Service) cancelOrder(ctx context.Context, entity *domainOrder.ProductionOrder) (domainOrder.StatusUpdate, error) {
	if entity.Status == lifecycle.OrderInProgress {
		for materialID, quantity := range aggregateMaterials(entity.Materials) {
			if err := s.creditMaterial(ctx, materialID, quantity); err != nil {
				return domainOrder.StatusUpdate{}, err
			}
		}
	}

	message := fmt.Sprintf("Production order %s was cancelled", entity.ReferenceCode)
	if err := s.alerts.Raise(ctx, domainAlert.TypeProductionCancelled, domainAlert.SeverityInfo, domainAlert.EntityProductionOrder, entity.ID, message); err != nil {
		return domainOrder.StatusUpdate{}, err
	}

	return domainOrder.StatusUpdate{
		OrderID:          entity.ID,
		Status:           lifecycle.OrderCancelled,
		ClearPlannedDate: true,
	}, nil
}

func (s *Service) creditMaterial(ctx context.Context, rawMaterialID int64, quantity float64) error {
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

// aggregateMaterials collapses duplicate material lines so returns credit
// each material once.
func aggregateMaterials(lines []domainOrder.MaterialLine) map[int64]float64 {
	totals := make(map[int64]float64, len(lines))
	for _, line := range lines {
		totals[line.RawMaterialID] += line.Quantity
	}
	return totals
}

// plannedCompletion derives the completion date from the product's per-unit
// production duration, rounded up to whole days. Products without a
// duration get no planned date.
func plannedCompletion(startDate time.Time, product *domainCatalog.Product, quantity float64) *time.Time {
	if product.ProductionDurationMinutes == nil {
		return nil
	}

	totalMinutes := float64(*product.ProductionDurationMinutes) * quantity
	days := int(math.Ceil(totalMinutes / (24 * 60)))
	if days < 1 {
		days = 1
	}

	completion := startDate.AddDate(0, 0, days)
	return &completion
}

func nextReferenceCode() string {
	suffix := strings.ToUpper(uuid.New().String()[:8])
	return "PO-" + suffix
}

package inventory

import (
	"context"
	"fmt"

	domainAlert "logistics-inventory-api/internal/domain/alert"
	domainCatalog "logistics-inventory-api/internal/domain/catalog"
	domainInventory "logistics-inventory-api/internal/domain/inventory"
	appErrors "logistics-inventory-api/pkg/errors"
	"logistics-inventory-api/pkg/utils"
)

// Alerts is the slice of the alert service inventory maintenance needs.
type Alerts interface {
	Raise(ctx context.Context, alertType domainAlert.Type, severity domainAlert.Severity, entityType domainAlert.EntityType, entityID int64, message string) error
	Resolve(ctx context.Context, alertType domainAlert.Type, entityType domainAlert.EntityType, entityID int64) error
}

// Service implements inventory use cases. Lifecycle transitions adjust
// stock through the repositories directly; this service covers the manual
// maintenance surface and keeps low-stock alerts in sync with edits.
type Service struct {
	productInvRepo  domainInventory.ProductInventoryRepository
	materialInvRepo domainInventory.RawMaterialInventoryRepository
	productRepo     domainCatalog.ProductRepository
	rawMaterialRepo domainCatalog.RawMaterialRepository
	alerts          Alerts
}

func NewService(
	productInvRepo domainInventory.ProductInventoryRepository,
	materialInvRepo domainInventory.RawMaterialInventoryRepository,
	productRepo domainCatalog.ProductRepository,
	rawMaterialRepo domainCatalog.RawMaterialRepository,
	alerts Alerts,
) *Service {
	return &Service{
		productInvRepo:  productInvRepo,
		materialInvRepo: materialInvRepo,
		productRepo:     productRepo,
		rawMaterialRepo: rawMaterialRepo,
		alerts:          alerts,
	}
}

func (s *Service) CreateProductInventory(ctx context.Context, req *CreateProductInventoryRequest) (*ProductInventoryResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidationError, "Invalid input", err)
	}
	if _, err := s.productRepo.GetByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	entity := &domainInventory.ProductInventory{
		ProductID:        req.ProductID,
		Quantity:         req.Quantity,
		ReorderThreshold: req.ReorderThreshold,
	}
	if err := s.productInvRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	if err := s.syncProductAlert(ctx, entity); err != nil {
		return nil, err
	}
	return toProductInventoryResponse(entity), nil
}

func (s *Service) GetProductInventory(ctx context.Context, id int64) (*ProductInventoryResponse, error) {
	entity, err := s.productInvRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductInventoryResponse(entity), nil
}

func (s *Service) UpdateProductInventory(ctx context.Context, id int64, req *UpdateInventoryRequest) (*ProductInventoryResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidationError, "Invalid input", err)
	}

	entity, err := s.productInvRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entity.Quantity = req.Quantity
	entity.ReorderThreshold = req.ReorderThreshold

	if err := s.productInvRepo.Update(ctx, entity); err != nil {
		return nil, err
	}
	if err := s.syncProductAlert(ctx, entity); err != nil {
		return nil, err
	}
	return toProductInventoryResponse(entity), nil
}

func (s *Service) ListProductInventories(ctx context.Context) ([]*ProductInventoryResponse, error) {
	entities, err := s.productInvRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*ProductInventoryResponse, len(entities))
	for i, entity := range entities {
		responses[i] = toProductInventoryResponse(entity)
	}
	return responses, nil
}

func (s *Service) CreateRawMaterialInventory(ctx context.Context, req *CreateRawMaterialInventoryRequest) (*RawMaterialInventoryResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidationError, "Invalid input", err)
	}
	if _, err := s.rawMaterialRepo.GetByID(ctx, req.RawMaterialID); err != nil {
		return nil, err
	}

	entity := &domainInventory.RawMaterialInventory{
		RawMaterialID:    req.RawMaterialID,
		Quantity:         req.Quantity,
		ReorderThreshold: req.ReorderThreshold,
	}
	if err := s.materialInvRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	if err := s.syncMaterialAlert(ctx, entity); err != nil {
		return nil, err
	}
	return toRawMaterialInventoryResponse(entity), nil
}

func (s *Service) GetRawMaterialInventory(ctx context.Context, id int64) (*RawMaterialInventoryResponse, error) {
	entity, err := s.materialInvRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRawMaterialInventoryResponse(entity), nil
}

func (s *Service) UpdateRawMaterialInventory(ctx context.Context, id int64, req *UpdateInventoryRequest) (*RawMaterialInventoryResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidationError, "Invalid input", err)
	}

	entity, err := s.materialInvRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entity.Quantity = req.Quantity
	entity.ReorderThreshold = req.ReorderThreshold

	if err := s.materialInvRepo.Update(ctx, entity); err != nil {
		return nil, err
	}
	if err := s.syncMaterialAlert(ctx, entity); err != nil {
		return nil, err
	}
	return toRawMaterialInventoryResponse(entity), nil
}

func (s *Service) ListRawMaterialInventories(ctx context.Context) ([]*RawMaterialInventoryResponse, error) {
	entities, err := s.materialInvRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*RawMaterialInventoryResponse, len(entities))
	for i, entity := range entities {
		responses[i] = toRawMaterialInventoryResponse(entity)
	}
	return responses, nil
}

func (s *Service) syncProductAlert(ctx context.Context, inv *domainInventory.ProductInventory) error {
	if inv.LowStock() {
		message := fmt.Sprintf("Product %d stock is at or below its reorder threshold", inv.ProductID)
		return s.alerts.Raise(ctx, domainAlert.TypeLowStock, domainAlert.SeverityWarning, domainAlert.EntityProduct, inv.ProductID, message)
	}
	return s.alerts.Resolve(ctx, domainAlert.TypeLowStock, domainAlert.EntityProduct, inv.ProductID)
}

func (s *Service) syncMaterialAlert(ctx context.Context, inv *domainInventory.RawMaterialInventory) error {
	if inv.LowStock() {
		message := fmt.Sprintf("Raw material %d stock is at or below its reorder threshold", inv.RawMaterialID)
		return s.alerts.Raise(ctx, domainAlert.TypeLowStock, domainAlert.SeverityWarning, domainAlert.EntityRawMaterial, inv.RawMaterialID, message)
	}
	return s.alerts.Resolve(ctx, domainAlert.TypeLowStock, domainAlert.EntityRawMaterial, inv.RawMaterialID)
}

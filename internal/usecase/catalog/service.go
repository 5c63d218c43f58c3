package catalog

import (
	"context"

	domainCatalog "logistics-inventory-api/internal/domain/catalog"
	"logistics-inventory-api/internal/logger"
	appErrors "logistics-inventory-api/pkg/errors"
	"logistics-inventory-api/pkg/utils"

	"go.uber.org/zap"
)

// Service implements catalog use cases for products, raw materials and
// suppliers.
type Service struct {
	productRepo     domainCatalog.ProductRepository
	rawMaterialRepo domainCatalog.RawMaterialRepository
	supplierRepo    domainCatalog.SupplierRepository
}

func NewService(
	productRepo domainCatalog.ProductRepository,
	rawMaterialRepo domainCatalog.RawMaterialRepository,
	supplierRepo domainCatalog.SupplierRepository,
) *Service {
	return &Service{
		productRepo:     productRepo,
		rawMaterialRepo: rawMaterialRepo,
		supplierRepo:    supplierRepo,
	}
}

func (s *Service) CreateProduct(ctx context.Context, req *CreateProductRequest) (*ProductResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidationError, "Invalid input", err)
	}

	entity := &domainCatalog.Product{
		Name:                      req.Name,
		Description:               req.Description,
		Unit:                      req.Unit,
		SKU:                       req.SKU,
		ProductionDurationMinutes: req.ProductionDurationMinutes,
	}
	if err := s.productRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	logger.Info("Product created", zap.Int64("product_id", entity.ID), zap.String("sku", entity.SKU))
	return toProductResponse(entity), nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*ProductResponse, error) {
	entity, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(entity), nil
}

func (s *Service) UpdateProduct(ctx context.Context, id int64, req *UpdateProductRequest) (*ProductResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidationError, "Invalid input", err)
	}

	entity, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entity.Name = req.Name
	entity.Description = req.Description
	entity.Unit = req.Unit
	entity.SKU = req.SKU
	entity.ProductionDurationMinutes = req.ProductionDurationMinutes

	if err := s.productRepo.Update(ctx, entity); err != nil {
		return nil, err
	}
	return toProductResponse(entity), nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	return s.productRepo.Delete(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context) ([]*ProductResponse, error) {
	entities, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*ProductResponse, len(entities))
	for i, entity := range entities {
		responses[i] = toProductResponse(entity)
	}
	return responses, nil
}

func (s *Service) CreateRawMaterial(ctx context.Context, req *CreateRawMaterialRequest) (*RawMaterialResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidationError, "Invalid input", err)
	}

	entity := &domainCatalog.RawMaterial{
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
	}
	if err := s.rawMaterialRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	logger.Info("Raw material created", zap.Int64("raw_material_id", entity.ID))
	return toRawMaterialResponse(entity), nil
}

func (s *Service) GetRawMaterial(ctx context.Context, id int64) (*RawMaterialResponse, error) {
	entity, err := s.rawMaterialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRawMaterialResponse(entity), nil
}

func (s *Service) UpdateRawMaterial(ctx context.Context, id int64, req *CreateRawMaterialRequest) (*RawMaterialResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidationError, "Invalid input", err)
	}

	entity, err := s.rawMaterialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entity.Name = req.Name
	entity.Description = req.Description
	entity.Unit = req.Unit

	if err := s.rawMaterialRepo.Update(ctx, entity); err != nil {
		return nil, err
	}
	return toRawMaterialResponse(entity), nil
}

func (s *Service) DeleteRawMaterial(ctx context.Context, id int64) error {
	return s.rawMaterialRepo.Delete(ctx, id)
}

func (s *Service) ListRawMaterials(ctx context.Context) ([]*RawMaterialResponse, error) {
	entities, err := s.rawMaterialRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*RawMaterialResponse, len(entities))
	for i, entity := range entities {
		responses[i] = toRawMaterialResponse(entity)
	}
	return responses, nil
}

func (s *Service) CreateSupplier(ctx context.Context, req *CreateSupplierRequest) (*SupplierResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidationError, "Invalid input", err)
	}

	entity := &domainCatalog.Supplier{
		SupplierName: req.SupplierName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		Country:      req.Country,
	}
	if err := s.supplierRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	logger.Info("Supplier created", zap.Int64("supplier_id", entity.ID))
	return toSupplierResponse(entity), nil
}

func (s *Service) GetSupplier(ctx context.Context, id int64) (*SupplierResponse, error) {
	entity, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(entity), nil
}

func (s *Service) UpdateSupplier(ctx context.Context, id int64, req *CreateSupplierRequest) (*SupplierResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidationError, "Invalid input", err)
	}

	entity, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entity.SupplierName = req.SupplierName
	entity.Email = req.Email
	entity.Phone = req.Phone
	entity.Address = req.Address
	entity.City = req.City
	entity.Country = req.Country

	if err := s.supplierRepo.Update(ctx, entity); err != nil {
		return nil, err
	}
	return toSupplierResponse(entity), nil
}

func (s *Service) DeleteSupplier(ctx context.Context, id int64) error {
	return s.supplierRepo.Delete(ctx, id)
}

func (s *Service) ListSuppliers(ctx context.Context) ([]*SupplierResponse, error) {
	entities, err := s.supplierRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*SupplierResponse, len(entities))
	for i, entity := range entities {
		responses[i] = toSupplierResponse(entity)
	}
	return responses, nil
}

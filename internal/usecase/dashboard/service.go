package dashboard

import (
	"context"

	domainAlert "logistics-inventory-api/internal/domain/alert"
	domainInventory "logistics-inventory-api/internal/domain/inventory"
	domainOrder "logistics-inventory-api/internal/domain/order"
	domainShipment "logistics-inventory-api/internal/domain/shipment"
)

// Service fetches the collections and folds them into a Summary.
type Service struct {
	shipmentRepo    domainShipment.Repository
	orderRepo       domainOrder.Repository
	productInvRepo  domainInventory.ProductInventoryRepository
	materialInvRepo domainInventory.RawMaterialInventoryRepository
	alertRepo       domainAlert.Repository
}

func NewService(
	shipmentRepo domainShipment.Repository,
	orderRepo domainOrder.Repository,
	productInvRepo domainInventory.ProductInventoryRepository,
	materialInvRepo domainInventory.RawMaterialInventoryRepository,
	alertRepo domainAlert.Repository,
) *Service {
	return &Service{
		shipmentRepo:    shipmentRepo,
		orderRepo:       orderRepo,
		productInvRepo:  productInvRepo,
		materialInvRepo: materialInvRepo,
		alertRepo:       alertRepo,
	}
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	shipments, err := s.shipmentRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	productStock, err := s.productInvRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	materialStock, err := s.materialInvRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	alerts, err := s.alertRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := Summarize(Collections{
		Shipments:     shipments,
		Orders:        orders,
		ProductStock:  productStock,
		MaterialStock: materialStock,
		Alerts:        alerts,
	})
	return &summary, nil
}

package scheduler

import (
	"context"
	"time"

	domainOrder "logistics-inventory-api/internal/domain/order"
	domainShipment "logistics-inventory-api/internal/domain/shipment"
	"logistics-inventory-api/internal/lifecycle"
	"logistics-inventory-api/internal/logger"
	orderUsecase "logistics-inventory-api/internal/usecase/order"
	shipmentUsecase "logistics-inventory-api/internal/usecase/shipment"

	"go.uber.org/zap"
)

// ShipmentLifecycle is the slice of the shipment service the sweeps need.
type ShipmentLifecycle interface {
	ChangeStatus(ctx context.Context, req *shipmentUsecase.ChangeStatusRequest) (*shipmentUsecase.ShipmentResponse, error)
}

// OrderLifecycle is the slice of the order service the sweeps need.
type OrderLifecycle interface {
	ChangeStatus(ctx context.Context, id int64, req *orderUsecase.ChangeStatusRequest) (*orderUsecase.OrderResponse, error)
}

// AlertPurger removes stale terminal-event alerts.
type AlertPurger interface {
	PurgeTerminalEvents(ctx context.Context, maxAge time.Duration) error
}

// Scheduler runs the date-driven lifecycle sweeps. Every transition goes
// through the same services the HTTP layer uses, so automatic moves obey
// the same rules and side effects as manual ones.
type Scheduler struct {
	shipmentRepo domainShipment.Repository
	orderRepo    domainOrder.Repository
	shipments    ShipmentLifecycle
	orders       OrderLifecycle
	alerts       AlertPurger

	alertMaxAge time.Duration
	now         func() time.Time
}

func New(
	shipmentRepo domainShipment.Repository,
	orderRepo domainOrder.Repository,
	shipments ShipmentLifecycle,
	orders OrderLifecycle,
	alerts AlertPurger,
	alertMaxAge time.Duration,
) *Scheduler {
	return &Scheduler{
		shipmentRepo: shipmentRepo,
		orderRepo:    orderRepo,
		shipments:    shipments,
		orders:       orders,
		alerts:       alerts,
		alertMaxAge:  alertMaxAge,
		now:          time.Now,
	}
}

// Run executes a sweep immediately, then on every tick until ctx is
// cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Lifecycle scheduler started", zap.Duration("interval", interval))

	s.Sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Lifecycle scheduler stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs all date-driven transitions once. Failures are logged per
// entity; one stuck record never blocks the rest of the sweep.
func (s *Scheduler) Sweep(ctx context.Context) {
	today := s.now()

	s.departPlannedShipments(ctx, today)
	s.flagOverdueShipments(ctx, today)
	s.startDueOrders(ctx, today)
	s.completeDueOrders(ctx, today)

	if err := s.alerts.PurgeTerminalEvents(ctx, s.alertMaxAge); err != nil {
		logger.Error("Failed to purge stale alerts", zap.Error(err))
	}
}

func (s *Scheduler) departPlannedShipments(ctx context.Context, today time.Time) {
	due, err := s.shipmentRepo.ListDueForTransit(ctx, today)
	if err != nil {
		logger.Error("Failed to list shipments due for transit", zap.Error(err))
		return
	}

	for _, entity := range due {
		expected := string(lifecycle.ShipmentPlanned)
		_, err := s.shipments.ChangeStatus(ctx, &shipmentUsecase.ChangeStatusRequest{
			ShipmentID:     entity.ID,
			TargetStatus:   string(lifecycle.ShipmentInTransit),
			ExpectedStatus: &expected,
		})
		if err != nil {
			logger.Error("Failed to move shipment into transit",
				zap.Int64("shipment_id", entity.ID),
				zap.Error(err),
			)
		}
	}
}

func (s *Scheduler) flagOverdueShipments(ctx context.Context, today time.Time) {
	overdue, err := s.shipmentRepo.ListOverdue(ctx, today)
	if err != nil {
		logger.Error("Failed to list overdue shipments", zap.Error(err))
		return
	}

	for _, entity := range overdue {
		expected := string(lifecycle.ShipmentInTransit)
		_, err := s.shipments.ChangeStatus(ctx, &shipmentUsecase.ChangeStatusRequest{
			ShipmentID:     entity.ID,
			TargetStatus:   string(lifecycle.ShipmentDelayed),
			ExpectedStatus: &expected,
		})
		if err != nil {
			logger.Error("Failed to flag shipment as delayed",
				zap.Int64("shipment_id", entity.ID),
				zap.Error(err),
			)
		}
	}
}

// startDueOrders moves orders into IN_PROGRESS when their start date
// arrives. An order whose materials cannot be reserved is cancelled so it
// does not retry forever.
func (s *Scheduler) startDueOrders(ctx context.Context, today time.Time) {
	due, err := s.orderRepo.ListDueToStart(ctx, today)
	if err != nil {
		logger.Error("Failed to list orders due to start", zap.Error(err))
		return
	}

	for _, entity := range due {
		expected := string(lifecycle.OrderPlanned)
		_, err := s.orders.ChangeStatus(ctx, entity.ID, &orderUsecase.ChangeStatusRequest{
			TargetStatus:   string(lifecycle.OrderInProgress),
			ExpectedStatus: &expected,
		})
		if err == nil {
			continue
		}

		logger.Warn("Failed to start production order, cancelling",
			zap.Int64("order_id", entity.ID),
			zap.Error(err),
		)

		_, cancelErr := s.orders.ChangeStatus(ctx, entity.ID, &orderUsecase.ChangeStatusRequest{
			TargetStatus:   string(lifecycle.OrderCancelled),
			ExpectedStatus: &expected,
		})
		if cancelErr != nil {
			logger.Error("Failed to cancel unstartable production order",
				zap.Int64("order_id", entity.ID),
				zap.Error(cancelErr),
			)
		}
	}
}

func (s *Scheduler) completeDueOrders(ctx context.Context, today time.Time) {
	due, err := s.orderRepo.ListDueToComplete(ctx, today)
	if err != nil {
		logger.Error("Failed to list orders due to complete", zap.Error(err))
		return
	}

	for _, entity := range due {
		expected := string(lifecycle.OrderInProgress)
		_, err := s.orders.ChangeStatus(ctx, entity.ID, &orderUsecase.ChangeStatusRequest{
			TargetStatus:   string(lifecycle.OrderCompleted),
			ExpectedStatus: &expected,
		})
		if err != nil {
			logger.Error("Failed to complete production order",
				zap.Int64("order_id", entity.ID),
				zap.Error(err),
			)
		}
	}
}

package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	domainOrder "logistics-inventory-api/internal/domain/order"
	domainShipment "logistics-inventory-api/internal/domain/shipment"
	"logistics-inventory-api/internal/lifecycle"
	orderUsecase "logistics-inventory-api/internal/usecase/order"
	shipmentUsecase "logistics-inventory-api/internal/usecase/shipment"
)

type mockShipmentRepo struct {
	Due     []*domainShipment.Shipment
	Overdue []*domainShipment.Shipment
}

func (m *mockShipmentRepo) Create(ctx context.Context, s *domainShipment.Shipment) error { return nil }
func (m *mockShipmentRepo) GetByID(ctx context.Context, id int64) (*domainShipment.Shipment, error) {
	return nil, domainShipment.ErrShipmentNotFound
}
func (m *mockShipmentRepo) List(ctx context.Context, direction *domainShipment.Direction) ([]*domainShipment.Shipment, error) {
	return nil, nil
}
func (m *mockShipmentRepo) UpdateStatus(ctx context.Context, update domainShipment.StatusUpdate) error {
	return nil
}
func (m *mockShipmentRepo) ListDueForTransit(ctx context.Context, today time.Time) ([]*domainShipment.Shipment, error) {
	return m.Due, nil
}
func (m *mockShipmentRepo) ListOverdue(ctx context.Context, today time.Time) ([]*domainShipment.Shipment, error) {
	return m.Overdue, nil
}
func (m *mockShipmentRepo) NextReferenceSequence(ctx context.Context, day time.Time) (int, error) {
	return 1, nil
}

type mockOrderRepo struct {
	DueToStart    []*domainOrder.ProductionOrder
	DueToComplete []*domainOrder.ProductionOrder
}

func (m *mockOrderRepo) Create(ctx context.Context, o *domainOrder.ProductionOrder) error {
	return nil
}
func (m *mockOrderRepo) GetByID(ctx context.Context, id int64) (*domainOrder.ProductionOrder, error) {
	return nil, domainOrder.ErrOrderNotFound
}
func (m *mockOrderRepo) List(ctx context.Context) ([]*domainOrder.ProductionOrder, error) {
	return nil, nil
}
func (m *mockOrderRepo) UpdateStatus(ctx context.Context, update domainOrder.StatusUpdate) error {
	return nil
}
func (m *mockOrderRepo) ListDueToStart(ctx context.Context, today time.Time) ([]*domainOrder.ProductionOrder, error) {
	return m.DueToStart, nil
}
func (m *mockOrderRepo) ListDueToComplete(ctx context.Context, today time.Time) ([]*domainOrder.ProductionOrder, error) {
	return m.DueToComplete, nil
}

type shipmentCall struct {
	ID       int64
	Target   string
	Expected string
}

type mockShipmentLifecycle struct {
	Calls []shipmentCall
	Err   error
}

func (m *mockShipmentLifecycle) ChangeStatus(ctx context.Context, req *shipmentUsecase.ChangeStatusRequest) (*shipmentUsecase.ShipmentResponse, error) {
	call := shipmentCall{ID: req.ShipmentID, Target: req.TargetStatus}
	if req.ExpectedStatus != nil {
		call.Expected = *req.ExpectedStatus
	}
	m.Calls = append(m.Calls, call)
	return nil, m.Err
}

type orderCall struct {
	ID       int64
	Target   string
	Expected string
}

type mockOrderLifecycle struct {
	Calls []orderCall
	// Errs maps a target status to the error returned for it.
	Errs map[string]error
}

func (m *mockOrderLifecycle) ChangeStatus(ctx context.Context, id int64, req *orderUsecase.ChangeStatusRequest) (*orderUsecase.OrderResponse, error) {
	call := orderCall{ID: id, Target: req.TargetStatus}
	if req.ExpectedStatus != nil {
		call.Expected = *req.ExpectedStatus
	}
	m.Calls = append(m.Calls, call)
	return nil, m.Errs[req.TargetStatus]
}

type mockPurger struct {
	MaxAges []time.Duration
}

func (m *mockPurger) PurgeTerminalEvents(ctx context.Context, maxAge time.Duration) error {
	m.MaxAges = append(m.MaxAges, maxAge)
	return nil
}

func newScheduler(shipRepo *mockShipmentRepo, orderRepo *mockOrderRepo, ships *mockShipmentLifecycle, orders *mockOrderLifecycle, purger *mockPurger) *Scheduler {
	s := New(shipRepo, orderRepo, ships, orders, purger, 72*time.Hour)
	s.now = func() time.Time { return time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC) }
	return s
}

func TestSweepDepartsAndFlagsShipments(t *testing.T) {
	shipRepo := &mockShipmentRepo{
		Due:     []*domainShipment.Shipment{{ID: 1, Status: lifecycle.ShipmentPlanned}},
		Overdue: []*domainShipment.Shipment{{ID: 2, Status: lifecycle.ShipmentInTransit}},
	}
	ships := &mockShipmentLifecycle{}
	purger := &mockPurger{}

	s := newScheduler(shipRepo, &mockOrderRepo{}, ships, &mockOrderLifecycle{}, purger)
	s.Sweep(context.Background())

	if len(ships.Calls) != 2 {
		t.Fatalf("expected two shipment transitions, got %v", ships.Calls)
	}
	depart := ships.Calls[0]
	if depart.ID != 1 || depart.Target != "IN_TRANSIT" || depart.Expected != "PLANNED" {
		t.Errorf("departure call = %+v", depart)
	}
	flag := ships.Calls[1]
	if flag.ID != 2 || flag.Target != "DELAYED" || flag.Expected != "IN_TRANSIT" {
		t.Errorf("overdue call = %+v", flag)
	}

	if len(purger.MaxAges) != 1 || purger.MaxAges[0] != 72*time.Hour {
		t.Errorf("purge calls = %v", purger.MaxAges)
	}
}

func TestSweepStartsAndCompletesOrders(t *testing.T) {
	orderRepo := &mockOrderRepo{
		DueToStart:    []*domainOrder.ProductionOrder{{ID: 5, Status: lifecycle.OrderPlanned}},
		DueToComplete: []*domainOrder.ProductionOrder{{ID: 6, Status: lifecycle.OrderInProgress}},
	}
	orders := &mockOrderLifecycle{}

	s := newScheduler(&mockShipmentRepo{}, orderRepo, &mockShipmentLifecycle{}, orders, &mockPurger{})
	s.Sweep(context.Background())

	if len(orders.Calls) != 2 {
		t.Fatalf("expected two order transitions, got %v", orders.Calls)
	}
	start := orders.Calls[0]
	if start.ID != 5 || start.Target != "IN_PROGRESS" || start.Expected != "PLANNED" {
		t.Errorf("start call = %+v", start)
	}
	complete := orders.Calls[1]
	if complete.ID != 6 || complete.Target != "COMPLETED" || complete.Expected != "IN_PROGRESS" {
		t.Errorf("completion call = %+v", complete)
	}
}

func TestSweepCancelsUnstartableOrder(t *testing.T) {
	orderRepo := &mockOrderRepo{
		DueToStart: []*domainOrder.ProductionOrder{{ID: 5, Status: lifecycle.OrderPlanned}},
	}
	orders := &mockOrderLifecycle{
		Errs: map[string]error{"IN_PROGRESS": errors.New("insufficient raw material stock")},
	}

	s := newScheduler(&mockShipmentRepo{}, orderRepo, &mockShipmentLifecycle{}, orders, &mockPurger{})
	s.Sweep(context.Background())

	if len(orders.Calls) != 2 {
		t.Fatalf("expected start attempt then cancel, got %v", orders.Calls)
	}
	cancel := orders.Calls[1]
	if cancel.ID != 5 || cancel.Target != "CANCELLED" || cancel.Expected != "PLANNED" {
		t.Errorf("fallback cancel call = %+v", cancel)
	}
}

func TestSweepContinuesPastFailures(t *testing.T) {
	shipRepo := &mockShipmentRepo{
		Due: []*domainShipment.Shipment{
			{ID: 1, Status: lifecycle.ShipmentPlanned},
			{ID: 2, Status: lifecycle.ShipmentPlanned},
		},
	}
	ships := &mockShipmentLifecycle{Err: errors.New("boom")}
	purger := &mockPurger{}

	s := newScheduler(shipRepo, &mockOrderRepo{}, ships, &mockOrderLifecycle{}, purger)
	s.Sweep(context.Background())

	if len(ships.Calls) != 2 {
		t.Errorf("a failing shipment must not stop the sweep, got %v", ships.Calls)
	}
	if len(purger.MaxAges) != 1 {
		t.Error("the purge must still run after failures")
	}
}

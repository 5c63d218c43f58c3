package order

import (
	"context"
	"testing"
	"time"

	domainAlert "logistics-inventory-api/internal/domain/alert"
	domainCatalog "logistics-inventory-api/internal/domain/catalog"
	domainInventory "logistics-inventory-api/internal/domain/inventory"
	domainOrder "logistics-inventory-api/internal/domain/order"
	"logistics-inventory-api/internal/lifecycle"
	appErrors "logistics-inventory-api/pkg/errors"
)

// --- MOCKS ---

type mockOrderRepo struct {
	Order *domainOrder.ProductionOrder

	Created []*domainOrder.ProductionOrder
	Updates []domainOrder.StatusUpdate
}

func (m *mockOrderRepo) Create(ctx context.Context, o *domainOrder.ProductionOrder) error {
	o.ID = int64(len(m.Created) + 1)
	m.Created = append(m.Created, o)
	m.Order = o
	return nil
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id int64) (*domainOrder.ProductionOrder, error) {
	if m.Order == nil || m.Order.ID != id {
		return nil, domainOrder.ErrOrderNotFound
	}
	return m.Order, nil
}

func (m *mockOrderRepo) List(ctx context.Context) ([]*domainOrder.ProductionOrder, error) {
	if m.Order == nil {
		return nil, nil
	}
	return []*domainOrder.ProductionOrder{m.Order}, nil
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, update domainOrder.StatusUpdate) error {
	m.Updates = append(m.Updates, update)
	return nil
}

func (m *mockOrderRepo) ListDueToStart(ctx context.Context, today time.Time) ([]*domainOrder.ProductionOrder, error) {
	return nil, nil
}

func (m *mockOrderRepo) ListDueToComplete(ctx context.Context, today time.Time) ([]*domainOrder.ProductionOrder, error) {
	return nil, nil
}

type mockProductRepo struct {
	Product *domainCatalog.Product
}

func (m *mockProductRepo) Create(ctx context.Context, p *domainCatalog.Product) error { return nil }
func (m *mockProductRepo) GetByID(ctx context.Context, id int64) (*domainCatalog.Product, error) {
	if m.Product == nil || m.Product.ID != id {
		return nil, domainCatalog.ErrProductNotFound
	}
	return m.Product, nil
}
func (m *mockProductRepo) Update(ctx context.Context, p *domainCatalog.Product) error { return nil }
func (m *mockProductRepo) Delete(ctx context.Context, id int64) error                 { return nil }
func (m *mockProductRepo) List(ctx context.Context) ([]*domainCatalog.Product, error) {
	return nil, nil
}

type mockRawMaterialRepo struct {
	Known map[int64]bool
}

func (m *mockRawMaterialRepo) Create(ctx context.Context, r *domainCatalog.RawMaterial) error {
	return nil
}
func (m *mockRawMaterialRepo) GetByID(ctx context.Context, id int64) (*domainCatalog.RawMaterial, error) {
	if !m.Known[id] {
		return nil, domainCatalog.ErrRawMaterialNotFound
	}
	return &domainCatalog.RawMaterial{ID: id}, nil
}
func (m *mockRawMaterialRepo) Update(ctx context.Context, r *domainCatalog.RawMaterial) error {
	return nil
}
func (m *mockRawMaterialRepo) Delete(ctx context.Context, id int64) error { return nil }
func (m *mockRawMaterialRepo) List(ctx context.Context) ([]*domainCatalog.RawMaterial, error) {
	return nil, nil
}

type adjustment struct {
	ID    int64
	Delta float64
}

type mockProductInvRepo struct {
	Stock       map[int64]float64
	Adjustments []adjustment
	CreatedRows []*domainInventory.ProductInventory
}

func (m *mockProductInvRepo) Create(ctx context.Context, inv *domainInventory.ProductInventory) error {
	m.CreatedRows = append(m.CreatedRows, inv)
	m.Stock[inv.ProductID] = inv.Quantity
	return nil
}
func (m *mockProductInvRepo) GetByID(ctx context.Context, id int64) (*domainInventory.ProductInventory, error) {
	return nil, domainInventory.ErrInventoryNotFound
}
func (m *mockProductInvRepo) GetByProductID(ctx context.Context, productID int64) (*domainInventory.ProductInventory, error) {
	qty, ok := m.Stock[productID]
	if !ok {
		return nil, domainInventory.ErrInventoryNotFound
	}
	return &domainInventory.ProductInventory{ProductID: productID, Quantity: qty}, nil
}
func (m *mockProductInvRepo) Update(ctx context.Context, inv *domainInventory.ProductInventory) error {
	return nil
}
func (m *mockProductInvRepo) List(ctx context.Context) ([]*domainInventory.ProductInventory, error) {
	return nil, nil
}
func (m *mockProductInvRepo) Adjust(ctx context.Context, productID int64, delta float64) (*domainInventory.ProductInventory, error) {
	qty, ok := m.Stock[productID]
	if !ok {
		return nil, domainInventory.ErrInventoryNotFound
	}
	if qty+delta < 0 {
		return nil, domainInventory.ErrInsufficientStock
	}
	m.Stock[productID] = qty + delta
	m.Adjustments = append(m.Adjustments, adjustment{ID: productID, Delta: delta})
	return &domainInventory.ProductInventory{ProductID: productID, Quantity: qty + delta}, nil
}

type mockMaterialInvRepo struct {
	Stock       map[int64]float64
	Adjustments []adjustment
	CreatedRows []*domainInventory.RawMaterialInventory
}

func (m *mockMaterialInvRepo) Create(ctx context.Context, inv *domainInventory.RawMaterialInventory) error {
	m.CreatedRows = append(m.CreatedRows, inv)
	m.Stock[inv.RawMaterialID] = inv.Quantity
	return nil
}
func (m *mockMaterialInvRepo) GetByID(ctx context.Context, id int64) (*domainInventory.RawMaterialInventory, error) {
	return nil, domainInventory.ErrInventoryNotFound
}
func (m *mockMaterialInvRepo) GetByRawMaterialID(ctx context.Context, rawMaterialID int64) (*domainInventory.RawMaterialInventory, error) {
	qty, ok := m.Stock[rawMaterialID]
	if !ok {
		return nil, domainInventory.ErrInventoryNotFound
	}
	return &domainInventory.RawMaterialInventory{RawMaterialID: rawMaterialID, Quantity: qty}, nil
}
func (m *mockMaterialInvRepo) Update(ctx context.Context, inv *domainInventory.RawMaterialInventory) error {
	return nil
}
func (m *mockMaterialInvRepo) List(ctx context.Context) ([]*domainInventory.RawMaterialInventory, error) {
	return nil, nil
}
func (m *mockMaterialInvRepo) Adjust(ctx context.Context, rawMaterialID int64, delta float64) (*domainInventory.RawMaterialInventory, error) {
	qty, ok := m.Stock[rawMaterialID]
	if !ok {
		return nil, domainInventory.ErrInventoryNotFound
	}
	if qty+delta < 0 {
		return nil, domainInventory.ErrInsufficientStock
	}
	m.Stock[rawMaterialID] = qty + delta
	m.Adjustments = append(m.Adjustments, adjustment{ID: rawMaterialID, Delta: delta})
	return &domainInventory.RawMaterialInventory{RawMaterialID: rawMaterialID, Quantity: qty + delta}, nil
}

type raisedAlert struct {
	Type     domainAlert.Type
	EntityID int64
}

type mockAlerts struct {
	Raised   []raisedAlert
	Resolved []raisedAlert
}

func (m *mockAlerts) Raise(ctx context.Context, alertType domainAlert.Type, severity domainAlert.Severity, entityType domainAlert.EntityType, entityID int64, message string) error {
	m.Raised = append(m.Raised, raisedAlert{Type: alertType, EntityID: entityID})
	return nil
}

func (m *mockAlerts) Resolve(ctx context.Context, alertType domainAlert.Type, entityType domainAlert.EntityType, entityID int64) error {
	m.Resolved = append(m.Resolved, raisedAlert{Type: alertType, EntityID: entityID})
	return nil
}

// --- FIXTURES ---

type fixture struct {
	repo        *mockOrderRepo
	products    *mockProductRepo
	materials   *mockRawMaterialRepo
	productInv  *mockProductInvRepo
	materialInv *mockMaterialInvRepo
	alerts      *mockAlerts
	service     *Service
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T { return &v }

func newFixture(today string) *fixture {
	f := &fixture{
		repo: &mockOrderRepo{},
		products: &mockProductRepo{
			Product: &domainCatalog.Product{ID: 7, Name: "Widget", ProductionDurationMinutes: ptr(int64(60))},
		},
		materials:   &mockRawMaterialRepo{Known: map[int64]bool{3: true, 4: true}},
		productInv:  &mockProductInvRepo{Stock: map[int64]float64{7: 100}},
		materialInv: &mockMaterialInvRepo{Stock: map[int64]float64{3: 50, 4: 50}},
		alerts:      &mockAlerts{},
	}

	f.service = NewService(f.repo, f.products, f.materials, f.productInv, f.materialInv, f.alerts)
	f.service.now = func() time.Time { return date(today) }
	return f
}

func (f *fixture) withOrder(o *domainOrder.ProductionOrder) *fixture {
	f.repo.Order = o
	return f
}

func plannedOrder(status lifecycle.Status) *domainOrder.ProductionOrder {
	return &domainOrder.ProductionOrder{
		ID:              11,
		ReferenceCode:   "PO-A1B2C3D4",
		Status:          status,
		ProductID:       7,
		ProductQuantity: 10,
		Materials: []domainOrder.MaterialLine{
			{RawMaterialID: 3, Quantity: 20},
			{RawMaterialID: 4, Quantity: 5},
		},
		CreationDate: date("2024-01-01"),
	}
}

// --- CREATE ---

func TestCreateOrderDerivesPlannedCompletion(t *testing.T) {
	f := newFixture("2024-01-10")

	resp, err := f.service.CreateOrder(context.Background(), &CreateOrderRequest{
		ProductID:       7,
		ProductQuantity: 24,
		Materials:       []MaterialLineRequest{{RawMaterialID: 3, Quantity: 10}},
		StartDate:       ptr("2024-02-01"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 60 minutes per unit, 24 units: exactly one day of production.
	if resp.PlannedCompletionDate == nil || *resp.PlannedCompletionDate != "2024-02-02" {
		t.Errorf("planned completion = %v, want 2024-02-02", resp.PlannedCompletionDate)
	}
	if resp.Status != "PLANNED" {
		t.Errorf("new order status = %s, want PLANNED", resp.Status)
	}
	if len(resp.ReferenceCode) != 11 || resp.ReferenceCode[:3] != "PO-" {
		t.Errorf("reference code %q does not match PO-XXXXXXXX", resp.ReferenceCode)
	}

	// Creation must not touch material stock.
	if len(f.materialInv.Adjustments) != 0 {
		t.Errorf("creation reserved materials early: %v", f.materialInv.Adjustments)
	}
}

func TestCreateOrderPlannedCompletionRoundsUp(t *testing.T) {
	f := newFixture("2024-01-10")
	// 90 minutes per unit, 20 units: 1800 minutes, a day and a quarter.
	f.products.Product.ProductionDurationMinutes = ptr(int64(90))

	resp, err := f.service.CreateOrder(context.Background(), &CreateOrderRequest{
		ProductID:       7,
		ProductQuantity: 20,
		Materials:       []MaterialLineRequest{{RawMaterialID: 3, Quantity: 10}},
		StartDate:       ptr("2024-02-01"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.PlannedCompletionDate == nil || *resp.PlannedCompletionDate != "2024-02-03" {
		t.Errorf("planned completion = %v, want 2024-02-03", resp.PlannedCompletionDate)
	}
}

func TestCreateOrderNoDurationNoPlannedDate(t *testing.T) {
	f := newFixture("2024-01-10")
	f.products.Product.ProductionDurationMinutes = nil

	resp, err := f.service.CreateOrder(context.Background(), &CreateOrderRequest{
		ProductID:       7,
		ProductQuantity: 5,
		Materials:       []MaterialLineRequest{{RawMaterialID: 3, Quantity: 10}},
		StartDate:       ptr("2024-02-01"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.PlannedCompletionDate != nil {
		t.Errorf("planned completion = %v, want none", *resp.PlannedCompletionDate)
	}
}

func TestCreateOrderUnknownMaterialRejected(t *testing.T) {
	f := newFixture("2024-01-10")

	_, err := f.service.CreateOrder(context.Background(), &CreateOrderRequest{
		ProductID:       7,
		ProductQuantity: 5,
		Materials:       []MaterialLineRequest{{RawMaterialID: 99, Quantity: 10}},
	})

	if err == nil {
		t.Fatal("expected an error for an unknown raw material")
	}
	if len(f.repo.Created) != 0 {
		t.Error("rejected order must not be persisted")
	}
}

// --- CHANGE STATUS ---

func TestChangeStatusStartReservesMaterials(t *testing.T) {
	f := newFixture("2024-01-10").withOrder(plannedOrder(lifecycle.OrderPlanned))

	_, err := f.service.ChangeStatus(context.Background(), 11, &ChangeStatusRequest{
		TargetStatus: "IN_PROGRESS",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.materialInv.Stock[3] != 30 || f.materialInv.Stock[4] != 45 {
		t.Errorf("material stock after start = %v, want {3:30 4:45}", f.materialInv.Stock)
	}

	if len(f.repo.Updates) != 1 {
		t.Fatalf("expected one status write, got %d", len(f.repo.Updates))
	}
	update := f.repo.Updates[0]
	if update.Status != lifecycle.OrderInProgress {
		t.Errorf("status = %s, want IN_PROGRESS", update.Status)
	}
	if update.StartDate == nil || !update.StartDate.Equal(date("2024-01-10")) {
		t.Errorf("start date should default to today, got %v", update.StartDate)
	}
	if update.PlannedCompletionDate == nil {
		t.Error("starting without a planned date should derive one")
	}
}

func TestChangeStatusStartShortageRollsBack(t *testing.T) {
	f := newFixture("2024-01-10").withOrder(plannedOrder(lifecycle.OrderPlanned))
	f.materialInv.Stock[4] = 2

	_, err := f.service.ChangeStatus(context.Background(), 11, &ChangeStatusRequest{
		TargetStatus: "IN_PROGRESS",
	})

	if appErrors.CodeOf(err) != appErrors.CodeInsufficientStock {
		t.Fatalf("expected %s, got %v", appErrors.CodeInsufficientStock, err)
	}

	// The first line's debit must be credited back.
	if f.materialInv.Stock[3] != 50 || f.materialInv.Stock[4] != 2 {
		t.Errorf("stock after rollback = %v, want {3:50 4:2}", f.materialInv.Stock)
	}
	if len(f.repo.Updates) != 0 {
		t.Error("a shortage must leave the order PLANNED")
	}

	var sawShortage bool
	for _, raised := range f.alerts.Raised {
		if raised.Type == domainAlert.TypeRawMaterialShortage && raised.EntityID == 4 {
			sawShortage = true
		}
	}
	if !sawShortage {
		t.Errorf("expected a shortage alert for material 4, got %v", f.alerts.Raised)
	}
}

func TestChangeStatusCompleteCreditsFinishedGoods(t *testing.T) {
	order := plannedOrder(lifecycle.OrderInProgress)
	order.StartDate = ptr(date("2024-01-05"))
	f := newFixture("2024-01-10").withOrder(order)

	_, err := f.service.ChangeStatus(context.Background(), 11, &ChangeStatusRequest{
		TargetStatus: "COMPLETED",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.productInv.Stock[7] != 110 {
		t.Errorf("product stock = %v, want 110", f.productInv.Stock[7])
	}

	update := f.repo.Updates[0]
	if update.ActualCompletionDate == nil || !update.ActualCompletionDate.Equal(date("2024-01-10")) {
		t.Errorf("completion must stamp today, got %v", update.ActualCompletionDate)
	}
}

func TestChangeStatusCompletedIsTerminalForward(t *testing.T) {
	f := newFixture("2024-01-10").withOrder(plannedOrder(lifecycle.OrderCompleted))

	for _, target := range []string{"IN_PROGRESS", "CANCELLED", "REVERSED"} {
		_, err := f.service.ChangeStatus(context.Background(), 11, &ChangeStatusRequest{
			TargetStatus: target,
		})
		if appErrors.CodeOf(err) != appErrors.CodeInvalidTransition {
			t.Errorf("COMPLETED -> %s: expected %s, got %v", target, appErrors.CodeInvalidTransition, err)
		}
	}
	if len(f.repo.Updates) != 0 {
		t.Error("no transition out of COMPLETED may be written")
	}
}

func TestChangeStatusCancelInProgressReturnsMaterials(t *testing.T) {
	order := plannedOrder(lifecycle.OrderInProgress)
	order.PlannedCompletionDate = ptr(date("2024-01-20"))
	f := newFixture("2024-01-10").withOrder(order)

	_, err := f.service.ChangeStatus(context.Background(), 11, &ChangeStatusRequest{
		TargetStatus: "CANCELLED",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.materialInv.Stock[3] != 70 || f.materialInv.Stock[4] != 55 {
		t.Errorf("stock after cancel = %v, want {3:70 4:55}", f.materialInv.Stock)
	}

	update := f.repo.Updates[0]
	if !update.ClearPlannedDate {
		t.Error("cancelling must clear the planned completion date")
	}

	if len(f.alerts.Raised) == 0 || f.alerts.Raised[len(f.alerts.Raised)-1].Type != domainAlert.TypeProductionCancelled {
		t.Errorf("expected a cancellation alert, got %v", f.alerts.Raised)
	}
}

func TestChangeStatusCancelPlannedReturnsNothing(t *testing.T) {
	f := newFixture("2024-01-10").withOrder(plannedOrder(lifecycle.OrderPlanned))

	_, err := f.service.ChangeStatus(context.Background(), 11, &ChangeStatusRequest{
		TargetStatus: "CANCELLED",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.materialInv.Adjustments) != 0 {
		t.Errorf("a PLANNED order holds no materials to return, got %v", f.materialInv.Adjustments)
	}
}

func TestChangeStatusStaleExpectedStatusRejected(t *testing.T) {
	f := newFixture("2024-01-10").withOrder(plannedOrder(lifecycle.OrderInProgress))

	_, err := f.service.ChangeStatus(context.Background(), 11, &ChangeStatusRequest{
		TargetStatus:   "IN_PROGRESS",
		ExpectedStatus: ptr("PLANNED"),
	})

	if appErrors.CodeOf(err) != appErrors.CodeStaleEntity {
		t.Fatalf("expected %s, got %v", appErrors.CodeStaleEntity, err)
	}
	if len(f.materialInv.Adjustments) != 0 {
		t.Error("stale request must not touch inventory")
	}
}

// --- REVERSE ---

func TestReverseCompensatesCompletedOrder(t *testing.T) {
	order := &domainOrder.ProductionOrder{
		ID:              11,
		ReferenceCode:   "PO-A1B2C3D4",
		Status:          lifecycle.OrderCompleted,
		ProductID:       7,
		ProductQuantity: 10,
		Materials: []domainOrder.MaterialLine{
			{RawMaterialID: 3, Quantity: 20},
			{RawMaterialID: 3, Quantity: 5},
		},
		CreationDate: date("2024-01-01"),
	}
	f := newFixture("2024-01-10").withOrder(order)

	_, err := f.service.Reverse(context.Background(), 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.productInv.Stock[7] != 90 {
		t.Errorf("product stock = %v, want 90", f.productInv.Stock[7])
	}

	// Duplicate lines for material 3 collapse into one +25 credit.
	if len(f.materialInv.Adjustments) != 1 || f.materialInv.Adjustments[0].Delta != 25 {
		t.Errorf("expected a single aggregated +25 credit, got %v", f.materialInv.Adjustments)
	}
	if f.materialInv.Stock[3] != 75 {
		t.Errorf("material stock = %v, want 75", f.materialInv.Stock[3])
	}

	update := f.repo.Updates[0]
	if update.Status != lifecycle.OrderReversed {
		t.Errorf("status = %s, want REVERSED", update.Status)
	}

	if len(f.alerts.Raised) != 1 || f.alerts.Raised[0].Type != domainAlert.TypeProductionReversed {
		t.Errorf("expected a reversal alert, got %v", f.alerts.Raised)
	}
}

func TestReverseRequiresCompleted(t *testing.T) {
	for _, status := range []lifecycle.Status{
		lifecycle.OrderPlanned,
		lifecycle.OrderInProgress,
		lifecycle.OrderCancelled,
		lifecycle.OrderReversed,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture("2024-01-10").withOrder(plannedOrder(status))

			_, err := f.service.Reverse(context.Background(), 11)

			if appErrors.CodeOf(err) != appErrors.CodeInvalidTransition {
				t.Fatalf("expected %s, got %v", appErrors.CodeInvalidTransition, err)
			}
			if len(f.repo.Updates) != 0 {
				t.Error("a failed reverse must not be written")
			}
		})
	}
}

func TestReverseFinishedGoodsAlreadyShipped(t *testing.T) {
	f := newFixture("2024-01-10").withOrder(plannedOrder(lifecycle.OrderCompleted))
	f.productInv.Stock[7] = 4

	_, err := f.service.Reverse(context.Background(), 11)

	if appErrors.CodeOf(err) != appErrors.CodeInsufficientStock {
		t.Fatalf("expected %s, got %v", appErrors.CodeInsufficientStock, err)
	}
	if len(f.materialInv.Adjustments) != 0 {
		t.Error("materials must not be credited when the debit fails")
	}
	if len(f.repo.Updates) != 0 {
		t.Error("a failed reverse must not be written")
	}
}

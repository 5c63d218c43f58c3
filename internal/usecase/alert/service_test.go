package alert

import (
	"context"
	"testing"
	"time"

	domainAlert "logistics-inventory-api/internal/domain/alert"
)

type mockAlertRepo struct {
	Existing *domainAlert.Alert

	Created       []*domainAlert.Alert
	Deleted       []domainAlert.Type
	PurgedTypes   []domainAlert.Type
	PurgedCutoffs []time.Time
	PurgeCounts   map[domainAlert.Type]int64
}

func (m *mockAlertRepo) Create(ctx context.Context, a *domainAlert.Alert) error {
	a.ID = int64(len(m.Created) + 1)
	m.Created = append(m.Created, a)
	return nil
}

func (m *mockAlertRepo) GetByID(ctx context.Context, id int64) (*domainAlert.Alert, error) {
	if m.Existing == nil || m.Existing.ID != id {
		return nil, domainAlert.ErrAlertNotFound
	}
	return m.Existing, nil
}

func (m *mockAlertRepo) List(ctx context.Context) ([]*domainAlert.Alert, error) {
	if m.Existing == nil {
		return nil, nil
	}
	return []*domainAlert.Alert{m.Existing}, nil
}

func (m *mockAlertRepo) Delete(ctx context.Context, id int64) error { return nil }

func (m *mockAlertRepo) FindByTypeAndEntity(ctx context.Context, alertType domainAlert.Type, entityType domainAlert.EntityType, entityID int64) (*domainAlert.Alert, error) {
	if m.Existing != nil && m.Existing.AlertType == alertType && m.Existing.EntityType == entityType && m.Existing.EntityID == entityID {
		return m.Existing, nil
	}
	return nil, domainAlert.ErrAlertNotFound
}

func (m *mockAlertRepo) DeleteByTypeAndEntity(ctx context.Context, alertType domainAlert.Type, entityType domainAlert.EntityType, entityID int64) error {
	m.Deleted = append(m.Deleted, alertType)
	return nil
}

func (m *mockAlertRepo) DeleteByTypeOlderThan(ctx context.Context, alertType domainAlert.Type, cutoff time.Time) (int64, error) {
	m.PurgedTypes = append(m.PurgedTypes, alertType)
	m.PurgedCutoffs = append(m.PurgedCutoffs, cutoff)
	return m.PurgeCounts[alertType], nil
}

func TestRaiseCreatesAlert(t *testing.T) {
	repo := &mockAlertRepo{}
	service := NewService(repo)

	err := service.Raise(context.Background(), domainAlert.TypeShipmentDelayed, domainAlert.SeverityWarning, domainAlert.EntityShipment, 42, "late")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.Created) != 1 {
		t.Fatalf("expected one alert, got %d", len(repo.Created))
	}
	created := repo.Created[0]
	if created.AlertType != domainAlert.TypeShipmentDelayed || created.EntityID != 42 {
		t.Errorf("created alert = %+v", created)
	}
}

func TestRaiseDeduplicatesPerEntity(t *testing.T) {
	repo := &mockAlertRepo{
		Existing: &domainAlert.Alert{
			ID:         1,
			AlertType:  domainAlert.TypeShipmentDelayed,
			EntityType: domainAlert.EntityShipment,
			EntityID:   42,
		},
	}
	service := NewService(repo)

	err := service.Raise(context.Background(), domainAlert.TypeShipmentDelayed, domainAlert.SeverityWarning, domainAlert.EntityShipment, 42, "still late")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.Created) != 0 {
		t.Errorf("a persisting condition must not create a second alert, got %d", len(repo.Created))
	}
}

func TestRaiseSameTypeDifferentEntity(t *testing.T) {
	repo := &mockAlertRepo{
		Existing: &domainAlert.Alert{
			ID:         1,
			AlertType:  domainAlert.TypeShipmentDelayed,
			EntityType: domainAlert.EntityShipment,
			EntityID:   42,
		},
	}
	service := NewService(repo)

	err := service.Raise(context.Background(), domainAlert.TypeShipmentDelayed, domainAlert.SeverityWarning, domainAlert.EntityShipment, 43, "late")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.Created) != 1 {
		t.Errorf("a different entity gets its own alert, got %d", len(repo.Created))
	}
}

func TestResolveIsNoOpWithoutAlert(t *testing.T) {
	repo := &mockAlertRepo{}
	service := NewService(repo)

	err := service.Resolve(context.Background(), domainAlert.TypeLowStock, domainAlert.EntityProduct, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.Deleted) != 1 {
		t.Errorf("resolve should delegate to the repository, got %v", repo.Deleted)
	}
}

func TestPurgeTerminalEventsCoversEventTypes(t *testing.T) {
	repo := &mockAlertRepo{PurgeCounts: map[domainAlert.Type]int64{
		domainAlert.TypeShipmentCancelled: 3,
	}}
	service := NewService(repo)

	err := service.PurgeTerminalEvents(context.Background(), 72*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[domainAlert.Type]bool{
		domainAlert.TypeShipmentCancelled:    true,
		domainAlert.TypeProductionCancelled:  true,
		domainAlert.TypeProductionReversed:   true,
		domainAlert.TypeRawMaterialShortage:  true,
	}
	if len(repo.PurgedTypes) != len(want) {
		t.Fatalf("purged types = %v", repo.PurgedTypes)
	}
	for _, purged := range repo.PurgedTypes {
		if !want[purged] {
			t.Errorf("unexpected purge of condition alert type %s", purged)
		}
	}

	// Condition alerts are resolved elsewhere, never purged by age.
	for _, purged := range repo.PurgedTypes {
		if purged == domainAlert.TypeLowStock || purged == domainAlert.TypeShipmentDelayed {
			t.Errorf("condition alert type %s must not be purged", purged)
		}
	}
}

package dashboard

import (
	"testing"

	domainAlert "logistics-inventory-api/internal/domain/alert"
	domainInventory "logistics-inventory-api/internal/domain/inventory"
	domainOrder "logistics-inventory-api/internal/domain/order"
	domainShipment "logistics-inventory-api/internal/domain/shipment"
	"logistics-inventory-api/internal/lifecycle"
)

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(Collections{})

	if got.ActiveShipments != 0 || got.ActiveOrders != 0 || got.OpenAlerts != 0 {
		t.Errorf("empty input should produce zero counts, got %+v", got)
	}
	if len(got.ShipmentsByStatus) != 0 {
		t.Errorf("expected empty status map, got %v", got.ShipmentsByStatus)
	}
}

func TestSummarizeLowStockThreshold(t *testing.T) {
	// A row below its threshold counts; a row without a threshold never
	// does, whatever its quantity.
	got := Summarize(Collections{
		ProductStock: []*domainInventory.ProductInventory{
			{ProductID: 1, Quantity: 5, ReorderThreshold: 10},
			{ProductID: 2, Quantity: 20, ReorderThreshold: 0},
		},
	})

	if got.LowStockProducts != 1 {
		t.Errorf("LowStockProducts = %d, want 1", got.LowStockProducts)
	}
}

func TestSummarizeBoundaryQuantityIsLow(t *testing.T) {
	got := Summarize(Collections{
		MaterialStock: []*domainInventory.RawMaterialInventory{
			{RawMaterialID: 1, Quantity: 10, ReorderThreshold: 10},
		},
	})

	if got.LowStockMaterials != 1 {
		t.Errorf("quantity equal to threshold should count as low, got %d", got.LowStockMaterials)
	}
}

func TestSummarizeCounts(t *testing.T) {
	got := Summarize(Collections{
		Shipments: []*domainShipment.Shipment{
			{Status: lifecycle.ShipmentPlanned},
			{Status: lifecycle.ShipmentInTransit},
			{Status: lifecycle.ShipmentInTransit},
			{Status: lifecycle.ShipmentDelivered},
			{Status: lifecycle.ShipmentCancelled},
		},
		Orders: []*domainOrder.ProductionOrder{
			{Status: lifecycle.OrderInProgress},
			{Status: lifecycle.OrderCompleted},
			{Status: lifecycle.OrderReversed},
		},
		Alerts: []*domainAlert.Alert{
			{Severity: domainAlert.SeverityWarning},
			{Severity: domainAlert.SeverityWarning},
			{Severity: domainAlert.SeverityCritical},
		},
	})

	if got.ActiveShipments != 3 {
		t.Errorf("ActiveShipments = %d, want 3", got.ActiveShipments)
	}
	if got.ShipmentsByStatus["IN_TRANSIT"] != 2 {
		t.Errorf("ShipmentsByStatus[IN_TRANSIT] = %d, want 2", got.ShipmentsByStatus["IN_TRANSIT"])
	}
	// COMPLETED has no forward transitions, so only IN_PROGRESS is active.
	if got.ActiveOrders != 1 {
		t.Errorf("ActiveOrders = %d, want 1", got.ActiveOrders)
	}
	if got.OpenAlerts != 3 {
		t.Errorf("OpenAlerts = %d, want 3", got.OpenAlerts)
	}
	if got.AlertsBySeverity["WARNING"] != 2 {
		t.Errorf("AlertsBySeverity[WARNING] = %d, want 2", got.AlertsBySeverity["WARNING"])
	}
}

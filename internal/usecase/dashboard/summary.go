package dashboard

import (
	domainAlert "logistics-inventory-api/internal/domain/alert"
	domainInventory "logistics-inventory-api/internal/domain/inventory"
	domainOrder "logistics-inventory-api/internal/domain/order"
	domainShipment "logistics-inventory-api/internal/domain/shipment"
	"logistics-inventory-api/internal/lifecycle"
)

// Collections is everything the summary is derived from.
type Collections struct {
	Shipments     []*domainShipment.Shipment
	Orders        []*domainOrder.ProductionOrder
	ProductStock  []*domainInventory.ProductInventory
	MaterialStock []*domainInventory.RawMaterialInventory
	Alerts        []*domainAlert.Alert
}

type Summary struct {
	ShipmentsByStatus map[string]int `json:"shipmentsByStatus"`
	ActiveShipments   int            `json:"activeShipments"`

	OrdersByStatus map[string]int `json:"ordersByStatus"`
	ActiveOrders   int            `json:"activeOrders"`

	LowStockProducts  int `json:"lowStockProducts"`
	LowStockMaterials int `json:"lowStockMaterials"`

	OpenAlerts       int            `json:"openAlerts"`
	AlertsBySeverity map[string]int `json:"alertsBySeverity"`
}

// Summarize is a pure fold over the input collections. Active means the
// entity is in a non-terminal state. Low stock counts rows at or below
// their reorder threshold; rows without a threshold never count.
func Summarize(in Collections) Summary {
	out := Summary{
		ShipmentsByStatus: make(map[string]int),
		OrdersByStatus:    make(map[string]int),
		AlertsBySeverity:  make(map[string]int),
	}

	for _, s := range in.Shipments {
		out.ShipmentsByStatus[string(s.Status)]++
		if !lifecycle.IsTerminal(lifecycle.KindShipment, s.Status) {
			out.ActiveShipments++
		}
	}

	for _, o := range in.Orders {
		out.OrdersByStatus[string(o.Status)]++
		if !lifecycle.IsTerminal(lifecycle.KindProductionOrder, o.Status) {
			out.ActiveOrders++
		}
	}

	for _, inv := range in.ProductStock {
		if inv.LowStock() {
			out.LowStockProducts++
		}
	}
	for _, inv := range in.MaterialStock {
		if inv.LowStock() {
			out.LowStockMaterials++
		}
	}

	out.OpenAlerts = len(in.Alerts)
	for _, a := range in.Alerts {
		out.AlertsBySeverity[string(a.Severity)]++
	}

	return out
}

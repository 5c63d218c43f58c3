package alert

import "time"

type Severity string

const (
	SeverityInfo     Severity = "INFO"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

type Type string

const (
	TypeLowStock            Type = "LOW_STOCK"
	TypeRawMaterialShortage Type = "RAW_MATERIAL_SHORTAGE"
	TypeShipmentDelayed     Type = "SHIPMENT_DELAYED"
	TypeShipmentCancelled   Type = "SHIPMENT_CANCELLED"
	TypeProductionReversed  Type = "PRODUCTION_REVERSED"
	TypeProductionCancelled Type = "PRODUCTION_CANCELLED"
)

// EntityType tags which kind of record triggered an alert.
type EntityType string

const (
	EntityProduct              EntityType = "PRODUCT"
	EntityProductInventory     EntityType = "PRODUCT_INVENTORY"
	EntityRawMaterial          EntityType = "RAW_MATERIAL"
	EntityRawMaterialInventory EntityType = "RAW_MATERIAL_INVENTORY"
	EntityShipment             EntityType = "SHIPMENT"
	EntityProductionOrder      EntityType = "PRODUCTION_ORDER"
)

// Alert is raised by lifecycle side effects and inventory checks, shown on
// the dashboard, and resolved when its condition clears.
type Alert struct {
	ID         int64
	AlertType  Type
	Severity   Severity
	EntityType EntityType
	EntityID   int64
	Message    string
	CreatedAt  time.Time
}

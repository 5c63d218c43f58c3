package lifecycle

// Kind identifies which state machine an entity belongs to. Shipments and
// production orders own separate state sets and transition tables.
type Kind string

const (
	KindShipment        Kind = "SHIPMENT"
	KindProductionOrder Kind = "PRODUCTION_ORDER"
)

// Status is a lifecycle state. Values are the wire representation used by
// the HTTP API and the database.
type Status string

// Shipment statuses.
const (
	ShipmentPlanned   Status = "PLANNED"
	ShipmentInTransit Status = "IN_TRANSIT"
	ShipmentDelivered Status = "DELIVERED"
	ShipmentDelayed   Status = "DELAYED"
	ShipmentCancelled Status = "CANCELLED"
)

// Production order statuses. REVERSED is reachable only through the
// compensating reverse action, never through a forward transition.
const (
	OrderPlanned    Status = "PLANNED"
	OrderInProgress Status = "IN_PROGRESS"
	OrderCompleted  Status = "COMPLETED"
	OrderCancelled  Status = "CANCELLED"
	OrderReversed   Status = "REVERSED"
)

// Single source of truth for legal transitions. The original admin console
// carried three hand-written copies of the shipment table that had drifted
// apart; every caller now derives its options from this registry.
var shipmentTransitions = map[Status][]Status{
	ShipmentPlanned: {
		ShipmentInTransit,
		ShipmentCancelled,
	},
	ShipmentInTransit: {
		ShipmentDelivered,
		ShipmentDelayed,
		ShipmentCancelled,
	},
	ShipmentDelayed: {
		ShipmentInTransit,
		ShipmentDelivered,
		ShipmentCancelled,
	},
	ShipmentDelivered: {
		// Terminal state - no transitions
	},
	ShipmentCancelled: {
		// Terminal state - no transitions
	},
}

var orderTransitions = map[Status][]Status{
	OrderPlanned: {
		OrderInProgress,
		OrderCancelled,
	},
	OrderInProgress: {
		OrderCompleted,
		OrderCancelled,
	},
	OrderCompleted: {
		// Terminal forward; REVERSED only via the compensating action
	},
	OrderCancelled: {
		// Terminal state - no transitions
	},
	OrderReversed: {
		// Terminal state - no transitions
	},
}

func tableFor(kind Kind) map[Status][]Status {
	switch kind {
	case KindShipment:
		return shipmentTransitions
	case KindProductionOrder:
		return orderTransitions
	default:
		return nil
	}
}

// AllowedTransitions returns the registry row for (kind, current), in table
// order. Terminal states and unknown statuses yield an empty slice. The
// returned slice is a copy; callers may filter it freely.
func AllowedTransitions(kind Kind, current Status) []Status {
	row := tableFor(kind)[current]
	out := make([]Status, len(row))
	copy(out, row)
	return out
}

// IsKnownStatus reports whether status belongs to kind's state set.
func IsKnownStatus(kind Kind, status Status) bool {
	_, ok := tableFor(kind)[status]
	return ok
}

// IsTerminal reports whether status has no outgoing transitions.
func IsTerminal(kind Kind, status Status) bool {
	row, ok := tableFor(kind)[status]
	return ok && len(row) == 0
}

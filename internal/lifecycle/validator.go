package lifecycle

import (
	"fmt"
	"time"

	appErrors "logistics-inventory-api/pkg/errors"
)

// FieldSpec describes extra input a transition demands beyond the target
// status itself.
type FieldSpec struct {
	Field    string // wire name of the required field
	Kind     string // "date" is the only kind in use
	MinField string // field the supplied value must not precede
}

// ExtraInput carries the optional fields a caller may attach to a
// transition request.
type ExtraInput struct {
	NewEstimateArrivalDate *time.Time
}

// ValidationError reports a field-level failure of the extra-input contract.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

var estimateArrivalSpec = &FieldSpec{
	Field:    "newEstimateArrivalDate",
	Kind:     "date",
	MinField: "departureDate",
}

// RequiresExtraInput returns the field requirement for (kind, from, to), or
// nil when the target status alone is enough. The only recognized case is a
// shipment resuming transit after a delay, which needs a revised arrival
// estimate.
func RequiresExtraInput(kind Kind, from, to Status) *FieldSpec {
	if kind == KindShipment && from == ShipmentDelayed && to == ShipmentInTransit {
		return estimateArrivalSpec
	}
	return nil
}

// ValidateExtraInput checks supplied values against spec. For the
// estimate-arrival case the date must be present and must not precede the
// shipment's departure date.
func ValidateExtraInput(spec *FieldSpec, input ExtraInput, departureDate time.Time) error {
	if spec == nil {
		return nil
	}

	if input.NewEstimateArrivalDate == nil {
		return appErrors.NewAppError(
			appErrors.CodeMissingExtraInput,
			fmt.Sprintf("Field %s is required for this transition", spec.Field),
			&ValidationError{Field: spec.Field, Reason: "missing"},
		)
	}

	if input.NewEstimateArrivalDate.Before(departureDate) {
		return appErrors.NewAppError(
			appErrors.CodeValidationError,
			fmt.Sprintf("Field %s must not be earlier than the departure date", spec.Field),
			&ValidationError{Field: spec.Field, Reason: "earlier than departure date"},
		)
	}

	return nil
}

// ValidateTransition checks that (kind, current) -> target appears in the
// registry. It fails closed on unknown statuses.
func ValidateTransition(kind Kind, current, target Status) error {
	if !IsKnownStatus(kind, current) {
		return appErrors.NewAppError(
			appErrors.CodeInvalidTransition,
			fmt.Sprintf("Unknown current status: %s", current),
			nil,
		)
	}

	for _, allowed := range tableFor(kind)[current] {
		if target == allowed {
			return nil
		}
	}

	return appErrors.NewAppError(
		appErrors.CodeInvalidTransition,
		fmt.Sprintf("Cannot transition from %s to %s", current, target),
		nil,
	)
}

// DeliveryAllowed reports whether a shipment may be marked DELIVERED given
// its departure date. A shipment that has not departed yet cannot arrive;
// the original console applied this rule on one page only, it now holds for
// every shipment.
func DeliveryAllowed(departureDate, today time.Time) bool {
	return !departureDate.After(today)
}

// ShipmentTransitionOptions is AllowedTransitions for a concrete shipment:
// the registry row with DELIVERED filtered out while the departure date is
// still in the future.
func ShipmentTransitionOptions(current Status, departureDate, today time.Time) []Status {
	row := AllowedTransitions(KindShipment, current)
	if DeliveryAllowed(departureDate, today) {
		return row
	}

	out := row[:0]
	for _, status := range row {
		if status != ShipmentDelivered {
			out = append(out, status)
		}
	}
	return out
}

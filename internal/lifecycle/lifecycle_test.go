package lifecycle

import (
	"reflect"
	"testing"
	"time"

	appErrors "logistics-inventory-api/pkg/errors"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestShipmentTransitionTable(t *testing.T) {
	tests := []struct {
		current Status
		want    []Status
	}{
		{ShipmentPlanned, []Status{ShipmentInTransit, ShipmentCancelled}},
		{ShipmentInTransit, []Status{ShipmentDelivered, ShipmentDelayed, ShipmentCancelled}},
		{ShipmentDelayed, []Status{ShipmentInTransit, ShipmentDelivered, ShipmentCancelled}},
		{ShipmentDelivered, []Status{}},
		{ShipmentCancelled, []Status{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			got := AllowedTransitions(KindShipment, tt.current)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AllowedTransitions(%s) = %v, want %v", tt.current, got, tt.want)
			}
		})
	}
}

func TestOrderTransitionTable(t *testing.T) {
	tests := []struct {
		current Status
		want    []Status
	}{
		{OrderPlanned, []Status{OrderInProgress, OrderCancelled}},
		{OrderInProgress, []Status{OrderCompleted, OrderCancelled}},
		{OrderCompleted, []Status{}},
		{OrderCancelled, []Status{}},
		{OrderReversed, []Status{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			got := AllowedTransitions(KindProductionOrder, tt.current)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AllowedTransitions(%s) = %v, want %v", tt.current, got, tt.want)
			}
		})
	}
}

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		current Status
		target  Status
		wantErr bool
	}{
		{"planned to in transit", KindShipment, ShipmentPlanned, ShipmentInTransit, false},
		{"planned straight to delivered", KindShipment, ShipmentPlanned, ShipmentDelivered, true},
		{"delayed back to in transit", KindShipment, ShipmentDelayed, ShipmentInTransit, false},
		{"delayed to delivered", KindShipment, ShipmentDelayed, ShipmentDelivered, false},
		{"delivered is terminal", KindShipment, ShipmentDelivered, ShipmentInTransit, true},
		{"cancelled is terminal", KindShipment, ShipmentCancelled, ShipmentPlanned, true},
		{"unknown current fails closed", KindShipment, Status("SHIPPED"), ShipmentDelivered, true},
		{"unknown target rejected", KindShipment, ShipmentPlanned, Status("TELEPORTED"), true},
		{"order planned to in progress", KindProductionOrder, OrderPlanned, OrderInProgress, false},
		{"order in progress to completed", KindProductionOrder, OrderInProgress, OrderCompleted, false},
		{"completed not forward reachable to reversed", KindProductionOrder, OrderCompleted, OrderReversed, true},
		{"reversed is terminal", KindProductionOrder, OrderReversed, OrderPlanned, true},
		{"order status not valid for shipments", KindShipment, OrderInProgress, OrderCompleted, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransition(tt.kind, tt.current, tt.target)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTransition(%s, %s, %s) error = %v, wantErr %v", tt.kind, tt.current, tt.target, err, tt.wantErr)
			}
			if err != nil && appErrors.CodeOf(err) != appErrors.CodeInvalidTransition {
				t.Errorf("expected code %s, got %s", appErrors.CodeInvalidTransition, appErrors.CodeOf(err))
			}
		})
	}
}

func TestAllowedTransitionsReturnsCopy(t *testing.T) {
	first := AllowedTransitions(KindShipment, ShipmentInTransit)
	first[0] = ShipmentCancelled

	second := AllowedTransitions(KindShipment, ShipmentInTransit)
	if second[0] != ShipmentDelivered {
		t.Errorf("mutating a returned slice leaked into the registry: got %v", second)
	}
}

func TestIsTerminal(t *testing.T) {
	if !IsTerminal(KindShipment, ShipmentDelivered) {
		t.Error("DELIVERED should be terminal")
	}
	if !IsTerminal(KindProductionOrder, OrderCompleted) {
		t.Error("COMPLETED should have no forward transitions")
	}
	if IsTerminal(KindShipment, ShipmentDelayed) {
		t.Error("DELAYED should not be terminal")
	}
	if IsTerminal(KindShipment, Status("BOGUS")) {
		t.Error("unknown status should not report terminal")
	}
}

func TestRequiresExtraInput(t *testing.T) {
	spec := RequiresExtraInput(KindShipment, ShipmentDelayed, ShipmentInTransit)
	if spec == nil {
		t.Fatal("DELAYED -> IN_TRANSIT should require extra input")
	}
	if spec.Field != "newEstimateArrivalDate" {
		t.Errorf("unexpected field name %q", spec.Field)
	}

	// Every other pair carries no extra requirement.
	if RequiresExtraInput(KindShipment, ShipmentPlanned, ShipmentInTransit) != nil {
		t.Error("PLANNED -> IN_TRANSIT should not require extra input")
	}
	if RequiresExtraInput(KindShipment, ShipmentDelayed, ShipmentDelivered) != nil {
		t.Error("DELAYED -> DELIVERED should not require extra input")
	}
	if RequiresExtraInput(KindProductionOrder, OrderPlanned, OrderInProgress) != nil {
		t.Error("order transitions should not require extra input")
	}
}

func TestValidateExtraInput(t *testing.T) {
	departure := date("2024-01-01")
	spec := RequiresExtraInput(KindShipment, ShipmentDelayed, ShipmentInTransit)

	t.Run("missing date rejected", func(t *testing.T) {
		err := ValidateExtraInput(spec, ExtraInput{}, departure)
		if appErrors.CodeOf(err) != appErrors.CodeMissingExtraInput {
			t.Errorf("expected code %s, got %v", appErrors.CodeMissingExtraInput, err)
		}
	})

	t.Run("date before departure rejected", func(t *testing.T) {
		estimate := date("2023-12-31")
		err := ValidateExtraInput(spec, ExtraInput{NewEstimateArrivalDate: &estimate}, departure)
		if appErrors.CodeOf(err) != appErrors.CodeValidationError {
			t.Errorf("expected code %s, got %v", appErrors.CodeValidationError, err)
		}
	})

	t.Run("date on departure accepted", func(t *testing.T) {
		estimate := date("2024-01-01")
		if err := ValidateExtraInput(spec, ExtraInput{NewEstimateArrivalDate: &estimate}, departure); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("later date accepted", func(t *testing.T) {
		estimate := date("2024-02-01")
		if err := ValidateExtraInput(spec, ExtraInput{NewEstimateArrivalDate: &estimate}, departure); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("nil spec needs nothing", func(t *testing.T) {
		if err := ValidateExtraInput(nil, ExtraInput{}, departure); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestDeliveryAllowed(t *testing.T) {
	today := date("2024-01-15")

	if DeliveryAllowed(date("2024-02-01"), today) {
		t.Error("future departure should block delivery")
	}
	if !DeliveryAllowed(date("2024-01-15"), today) {
		t.Error("departure today should allow delivery")
	}
	if !DeliveryAllowed(date("2024-01-01"), today) {
		t.Error("past departure should allow delivery")
	}
}

func TestShipmentTransitionOptions(t *testing.T) {
	today := date("2024-01-15")

	t.Run("delivered filtered before departure", func(t *testing.T) {
		got := ShipmentTransitionOptions(ShipmentInTransit, date("2024-02-01"), today)
		want := []Status{ShipmentDelayed, ShipmentCancelled}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("full row after departure", func(t *testing.T) {
		got := ShipmentTransitionOptions(ShipmentInTransit, date("2024-01-01"), today)
		want := []Status{ShipmentDelivered, ShipmentDelayed, ShipmentCancelled}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("terminal state yields nothing", func(t *testing.T) {
		got := ShipmentTransitionOptions(ShipmentDelivered, date("2024-01-01"), today)
		if len(got) != 0 {
			t.Errorf("got %v, want empty", got)
		}
	})

	t.Run("filtering does not mutate the registry", func(t *testing.T) {
		ShipmentTransitionOptions(ShipmentInTransit, date("2024-02-01"), today)
		got := AllowedTransitions(KindShipment, ShipmentInTransit)
		want := []Status{ShipmentDelivered, ShipmentDelayed, ShipmentCancelled}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("registry row changed after filtering: got %v", got)
		}
	})
}

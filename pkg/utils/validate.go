package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("user_role", validateUserRole); err != nil {
		return
	}
	if err := validate.RegisterValidation("shipment_direction", validateShipmentDirection); err != nil {
		return
	}
	if err := validate.RegisterValidation("transport_mode", validateTransportMode); err != nil {
		return
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateUserRole(fl validator.FieldLevel) bool {
	role := fl.Field().String()
	validRoles := []string{"admin", "operator"}

	for _, validRole := range validRoles {
		if role == validRole {
			return true
		}
	}
	return false
}

func validateShipmentDirection(fl validator.FieldLevel) bool {
	direction := fl.Field().String()
	return direction == "INBOUND" || direction == "OUTBOUND"
}

func validateTransportMode(fl validator.FieldLevel) bool {
	mode := fl.Field().String()
	return mode == "TRUCK" || mode == "SEA" || mode == "AIR"
}

package shipment

import "errors"

var (
	ErrShipmentNotFound        = errors.New("shipment not found")
	ErrInvalidDirection        = errors.New("invalid shipment direction")
	ErrInvalidTransportMode    = errors.New("invalid transport mode")
	ErrEstimateBeforeDeparture = errors.New("estimate arrival date is earlier than departure date")
	ErrMissingMaterialLink     = errors.New("shipment is missing its material reference")
)

package inventory

import "errors"

var (
	ErrInventoryNotFound  = errors.New("inventory record not found")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrNegativeAdjustment = errors.New("adjustment would make quantity negative")
)

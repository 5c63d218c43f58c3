package order

import "errors"

var (
	ErrOrderNotFound      = errors.New("production order not found")
	ErrNoMaterialLines    = errors.New("production order must include at least one raw material line")
	ErrInvalidQuantity    = errors.New("quantities must be positive")
	ErrNotCompleted       = errors.New("only completed orders can be reversed")
	ErrMaterialShortage   = errors.New("insufficient raw material stock")
	ErrFinishedGoodsMoved = errors.New("finished goods already shipped, cannot reverse")
)

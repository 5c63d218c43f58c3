package catalog

import "errors"

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrRawMaterialNotFound = errors.New("raw material not found")
	ErrSupplierNotFound    = errors.New("supplier not found")
	ErrDuplicateSKU        = errors.New("product sku already exists")
)

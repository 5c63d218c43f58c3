package handler

import (
	"errors"
	"net/http"

	domainAlert "logistics-inventory-api/internal/domain/alert"
	domainCatalog "logistics-inventory-api/internal/domain/catalog"
	domainInventory "logistics-inventory-api/internal/domain/inventory"
	domainOrder "logistics-inventory-api/internal/domain/order"
	domainShipment "logistics-inventory-api/internal/domain/shipment"
	domainUser "logistics-inventory-api/internal/domain/user"
	appErrors "logistics-inventory-api/pkg/errors"
	"logistics-inventory-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses. Conflicts with the
// entity's current state are 409, input problems are 400, missing records
// are 404; anything unrecognized is a 500 with a generic message.
func respondError(c *gin.Context, err error) {
	switch appErrors.CodeOf(err) {
	case appErrors.CodeInvalidTransition, appErrors.CodeStaleEntity, appErrors.CodeInsufficientStock:
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
		return
	case appErrors.CodeValidationError, appErrors.CodeMissingExtraInput:
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	switch {
	case isNotFound(err):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domainUser.ErrInvalidCredential):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domainUser.ErrUsernameTaken), errors.Is(err, domainUser.ErrEmailTaken),
		errors.Is(err, domainCatalog.ErrDuplicateSKU):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, domainShipment.ErrShipmentNotFound) ||
		errors.Is(err, domainOrder.ErrOrderNotFound) ||
		errors.Is(err, domainCatalog.ErrProductNotFound) ||
		errors.Is(err, domainCatalog.ErrRawMaterialNotFound) ||
		errors.Is(err, domainCatalog.ErrSupplierNotFound) ||
		errors.Is(err, domainInventory.ErrInventoryNotFound) ||
		errors.Is(err, domainAlert.ErrAlertNotFound) ||
		errors.Is(err, domainUser.ErrUserNotFound)
}

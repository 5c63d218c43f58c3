package handler

import (
	"net/http"

	"logistics-inventory-api/internal/usecase/alert"
	"logistics-inventory-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	service *alert.Service
}

func NewAlertHandler(service *alert.Service) *AlertHandler {
	return &AlertHandler{service: service}
}

func (h *AlertHandler) RegisterRoutes(router *gin.RouterGroup) {
	alerts := router.Group("/alerts")
	{
		alerts.GET("", h.ListAlerts)
		alerts.GET("/:id", h.GetAlert)
		alerts.DELETE("/:id", h.DeleteAlert)
	}
}

func (h *AlertHandler) ListAlerts(c *gin.Context) {
	result, err := h.service.ListAlerts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Alerts retrieved successfully", result)
}

func (h *AlertHandler) GetAlert(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid alert ID")
		return
	}

	result, err := h.service.GetAlert(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Alert retrieved successfully", result)
}

func (h *AlertHandler) DeleteAlert(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid alert ID")
		return
	}

	if err := h.service.DeleteAlert(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Alert dismissed successfully", nil)
}

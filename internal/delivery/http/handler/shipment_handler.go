package handler

import (
	"net/http"
	"strconv"

	domainShipment "logistics-inventory-api/internal/domain/shipment"
	"logistics-inventory-api/internal/usecase/shipment"
	"logistics-inventory-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ShipmentHandler struct {
	service *shipment.Service
}

func NewShipmentHandler(service *shipment.Service) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

func (h *ShipmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	shipments := router.Group("/shipments")
	{
		shipments.GET("", h.ListShipments)
		shipments.GET("/inbound", h.ListInbound)
		shipments.GET("/outbound", h.ListOutbound)
		shipments.GET("/:id", h.GetShipment)
		shipments.GET("/:id/transitions", h.GetTransitionOptions)
		shipments.POST("", h.CreateShipment)
		shipments.PUT("/change-status", h.ChangeStatus)
	}
}

func (h *ShipmentHandler) CreateShipment(c *gin.Context) {
	var req shipment.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.CreateShipment(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Shipment created successfully", result)
}

func (h *ShipmentHandler) GetShipment(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid shipment ID")
		return
	}

	result, err := h.service.GetShipment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shipment retrieved successfully", result)
}

func (h *ShipmentHandler) ListShipments(c *gin.Context) {
	h.list(c, nil)
}

func (h *ShipmentHandler) ListInbound(c *gin.Context) {
	direction := domainShipment.DirectionInbound
	h.list(c, &direction)
}

func (h *ShipmentHandler) ListOutbound(c *gin.Context) {
	direction := domainShipment.DirectionOutbound
	h.list(c, &direction)
}

func (h *ShipmentHandler) list(c *gin.Context, direction *domainShipment.Direction) {
	result, err := h.service.ListShipments(c.Request.Context(), direction)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shipments retrieved successfully", result)
}

func (h *ShipmentHandler) GetTransitionOptions(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid shipment ID")
		return
	}

	result, err := h.service.TransitionOptions(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Transition options retrieved successfully", result)
}

func (h *ShipmentHandler) ChangeStatus(c *gin.Context) {
	var req shipment.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.ChangeStatus(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shipment status updated successfully", result)
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

package handler

import (
	"net/http"

	"logistics-inventory-api/internal/usecase/inventory"
	"logistics-inventory-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	service *inventory.Service
}

func NewInventoryHandler(service *inventory.Service) *InventoryHandler {
	return &InventoryHandler{service: service}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/product-inventory")
	{
		products.GET("", h.ListProductInventories)
		products.GET("/:id", h.GetProductInventory)
		products.POST("", h.CreateProductInventory)
		products.PUT("/:id", h.UpdateProductInventory)
	}

	materials := router.Group("/raw-material-inventory")
	{
		materials.GET("", h.ListRawMaterialInventories)
		materials.GET("/:id", h.GetRawMaterialInventory)
		materials.POST("", h.CreateRawMaterialInventory)
		materials.PUT("/:id", h.UpdateRawMaterialInventory)
	}
}

func (h *InventoryHandler) CreateProductInventory(c *gin.Context) {
	var req inventory.CreateProductInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.CreateProductInventory(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Product inventory created successfully", result)
}

func (h *InventoryHandler) GetProductInventory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid inventory ID")
		return
	}

	result, err := h.service.GetProductInventory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product inventory retrieved successfully", result)
}

func (h *InventoryHandler) UpdateProductInventory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid inventory ID")
		return
	}

	var req inventory.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpdateProductInventory(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product inventory updated successfully", result)
}

func (h *InventoryHandler) ListProductInventories(c *gin.Context) {
	result, err := h.service.ListProductInventories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product inventories retrieved successfully", result)
}

func (h *InventoryHandler) CreateRawMaterialInventory(c *gin.Context) {
	var req inventory.CreateRawMaterialInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.CreateRawMaterialInventory(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Raw material inventory created successfully", result)
}

func (h *InventoryHandler) GetRawMaterialInventory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid inventory ID")
		return
	}

	result, err := h.service.GetRawMaterialInventory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Raw material inventory retrieved successfully", result)
}

func (h *InventoryHandler) UpdateRawMaterialInventory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid inventory ID")
		return
	}

	var req inventory.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpdateRawMaterialInventory(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Raw material inventory updated successfully", result)
}

func (h *InventoryHandler) ListRawMaterialInventories(c *gin.Context) {
	result, err := h.service.ListRawMaterialInventories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Raw material inventories retrieved successfully", result)
}

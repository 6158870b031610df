package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
	"github.com/polkiloo/storefront/internal/worker"
)

// AdminHandler manages administrative bulk endpoints.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Cancel handles POST /api/admin/orders/cancel.
func (h *AdminHandler) Cancel(c *gin.Context) {
	var req dto.BulkCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	results := h.facade.CancelOrders(c.Request.Context(), req.IDs, req.Reason)
	c.JSON(http.StatusOK, toBulkResponse(results))
}

// UpdateStatus handles POST /api/admin/orders/status.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var req dto.BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		c.Status(http.StatusBadRequest)
		return
	}
	status := model.OrderStatus(req.Status)
	if !status.Valid() {
		c.Status(http.StatusUnprocessableEntity)
		return
	}

	results := h.facade.UpdateOrdersStatus(c.Request.Context(), req.IDs, status)
	c.JSON(http.StatusOK, toBulkResponse(results))
}

// UpdateProductStatus handles POST /api/admin/products/status.
func (h *AdminHandler) UpdateProductStatus(c *gin.Context) {
	var req dto.BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		c.Status(http.StatusBadRequest)
		return
	}
	status := model.ProductStatus(req.Status)
	if !status.Valid() {
		c.Status(http.StatusUnprocessableEntity)
		return
	}

	results := h.facade.UpdateProductsStatus(c.Request.Context(), req.IDs, status)
	c.JSON(http.StatusOK, toBulkResponse(results))
}

func toBulkResponse(results []worker.BulkResult) []dto.BulkItemResponse {
	response := make([]dto.BulkItemResponse, 0, len(results))
	for _, res := range results {
		item := dto.BulkItemResponse{ID: res.ID, OK: res.Err == nil}
		if res.Err != nil {
			item.Error = res.Err.Error()
		}
		response = append(response, item)
	}
	return response
}

package admin

import (
	"errors"
	"strconv"

	handlershared "github.com/favorite-plug/api/internal/http/handlers/shared"
	"github.com/favorite-plug/api/internal/http/response"
	"github.com/favorite-plug/api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListOrders returns all orders, newest first, with purchaser info.
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	status := c.Query("status")

	orders, total, err := h.OrderService.ListAdmin(status, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list orders", err)
		return
	}

	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetOrder returns any order by id.
func (h *Handler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid order id", nil)
		return
	}

	order, err := h.OrderService.GetAdmin(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "order not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load order", err)
		return
	}

	response.Success(c, order)
}

// SetOrderStatusRequest overwrites the order status.
type SetOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetOrderStatus overwrites the status of an order.
func (h *Handler) SetOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid order id", nil)
		return
	}

	var req SetOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	order, err := h.OrderService.SetStatus(uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderStatusInvalid):
			respondError(c, response.CodeBadRequest, "unknown order status", nil)
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "order not found", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update order status", err)
		}
		return
	}

	response.Success(c, order)
}

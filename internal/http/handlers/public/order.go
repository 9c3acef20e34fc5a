package public

import (
	"strconv"

	handlershared "github.com/favorite-plug/api/internal/http/handlers/shared"
	"github.com/favorite-plug/api/internal/http/response"
	"github.com/favorite-plug/api/internal/service"

	"github.com/gin-gonic/gin"
)

// PlaceOrderRequest is the checkout payload.
type PlaceOrderRequest struct {
	ShippingAddress string `json:"shipping_address"`
	ContactPhone    string `json:"contact_phone"`
	CustomerName    string `json:"customer_name"`
	PaymentMethod   string `json:"payment_method"`
}

// PlaceOrder converts the caller's cart into an order.
func (h *Handler) PlaceOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	order, err := h.OrderService.PlaceOrder(userID, service.PlaceOrderInput{
		ShippingAddress: req.ShippingAddress,
		ContactPhone:    req.ContactPhone,
		CustomerName:    req.CustomerName,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		respondOrderPlaceError(c, err)
		return
	}

	response.Success(c, order)
}

// ListMyOrders returns the caller's orders, newest first.
func (h *Handler) ListMyOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	page, pageSize := handlershared.ParsePagination(c)
	orders, total, err := h.OrderService.ListByUser(userID, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list orders", err)
		return
	}

	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetMyOrder returns one of the caller's own orders.
func (h *Handler) GetMyOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid order id", nil)
		return
	}

	order, err := h.OrderService.GetForUser(uint(id), userID)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "order not found"},
		}, response.CodeInternal, "failed to load order")
		return
	}

	response.Success(c, order)
}

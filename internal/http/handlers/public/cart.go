package public

import (
	"strconv"

	"github.com/favorite-plug/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetCart returns the caller's cart with items.
func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	cart, err := h.CartService.Get(userID)
	if err != nil {
		respondCartError(c, err)
		return
	}

	response.Success(c, cart)
}

// AddCartItemRequest puts a product into the cart.
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// AddCartItem adds a product, accumulating the quantity when the product
// is already in the cart.
func (h *Handler) AddCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	cart, err := h.CartService.AddItem(userID, req.ProductID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}

	response.Success(c, cart)
}

// UpdateCartItemRequest overwrites a line quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// UpdateCartItem overwrites the quantity of one cart line.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	cart, err := h.CartService.UpdateItem(userID, uint(productID), req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}

	response.Success(c, cart)
}

// RemoveCartItem drops one product line.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}

	cart, err := h.CartService.RemoveItem(userID, uint(productID))
	if err != nil {
		respondCartError(c, err)
		return
	}

	response.Success(c, cart)
}

// ClearCart empties the caller's cart.
func (h *Handler) ClearCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	if err := h.CartService.Clear(userID); err != nil {
		respondCartError(c, err)
		return
	}

	response.Success(c, gin.H{"cleared": true})
}

package public

import (
	"strconv"

	"github.com/favorite-plug/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListWishlist returns the caller's saved products.
func (h *Handler) ListWishlist(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	items, err := h.WishlistService.List(userID)
	if err != nil {
		respondWishlistError(c, err)
		return
	}

	response.Success(c, items)
}

// AddWishlistItemRequest saves a product.
type AddWishlistItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// AddWishlistItem saves a product; saving twice is a conflict.
func (h *Handler) AddWishlistItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	item, err := h.WishlistService.Add(userID, req.ProductID)
	if err != nil {
		respondWishlistError(c, err)
		return
	}

	response.Success(c, item)
}

// RemoveWishlistItem drops a saved product.
func (h *Handler) RemoveWishlistItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}

	if err := h.WishlistService.Remove(userID, uint(productID)); err != nil {
		respondWishlistError(c, err)
		return
	}

	response.Success(c, gin.H{"removed": true})
}

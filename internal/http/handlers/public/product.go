package public

import (
	"strconv"

	handlershared "github.com/favorite-plug/api/internal/http/handlers/shared"
	"github.com/favorite-plug/api/internal/http/response"
	"github.com/favorite-plug/api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProducts returns the storefront catalog page.
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	category := c.Query("category")
	search := c.Query("search")

	products, total, err := h.ProductService.ListPublic(category, search, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list products", err)
		return
	}

	response.SuccessWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// GetProduct returns one active product.
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}

	product, err := h.ProductService.GetPublicByID(uint(id))
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, msg: "product not found"},
		}, response.CodeInternal, "failed to load product")
		return
	}

	response.Success(c, product)
}

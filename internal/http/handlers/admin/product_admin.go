package admin

import (
	"errors"
	"strconv"

	handlershared "github.com/favorite-plug/api/internal/http/handlers/shared"
	"github.com/favorite-plug/api/internal/http/response"
	"github.com/favorite-plug/api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductRequest is the create/update payload.
type ProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       string   `json:"price" binding:"required"`
	OldPrice    *string  `json:"old_price"`
	Quantity    int      `json:"quantity"`
	Category    string   `json:"category"`
	IsActive    *bool    `json:"is_active"`
	Images      []string `json:"images"`
}

func (r ProductRequest) toServiceInput() (service.ProductInput, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return service.ProductInput{}, err
	}
	input := service.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       price,
		Quantity:    r.Quantity,
		Category:    r.Category,
		IsActive:    r.IsActive,
		Images:      r.Images,
	}
	if r.OldPrice != nil {
		old, err := decimal.NewFromString(*r.OldPrice)
		if err != nil {
			return service.ProductInput{}, err
		}
		input.OldPrice = &old
	}
	return input, nil
}

// ListProducts returns the full catalog including inactive entries.
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	products, total, err := h.ProductService.ListAdmin(c.Query("category"), c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list products", err)
		return
	}
	response.SuccessWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// GetProduct returns any product by id.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	product, err := h.ProductService.GetAdminByID(id)
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, product)
}

// CreateProduct adds a catalog entry.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	input, err := req.toServiceInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid price", err)
		return
	}
	product, err := h.ProductService.Create(input)
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, product)
}

// UpdateProduct replaces a catalog entry.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	input, err := req.toServiceInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid price", err)
		return
	}
	product, err := h.ProductService.Update(id, input)
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct removes a product and its images.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// UploadProductImage stores one image file and returns its URL.
func (h *Handler) UploadProductImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "file is required", err)
		return
	}

	url, err := h.UploadService.SaveImage(file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUploadTooLarge):
			respondError(c, response.CodeBadRequest, "file exceeds the size limit", nil)
		case errors.Is(err, service.ErrUploadBadType), errors.Is(err, service.ErrUploadBadFilename):
			respondError(c, response.CodeBadRequest, "file type is not allowed", nil)
		default:
			respondError(c, response.CodeInternal, "failed to store file", err)
		}
		return
	}

	response.Success(c, gin.H{"url": url})
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid id", nil)
		return 0, false
	}
	return uint(id), true
}

func respondProductError(c *gin.Context, err error) {
	var fieldErr *service.FieldError
	switch {
	case errors.As(err, &fieldErr):
		respondError(c, response.CodeBadRequest, fieldErr.Message, nil)
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "product not found", nil)
	case errors.Is(err, service.ErrProductPriceInvalid):
		respondError(c, response.CodeBadRequest, "product price is invalid", nil)
	default:
		respondError(c, response.CodeInternal, "product operation failed", err)
	}
}

package service

import (
	"strings"

	"github.com/favorite-plug/api/internal/models"
	"github.com/favorite-plug/api/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService handles the catalog.
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates the product service.
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ProductInput is the create/update payload.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	OldPrice    *decimal.Decimal
	Quantity    int
	Category    string
	IsActive    *bool
	Images      []string
}

// ListPublic returns active products for the storefront.
func (s *ProductService) ListPublic(category, search string, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		Category:   category,
		Search:     search,
		OnlyActive: true,
	}
	return s.repo.List(filter)
}

// GetPublicByID returns an active product or ErrNotFound.
func (s *ProductService) GetPublicByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrNotFound
	}
	return product, nil
}

// ListAdmin returns all products including inactive ones.
func (s *ProductService) ListAdmin(category, search string, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: category,
		Search:   search,
	}
	return s.repo.List(filter)
}

// GetAdminByID returns any product or ErrNotFound.
func (s *ProductService) GetAdminByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create adds a catalog entry.
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, NewFieldError("name", "name is required")
	}
	price := input.Price.Round(2)
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrProductPriceInvalid
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	quantity := input.Quantity
	if quantity < 0 {
		quantity = 0
	}

	product := models.Product{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Price:       models.NewMoneyFromDecimal(price),
		Quantity:    quantity,
		Category:    strings.TrimSpace(input.Category),
		IsActive:    isActive,
	}
	if input.OldPrice != nil {
		old := models.NewMoneyFromDecimal(*input.OldPrice)
		product.OldPrice = &old
	}

	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	if len(input.Images) > 0 {
		if err := s.repo.ReplaceImages(product.ID, buildProductImages(product.ID, input.Images)); err != nil {
			return nil, err
		}
	}
	return s.GetAdminByID(product.ID)
}

// Update replaces a catalog entry.
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, NewFieldError("name", "name is required")
	}
	price := input.Price.Round(2)
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrProductPriceInvalid
	}

	product.Name = name
	product.Description = strings.TrimSpace(input.Description)
	product.Price = models.NewMoneyFromDecimal(price)
	product.Category = strings.TrimSpace(input.Category)
	product.OldPrice = nil
	if input.OldPrice != nil {
		old := models.NewMoneyFromDecimal(*input.OldPrice)
		product.OldPrice = &old
	}
	if input.Quantity >= 0 {
		product.Quantity = input.Quantity
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	if input.Images != nil {
		if err := s.repo.ReplaceImages(product.ID, buildProductImages(product.ID, input.Images)); err != nil {
			return nil, err
		}
	}
	return s.GetAdminByID(product.ID)
}

// SetImages replaces the product gallery.
func (s *ProductService) SetImages(id uint, urls []string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	if err := s.repo.ReplaceImages(id, buildProductImages(id, urls)); err != nil {
		return nil, err
	}
	return s.GetAdminByID(id)
}

// Delete removes a product and its images.
func (s *ProductService) Delete(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func buildProductImages(productID uint, urls []string) []models.ProductImage {
	images := make([]models.ProductImage, 0, len(urls))
	for idx, url := range urls {
		url = strings.TrimSpace(url)
		if url == "" {
			continue
		}
		images = append(images, models.ProductImage{
			ProductID: productID,
			URL:       url,
			SortOrder: idx,
		})
	}
	return images
}

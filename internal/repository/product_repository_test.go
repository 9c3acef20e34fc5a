package repository

import (
	"testing"

	"github.com/favorite-plug/api/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.ProductImage{}); err != nil {
		t.Fatalf("migrate product tables failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createTestProduct(t *testing.T, repo *GormProductRepository, name, category string, price int64, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:     name,
		Category: category,
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Quantity: 10,
		IsActive: active,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestProductListFiltersCategoryAndActive(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createTestProduct(t, repo, "Vape Pen", "filter-vapes", 250, true)
	createTestProduct(t, repo, "Grinder", "filter-accessories", 120, true)
	createTestProduct(t, repo, "Hidden Pen", "filter-vapes", 300, false)

	products, total, err := repo.List(ProductListFilter{
		Page:       1,
		PageSize:   20,
		Category:   "filter-vapes",
		OnlyActive: true,
	})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("list want 1 got total=%d len=%d", total, len(products))
	}
	if products[0].Name != "Vape Pen" {
		t.Fatalf("product name want Vape Pen got %s", products[0].Name)
	}
}

func TestProductListSearchMatchesNameAndDescription(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	first := createTestProduct(t, repo, "Rocket Booster", "search-vapes", 99, true)
	first.Description = "limited edition"
	if err := repo.Update(first); err != nil {
		t.Fatalf("update product failed: %v", err)
	}
	createTestProduct(t, repo, "Plain Pen", "search-vapes", 50, true)

	products, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 20, Search: "Rocket"})
	if err != nil {
		t.Fatalf("search by name failed: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("search by name want 1 got total=%d len=%d", total, len(products))
	}

	products, total, err = repo.List(ProductListFilter{Page: 1, PageSize: 20, Search: "limited"})
	if err != nil {
		t.Fatalf("search by description failed: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("search by description want 1 got total=%d len=%d", total, len(products))
	}
}

func TestProductReplaceImagesSwapsFullSet(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	product := createTestProduct(t, repo, "Imaged", "vapes", 80, true)

	if err := repo.ReplaceImages(product.ID, []models.ProductImage{
		{URL: "/uploads/products/a.png", SortOrder: 0},
		{URL: "/uploads/products/b.png", SortOrder: 1},
	}); err != nil {
		t.Fatalf("replace images failed: %v", err)
	}

	if err := repo.ReplaceImages(product.ID, []models.ProductImage{
		{URL: "/uploads/products/c.png", SortOrder: 0},
	}); err != nil {
		t.Fatalf("second replace images failed: %v", err)
	}

	images, err := repo.ListImages(product.ID)
	if err != nil {
		t.Fatalf("list images failed: %v", err)
	}
	if len(images) != 1 {
		t.Fatalf("images len want 1 got %d", len(images))
	}
	if images[0].URL != "/uploads/products/c.png" {
		t.Fatalf("image url want /uploads/products/c.png got %s", images[0].URL)
	}
}

func TestProductGetByIDMissingReturnsNil(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	product, err := repo.GetByID(9999)
	if err != nil {
		t.Fatalf("get missing product failed: %v", err)
	}
	if product != nil {
		t.Fatalf("missing product should be nil")
	}
}

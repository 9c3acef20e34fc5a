package main

import (
	"github.com/favorite-plug/api/internal/config"
	"github.com/favorite-plug/api/internal/logger"
	"github.com/favorite-plug/api/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	if err := models.InitDefaultAdmin(cfg.Admin.Email, cfg.Admin.Password); err != nil {
		stdLog.Printf("failed to seed default admin: %v", err)
	}

	products := []models.Product{
		{
			Name:        "Wireless Bluetooth Earphones",
			Description: "High quality sound, long battery life, comfortable to wear.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(99.99)),
			Quantity:    120,
			Category:    "electronics",
			IsActive:    true,
			Images: []models.ProductImage{
				{URL: "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=800"},
			},
		},
		{
			Name:        "Smart Watch",
			Description: "Heart-rate tracking, sleep analysis and a week of battery.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(199.00)),
			Quantity:    60,
			Category:    "electronics",
			IsActive:    true,
			Images: []models.ProductImage{
				{URL: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800"},
			},
		},
		{
			Name:        "Insulated Water Bottle",
			Description: "Keeps drinks cold for 24 hours or hot for 12.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(24.50)),
			Quantity:    300,
			Category:    "lifestyle",
			IsActive:    true,
			Images: []models.ProductImage{
				{URL: "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=800"},
			},
		},
		{
			Name:        "USB-C Charging Cable",
			Description: "Braided 2m cable, 100W power delivery.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(12.99)),
			Quantity:    500,
			Category:    "accessories",
			IsActive:    true,
		},
		{
			Name:        "Mechanical Keyboard",
			Description: "Hot-swappable switches, RGB backlight, aluminium frame.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(149.00)),
			Quantity:    45,
			Category:    "electronics",
			IsActive:    true,
			Images: []models.ProductImage{
				{URL: "https://images.unsplash.com/photo-1618384887929-16ec33fab9ef?w=800"},
			},
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", product.Name).First(&existing).Error; err == nil {
			stdLog.Printf("product already exists: %s", product.Name)
			continue
		}
		if err := models.DB.Create(&product).Error; err != nil {
			stdLog.Printf("failed to create product %s: %v", product.Name, err)
			continue
		}
		stdLog.Printf("created product: %s", product.Name)
	}

	stdLog.Printf("seed complete")
}

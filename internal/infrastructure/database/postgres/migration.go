// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	models := []interface{}{
		&catalog.Product{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_products_rating ON products(rating DESC)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",
	}

	for _, index := range indexes {
		if err := m.db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	log.Println("✅ Database indexes created successfully")
	return nil
}

// SeedInitialData seeds the catalog with sample products when empty
func (m *Migration) SeedInitialData() error {
	var count int64
	if err := m.db.Model(&catalog.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		log.Printf("Catalog already has %d products, skipping seed", count)
		return nil
	}

	log.Println("🔄 Seeding sample catalog...")

	products := []catalog.Product{
		{Name: "Red Leather Hand Bag", Category: "Hand Bag", Price: 5000, OriginalPrice: 8000, Rating: 4.5, Image: "/products/p41.jpg"},
		{Name: "Classic Blue Wallet", Category: "Wallet", Price: 1200, OriginalPrice: 1200, Rating: 4.0, Image: "/products/p21.jpg"},
		{Name: "Runner Kicks", Category: "Kick for Men", Price: 3500, OriginalPrice: 4200, Rating: 4.2, Image: "/products/p11.jpg"},
		{Name: "Street Kicks", Category: "Kick for Women", Price: 3200, OriginalPrice: 4000, Rating: 4.6, Image: "/products/p1.jpg"},
		{Name: "Braided Belt", Category: "Belt", Price: 900, OriginalPrice: 1500, Rating: 3.9, Image: "/products/p31.jpg"},
		{Name: "Canvas Backpack", Category: "Backpacks", Price: 2800, OriginalPrice: 2800, Rating: 4.3, Image: "/products/p51.jpg"},
		{Name: "Bomber Jacket", Category: "Jackets", Price: 6500, OriginalPrice: 9000, Rating: 4.7, Image: "/products/p71.jpg"},
		{Name: "Slim Fit Pants", Category: "Pants", Price: 2100, OriginalPrice: 2600, Rating: 4.1, Image: "/products/p81.jpg"},
		{Name: "Rose Eau de Parfum", Category: "Perfume for Women", Price: 4500, OriginalPrice: 5200, Rating: 4.8, Image: "/products/p91.jpg"},
		{Name: "Oud Eau de Parfum", Category: "Perfume for Men", Price: 4800, OriginalPrice: 6000, Rating: 4.4, Image: "/products/p115.jpg"},
		{Name: "Chronograph Watch", Category: "Watch for Men", Price: 12500, OriginalPrice: 16000, Rating: 4.9, Image: "/products/p125.jpg"},
		{Name: "Rose Gold Watch", Category: "Watch for Women", Price: 11000, OriginalPrice: 14000, Rating: 4.6, Image: "/products/p271.jpg"},
		{Name: "Aviator Sunglasses", Category: "Sunglasses for Men", Price: 2400, OriginalPrice: 3000, Rating: 4.2, Image: "/products/p301.jpg"},
		{Name: "Cat Eye Sunglasses", Category: "Ladies Sunglasses", Price: 2600, OriginalPrice: 3400, Rating: 4.5, Image: "/products/p371.jpg"},
		{Name: "Round Acetate Frames", Category: "Frames", Price: 1800, OriginalPrice: 1800, Rating: 4.0, Image: "/products/p401.jpg"},
	}

	if err := m.db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Printf("✅ Seeded %d products", len(products))
	return nil
}

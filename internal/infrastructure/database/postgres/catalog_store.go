// internal/infrastructure/database/postgres/catalog_store.go
package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// LoadCatalog reads the full product list in insertion order. This is the
// one-shot delivery the in-memory engine consumes at startup; the engine
// never queries the database afterwards.
func LoadCatalog(db *gorm.DB) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := db.Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return products, nil
}

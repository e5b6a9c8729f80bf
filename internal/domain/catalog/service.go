// internal/domain/catalog/service.go
package catalog

import (
	"errors"
	"sync"
)

// ErrProductNotFound is returned when a product ID is not in the catalog
var ErrProductNotFound = errors.New("product not found")

// Service holds the in-memory catalog. The product list is delivered once by
// an external provider and replaced wholesale; queries are evaluated against
// the current snapshot on every call. The mutex exists because the HTTP layer
// serves concurrent readers, not because the engine itself keeps query state.
type Service struct {
	mu         sync.RWMutex
	products   []Product
	categories []CategoryMeta
}

// CategoryMeta is static browsing-grid metadata for a category. Display
// names and images are configuration-like data; only the name participates
// in filtering.
type CategoryMeta struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// CategorySummary is a category with its live product count
type CategorySummary struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Count int    `json:"count"`
}

// NewService creates a catalog service with the given category metadata
func NewService(categories []CategoryMeta) *Service {
	return &Service{
		categories: categories,
	}
}

// SetProducts replaces the whole catalog with a new product batch
func (s *Service) SetProducts(products []Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make([]Product, len(products))
	copy(s.products, products)
}

// Products returns a copy of the full catalog in ingestion order
func (s *Service) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Count returns the number of products in the catalog
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Query evaluates the criteria against the current catalog snapshot
func (s *Service) Query(c Criteria) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Evaluate(s.products, c)
}

// GetProduct retrieves a single product by ID
func (s *Service) GetProduct(id uint) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// Categories returns the browsing grid: static metadata joined with live
// per-category product counts. Counting uses the same normalization as the
// category filter so encoding variants land in the right bucket.
func (s *Service) Categories() []CategorySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int, len(s.categories))
	for _, p := range s.products {
		counts[NormalizeCategory(p.Category)]++
	}

	summaries := make([]CategorySummary, len(s.categories))
	for i, meta := range s.categories {
		summaries[i] = CategorySummary{
			Name:  meta.Name,
			Image: meta.Image,
			Count: counts[NormalizeCategory(meta.Name)],
		}
	}
	return summaries
}

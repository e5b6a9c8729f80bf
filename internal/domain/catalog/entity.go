// internal/domain/catalog/entity.go
package catalog

import (
	"math"
	"time"
)

// Product represents a catalog product. Products are immutable once ingested;
// the engine never writes to them.
type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null;size:255" json:"name"`
	Category      string    `gorm:"not null;size:255;index" json:"category"`
	Price         int64     `gorm:"not null" json:"price"`          // Price in currency subunits
	OriginalPrice int64     `gorm:"not null" json:"original_price"` // List price before discount
	Rating        float64   `gorm:"default:0" json:"rating"`        // 0.0 - 5.0
	Image         string    `gorm:"size:500" json:"image"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}

// IsDiscounted reports whether the product is currently sold below list price
func (p *Product) IsDiscounted() bool {
	return p.OriginalPrice > p.Price
}

// DiscountFraction returns the discount as a fraction of the list price.
// A zero or missing list price yields 0 rather than a division by zero.
func (p *Product) DiscountFraction() float64 {
	if p.OriginalPrice <= 0 || p.Price >= p.OriginalPrice {
		return 0
	}
	return float64(p.OriginalPrice-p.Price) / float64(p.OriginalPrice)
}

// GetDiscountPercentage returns the rounded discount percentage for display
func (p *Product) GetDiscountPercentage() int {
	return DiscountPercentage(p.OriginalPrice, p.Price)
}

// DiscountPercentage computes round(100 * (originalPrice - price) / originalPrice).
// Returns 0 when originalPrice is zero or the product is not discounted.
func DiscountPercentage(originalPrice, price int64) int {
	if originalPrice <= 0 || price >= originalPrice {
		return 0
	}
	return int(math.Round(float64(originalPrice-price) / float64(originalPrice) * 100))
}

// CategoryAll is the sentinel that disables category filtering
const CategoryAll = "All"

// SortMode selects the comparator applied after filtering
type SortMode string

const (
	SortFeatured  SortMode = "featured"   // no reordering, keeps catalog order
	SortPriceLow  SortMode = "price-low"  // price ascending
	SortPriceHigh SortMode = "price-high" // price descending
	SortRating    SortMode = "rating"     // rating descending
	SortDiscount  SortMode = "discount"   // discount fraction descending
)

// PriceRange is an inclusive [Min, Max] bound on the current price.
// An inverted range matches nothing.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Contains reports whether price lies within the inclusive bounds
func (r PriceRange) Contains(price int64) bool {
	return price >= r.Min && price <= r.Max
}

// FullPriceRange returns a range that every non-negative price satisfies
func FullPriceRange() PriceRange {
	return PriceRange{Min: 0, Max: math.MaxInt64}
}

// Criteria is the complete query a visitor has active. It is replaced
// wholesale on every change, never patched field by field.
//
// Search is matched as a case-insensitive substring of the product name.
// Only the empty string disables the search stage; a term of bare
// whitespace is kept as-is and matches the literal whitespace.
type Criteria struct {
	Search   string     `json:"search"`
	Category string     `json:"category"`
	Price    PriceRange `json:"price"`
	Sort     SortMode   `json:"sort"`
}

// internal/domain/cart/entity.go
package cart

import (
	"time"
)

// LineItem is one distinct product's presence in a cart. Name, price and
// image are a snapshot captured when the product was added; they are not
// re-resolved against the catalog afterwards.
type LineItem struct {
	ProductID uint      `json:"product_id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Image     string    `json:"image"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// Cart is a guest session cart stored in Redis. Items keep insertion order;
// product IDs are unique across items and quantities are always positive — a
// line that would drop to zero is removed instead.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int   `json:"item_count"`     // Number of distinct line items (cart badge)
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	TotalPrice    int64 `json:"total_price"`    // Sum of price * quantity
}

// internal/domain/cart/cart.go
package cart

import (
	"time"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// The mutation operations below are the whole write surface of a cart.
// They are plain in-memory transformations; persistence is the service's
// concern.

// Add increments the quantity of an existing line item for the product, or
// appends a new line with quantity 1 and a snapshot of the product's display
// fields. An existing line keeps its original snapshot.
func (c *Cart) Add(p catalog.Product) {
	if item := c.find(p.ID); item != nil {
		item.Quantity++
		return
	}
	c.Items = append(c.Items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
		AddedAt:   time.Now().UTC(),
	})
}

// Remove deletes the line item for the product ID. Removing an absent
// product is a no-op, not an error.
func (c *Cart) Remove(productID uint) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the quantity of an existing line item. A quantity of
// zero or less removes the line — zero-quantity items are never retained.
// A positive quantity for a product not in the cart is a no-op: there is no
// snapshot to build a line from, so callers must use Add first.
func (c *Cart) SetQuantity(productID uint, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	if item := c.find(productID); item != nil {
		item.Quantity = quantity
	}
}

// TotalPrice returns the sum of price * quantity across all line items
func (c *Cart) TotalPrice() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// ItemCount returns the number of distinct line items
func (c *Cart) ItemCount() int {
	return len(c.Items)
}

// TotalQuantity returns the sum of quantities across all line items
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Totals computes all derived values in one pass over the items
func (c *Cart) Totals() Totals {
	totals := Totals{ItemCount: len(c.Items)}
	for _, item := range c.Items {
		totals.TotalQuantity += item.Quantity
		totals.TotalPrice += item.Price * int64(item.Quantity)
	}
	return totals
}

func (c *Cart) find(productID uint) *LineItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

package cart

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

var (
	redBag     = catalog.Product{ID: 1, Name: "Red Bag", Category: "Hand Bag", Price: 5000, OriginalPrice: 8000, Image: "/products/p41.jpg"}
	blueWallet = catalog.Product{ID: 2, Name: "Blue Wallet", Category: "Wallet", Price: 1200, OriginalPrice: 1200, Image: "/products/p21.jpg"}
)

func Test_Cart_Add(t *testing.T) {
	t.Run("new product creates a line with quantity 1 and a snapshot", func(t *testing.T) {
		c := &Cart{}
		c.Add(redBag)

		require.Len(t, c.Items, 1)
		item := c.Items[0]
		assert.Equal(t, uint(1), item.ProductID)
		assert.Equal(t, "Red Bag", item.Name)
		assert.Equal(t, int64(5000), item.Price)
		assert.Equal(t, "/products/p41.jpg", item.Image)
		assert.Equal(t, 1, item.Quantity)
	})

	t.Run("same product twice increments quantity on a single line", func(t *testing.T) {
		c := &Cart{}
		c.Add(redBag)
		c.Add(redBag)

		require.Len(t, c.Items, 1)
		assert.Equal(t, 2, c.Items[0].Quantity)
		assert.Equal(t, int64(10000), c.TotalPrice())
	})

	t.Run("existing line keeps its original snapshot", func(t *testing.T) {
		c := &Cart{}
		c.Add(redBag)

		repriced := redBag
		repriced.Price = 9999
		c.Add(repriced)

		require.Len(t, c.Items, 1)
		assert.Equal(t, int64(5000), c.Items[0].Price)
		assert.Equal(t, 2, c.Items[0].Quantity)
	})

	t.Run("distinct products keep insertion order", func(t *testing.T) {
		c := &Cart{}
		c.Add(blueWallet)
		c.Add(redBag)

		require.Len(t, c.Items, 2)
		assert.Equal(t, uint(2), c.Items[0].ProductID)
		assert.Equal(t, uint(1), c.Items[1].ProductID)
	})
}

func Test_Cart_Remove(t *testing.T) {
	t.Run("add then remove round-trips to the prior state", func(t *testing.T) {
		c := &Cart{}
		c.Add(blueWallet)
		before := len(c.Items)

		c.Add(redBag)
		c.Remove(redBag.ID)

		assert.Len(t, c.Items, before)
		assert.Equal(t, uint(2), c.Items[0].ProductID)
	})

	t.Run("removing an absent product is a no-op", func(t *testing.T) {
		c := &Cart{}
		c.Add(redBag)

		c.Remove(99)

		assert.Len(t, c.Items, 1)
	})
}

func Test_Cart_SetQuantity(t *testing.T) {
	t.Run("positive quantity replaces the existing quantity", func(t *testing.T) {
		c := &Cart{}
		c.Add(redBag)

		c.SetQuantity(redBag.ID, 5)

		assert.Equal(t, 5, c.Items[0].Quantity)
		assert.Equal(t, int64(25000), c.TotalPrice())
	})

	t.Run("zero quantity is observationally equivalent to remove", func(t *testing.T) {
		viaSet := &Cart{}
		viaSet.Add(redBag)
		viaSet.Add(blueWallet)
		viaSet.SetQuantity(redBag.ID, 0)

		viaRemove := &Cart{}
		viaRemove.Add(redBag)
		viaRemove.Add(blueWallet)
		viaRemove.Remove(redBag.ID)

		require.Len(t, viaSet.Items, 1)
		require.Len(t, viaRemove.Items, 1)
		assert.Equal(t, viaRemove.Items[0].ProductID, viaSet.Items[0].ProductID)
		assert.Equal(t, viaRemove.Items[0].Quantity, viaSet.Items[0].Quantity)
		assert.Equal(t, viaRemove.Totals(), viaSet.Totals())
	})

	t.Run("negative quantity removes the line", func(t *testing.T) {
		c := &Cart{}
		c.Add(redBag)

		c.SetQuantity(redBag.ID, -3)

		assert.Empty(t, c.Items)
		assert.Equal(t, 0, c.ItemCount())
	})

	t.Run("positive quantity for an absent product is a no-op", func(t *testing.T) {
		c := &Cart{}
		c.Add(redBag)

		c.SetQuantity(99, 4)

		require.Len(t, c.Items, 1)
		assert.Equal(t, 1, c.Items[0].Quantity)
	})
}

func Test_Cart_Totals(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		c := &Cart{}
		totals := c.Totals()
		assert.Equal(t, Totals{}, totals)
	})

	t.Run("item count is distinct lines, not total quantity", func(t *testing.T) {
		c := &Cart{}
		c.Add(redBag)
		c.Add(redBag)
		c.Add(blueWallet)

		totals := c.Totals()
		assert.Equal(t, 2, totals.ItemCount)
		assert.Equal(t, 3, totals.TotalQuantity)
		assert.Equal(t, int64(2*5000+1200), totals.TotalPrice)
	})

	t.Run("emptying via set-quantity zero", func(t *testing.T) {
		c := &Cart{}
		c.Add(redBag)
		c.Add(redBag)
		require.Equal(t, int64(10000), c.TotalPrice())

		c.SetQuantity(redBag.ID, 0)

		assert.Equal(t, 0, c.ItemCount())
		assert.Equal(t, int64(0), c.TotalPrice())
	})
}

// Randomized operation sequences: the invariants must hold regardless of the
// order of adds, updates and removes.
func Test_Cart_RandomizedOperations(t *testing.T) {
	products := []catalog.Product{
		redBag,
		blueWallet,
		{ID: 3, Name: "Brown Belt", Category: "Belt", Price: 900, OriginalPrice: 1500},
		{ID: 4, Name: "Black Bag", Category: "Hand Bag", Price: 7000, OriginalPrice: 7000},
	}

	rng := rand.New(rand.NewSource(42))
	c := &Cart{}
	expected := make(map[uint]int) // product ID -> quantity

	for i := 0; i < 500; i++ {
		p := products[rng.Intn(len(products))]
		switch rng.Intn(3) {
		case 0:
			c.Add(p)
			expected[p.ID]++
		case 1:
			qty := rng.Intn(6) - 1 // -1..4, exercises the removal path too
			if _, exists := expected[p.ID]; exists {
				if qty <= 0 {
					delete(expected, p.ID)
				} else {
					expected[p.ID] = qty
				}
			}
			c.SetQuantity(p.ID, qty)
		case 2:
			c.Remove(p.ID)
			delete(expected, p.ID)
		}
	}

	// No duplicate lines, no zero quantities
	seen := make(map[uint]bool)
	for _, item := range c.Items {
		assert.False(t, seen[item.ProductID], "duplicate line for product %d", item.ProductID)
		seen[item.ProductID] = true
		assert.Greater(t, item.Quantity, 0)
	}

	// Line items match the model exactly
	require.Equal(t, len(expected), c.ItemCount())
	var wantTotal int64
	for _, item := range c.Items {
		assert.Equal(t, expected[item.ProductID], item.Quantity)
		for _, p := range products {
			if p.ID == item.ProductID {
				wantTotal += p.Price * int64(expected[p.ID])
			}
		}
	}
	assert.Equal(t, wantTotal, c.TotalPrice())
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Service_GetProduct(t *testing.T) {
	svc := NewService(nil)
	svc.SetProducts(fixtureProducts())

	t.Run("existing product", func(t *testing.T) {
		p, err := svc.GetProduct(2)
		require.NoError(t, err)
		assert.Equal(t, "Blue Wallet", p.Name)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := svc.GetProduct(99)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func Test_Service_SetProducts_ReplacesWholesale(t *testing.T) {
	svc := NewService(nil)
	svc.SetProducts(fixtureProducts())
	require.Equal(t, 5, svc.Count())

	svc.SetProducts([]Product{{ID: 10, Name: "Only One", Category: "Belt", Price: 100, OriginalPrice: 100}})

	assert.Equal(t, 1, svc.Count())
	_, err := svc.GetProduct(1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func Test_Service_Query_UsesCurrentSnapshot(t *testing.T) {
	svc := NewService(nil)
	svc.SetProducts(fixtureProducts())

	result := svc.Query(Criteria{Category: "Wallet", Price: FullPriceRange()})
	assert.Len(t, result, 2)
}

func Test_Service_Categories(t *testing.T) {
	svc := NewService([]CategoryMeta{
		{Name: "Hand Bag", Image: "/products/p41.jpg"},
		{Name: "Wallet", Image: "/products/p21.jpg"},
		{Name: "Frames", Image: "/products/p401.jpg"},
	})
	svc.SetProducts([]Product{
		{ID: 1, Name: "Red Bag", Category: "Hand Bag", Price: 5000, OriginalPrice: 8000},
		{ID: 2, Name: "Black Bag", Category: "hand bag ", Price: 7000, OriginalPrice: 7000},
		{ID: 3, Name: "Blue Wallet", Category: "Wallet", Price: 1200, OriginalPrice: 1200},
	})

	categories := svc.Categories()
	require.Len(t, categories, 3)

	// Counts bucket by normalized category name
	assert.Equal(t, CategorySummary{Name: "Hand Bag", Image: "/products/p41.jpg", Count: 2}, categories[0])
	assert.Equal(t, CategorySummary{Name: "Wallet", Image: "/products/p21.jpg", Count: 1}, categories[1])
	assert.Equal(t, CategorySummary{Name: "Frames", Image: "/products/p401.jpg", Count: 0}, categories[2])
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

func setupCatalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalogService := catalog.NewService([]catalog.CategoryMeta{
		{Name: "Hand Bag", Image: "/products/p41.jpg"},
		{Name: "Wallet", Image: "/products/p21.jpg"},
	})
	catalogService.SetProducts([]catalog.Product{
		{ID: 1, Name: "Red Bag", Category: "Hand Bag", Price: 5000, OriginalPrice: 8000, Rating: 4.5},
		{ID: 2, Name: "Blue Wallet", Category: "Wallet", Price: 1200, OriginalPrice: 1200, Rating: 4.0},
		{ID: 3, Name: "Black Bag", Category: "Hand Bag", Price: 7000, OriginalPrice: 7000, Rating: 4.8},
	})

	handler := NewCatalogHandler(catalogService, &config.Config{})

	router := gin.New()
	router.GET("/products", handler.GetProducts)
	router.GET("/products/:id", handler.GetProduct)
	router.GET("/categories", handler.GetCategories)
	return router
}

type productListResponse struct {
	Data struct {
		Products []catalog.Product `json:"products"`
		Count    int               `json:"count"`
	} `json:"data"`
}

func Test_CatalogHandler_GetProducts(t *testing.T) {
	router := setupCatalogRouter()

	testCases := []struct {
		name        string
		url         string
		expectedIDs []uint
	}{
		{
			name:        "no filters returns everything",
			url:         "/products",
			expectedIDs: []uint{1, 2, 3},
		},
		{
			name:        "category filter",
			url:         "/products?category=Hand%20Bag",
			expectedIDs: []uint{1, 3},
		},
		{
			name:        "search filter",
			url:         "/products?search=wallet",
			expectedIDs: []uint{2},
		},
		{
			name:        "price band",
			url:         "/products?min_price=1000&max_price=6000",
			expectedIDs: []uint{1, 2},
		},
		{
			name:        "price descending sort",
			url:         "/products?sort=price-high",
			expectedIDs: []uint{3, 1, 2},
		},
		{
			name:        "discount sort within category",
			url:         "/products?category=Hand+Bag&sort=discount",
			expectedIDs: []uint{1, 3},
		},
		{
			name:        "no matches is an empty result, not an error",
			url:         "/products?search=sneaker",
			expectedIDs: []uint{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			var resp productListResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

			gotIDs := make([]uint, 0, len(resp.Data.Products))
			for _, p := range resp.Data.Products {
				gotIDs = append(gotIDs, p.ID)
			}
			assert.Equal(t, tc.expectedIDs, gotIDs)
			assert.Equal(t, len(tc.expectedIDs), resp.Data.Count)
		})
	}
}

func Test_CatalogHandler_GetProduct(t *testing.T) {
	router := setupCatalogRouter()

	t.Run("existing product", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/products/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Red Bag")
	})

	t.Run("unknown product", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/products/99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed product ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/products/not-a-number", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func Test_CatalogHandler_GetCategories(t *testing.T) {
	router := setupCatalogRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []catalog.CategorySummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Hand Bag", resp.Data[0].Name)
	assert.Equal(t, 2, resp.Data[0].Count)
	assert.Equal(t, "Wallet", resp.Data[1].Name)
	assert.Equal(t, 1, resp.Data[1].Count)
}

// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// CatalogHandler handles product catalog endpoints
type CatalogHandler struct {
	catalogService *catalog.Service
	config         *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.Service, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		config:         cfg,
	}
}

// ProductListRequest represents catalog query parameters. The whole set is
// bound fresh on every request — criteria are replaced, never diffed.
type ProductListRequest struct {
	Search   string `form:"search"`
	Category string `form:"category,default=All"`
	MinPrice int64  `form:"min_price"`
	MaxPrice int64  `form:"max_price"`
	Sort     string `form:"sort,default=featured"`
}

// GetProducts handles GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	var req ProductListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	criteria := catalog.Criteria{
		Search:   req.Search,
		Category: req.Category,
		Price:    catalog.FullPriceRange(),
		Sort:     catalog.SortMode(req.Sort),
	}
	if req.MinPrice > 0 {
		criteria.Price.Min = req.MinPrice
	}
	if req.MaxPrice > 0 {
		criteria.Price.Max = req.MaxPrice
	}

	products := h.catalogService.Query(criteria)

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": products,
			"count":    len(products),
		},
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product, err := h.catalogService.GetProduct(uint(id))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve product",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetCategories handles GET /categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories := h.catalogService.Categories()

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

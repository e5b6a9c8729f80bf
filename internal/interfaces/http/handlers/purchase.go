// internal/interfaces/http/handlers/purchase.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/purchase"
)

// PurchaseHandler handles buy-now endpoints
type PurchaseHandler struct {
	purchaseService *purchase.Service
	config          *config.Config
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *purchase.Service, cfg *config.Config) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
		config:          cfg,
	}
}

// BuyNow handles POST /products/:id/buy-now
func (h *PurchaseHandler) BuyNow(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	response, err := h.purchaseService.BuyNow(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create purchase intent",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Purchase intent created successfully",
		"data":    response,
	})
}

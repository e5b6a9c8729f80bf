// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/purchase"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/pkg/notify"
)

// SetupRoutes wires all API routes to their handlers
func SetupRoutes(rg *gin.RouterGroup, catalogService *catalog.Service, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) {
	cartService := cart.NewService(redisClient, catalogService, cfg)
	purchaseService := purchase.NewService(catalogService, notify.NewChannel(cfg, logger), cfg, logger)

	catalogHandler := handlers.NewCatalogHandler(catalogService, cfg)
	cartHandler := handlers.NewCartHandler(cartService, cfg)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService, cfg)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/:id", catalogHandler.GetProduct)
		products.POST("/:id/buy-now", purchaseHandler.BuyNow)
	}

	rg.GET("/categories", catalogHandler.GetCategories)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveCartItem)
	}
}

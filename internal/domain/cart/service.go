// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Service handles cart business logic. Carts live in Redis keyed by session;
// every operation is a read-modify-write of the whole cart document.
type Service struct {
	redisClient *redis.Client
	catalog     *catalog.Service
	config      *config.Config
}

// NewService creates a new cart service
func NewService(redisClient *redis.Client, catalogService *catalog.Service, cfg *config.Config) *Service {
	return &Service{
		redisClient: redisClient,
		catalog:     catalogService,
		config:      cfg,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// UpdateCartItemRequest represents update cart item request. A quantity of
// zero (or below) removes the item.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse represents a shopping cart with items and derived totals
type CartResponse struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	Totals    Totals     `json:"totals"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// GetCart retrieves the cart for a session
func (s *Service) GetCart(ctx context.Context, sessionID string) (*CartResponse, error) {
	sessionCart, err := s.getSessionCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(sessionCart), nil
}

// AddToCart adds one unit of a product to the session cart. The product must
// exist in the catalog; its display fields are snapshotted into the line item.
func (s *Service) AddToCart(ctx context.Context, sessionID string, productID uint) (*CartResponse, error) {
	product, err := s.catalog.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	sessionCart, err := s.getSessionCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sessionCart.Add(*product)
	sessionCart.UpdatedAt = time.Now().UTC()

	if err := s.saveSessionCart(ctx, sessionID, sessionCart); err != nil {
		return nil, err
	}
	return s.toResponse(sessionCart), nil
}

// UpdateCartItem sets the quantity of a cart line. Zero or negative removes
// the line; a positive quantity for a product not in the cart is a no-op.
func (s *Service) UpdateCartItem(ctx context.Context, sessionID string, productID uint, quantity int) (*CartResponse, error) {
	sessionCart, err := s.getSessionCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sessionCart.SetQuantity(productID, quantity)
	sessionCart.UpdatedAt = time.Now().UTC()

	if err := s.saveSessionCart(ctx, sessionID, sessionCart); err != nil {
		return nil, err
	}
	return s.toResponse(sessionCart), nil
}

// RemoveFromCart removes a line item from the session cart
func (s *Service) RemoveFromCart(ctx context.Context, sessionID string, productID uint) (*CartResponse, error) {
	return s.UpdateCartItem(ctx, sessionID, productID, 0)
}

// ClearCart removes all items from the session cart
func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	return s.redisClient.Del(ctx, s.cartKey(sessionID)).Err()
}

// GetItemCount returns the number of distinct line items for the cart badge
func (s *Service) GetItemCount(ctx context.Context, sessionID string) (int, error) {
	sessionCart, err := s.getSessionCart(ctx, sessionID)
	if err != nil {
		return 0, nil // Treat a missing cart as empty
	}
	return sessionCart.ItemCount(), nil
}

// Private helper methods

func (s *Service) cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

func (s *Service) getSessionCart(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required for cart access")
	}

	cartData, err := s.redisClient.Get(ctx, s.cartKey(sessionID)).Result()
	if err == redis.Nil {
		// Cart doesn't exist yet, start empty
		now := time.Now().UTC()
		return &Cart{
			SessionID: sessionID,
			Items:     []LineItem{},
			CreatedAt: now,
			UpdatedAt: now,
			ExpiresAt: now.Add(s.config.Cart.TTL),
		}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}

	var sessionCart Cart
	if err := json.Unmarshal([]byte(cartData), &sessionCart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return &sessionCart, nil
}

func (s *Service) saveSessionCart(ctx context.Context, sessionID string, sessionCart *Cart) error {
	cartData, err := json.Marshal(sessionCart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	return s.redisClient.Set(ctx, s.cartKey(sessionID), cartData, s.config.Cart.TTL).Err()
}

func (s *Service) toResponse(sessionCart *Cart) *CartResponse {
	return &CartResponse{
		SessionID: sessionCart.SessionID,
		Items:     sessionCart.Items,
		Totals:    sessionCart.Totals(),
		CreatedAt: sessionCart.CreatedAt,
		UpdatedAt: sessionCart.UpdatedAt,
	}
}

// internal/domain/purchase/service.go
package purchase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/pkg/notify"
)

// Service handles buy-now purchase intents. Its responsibility ends at
// building the message text and handing it to the outbound channel; delivery
// is fire-and-forget and no response feeds back into the storefront.
type Service struct {
	catalog *catalog.Service
	channel notify.Channel
	config  *config.Config
	logger  *logrus.Logger
}

// NewService creates a new purchase service
func NewService(catalogService *catalog.Service, channel notify.Channel, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		catalog: catalogService,
		channel: channel,
		config:  cfg,
		logger:  logger,
	}
}

// BuyNowResponse represents the outcome of a purchase intent
type BuyNowResponse struct {
	ProductID   uint   `json:"product_id"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url,omitempty"`
}

// BuildMessage formats the purchase intent text for a product
func (s *Service) BuildMessage(p *catalog.Product) string {
	return fmt.Sprintf("Hi! I want to buy %s for %s%d", p.Name, s.config.Store.CurrencySymbol, p.Price)
}

// BuyNow builds the purchase intent for a product and dispatches it to the
// outbound channel in the background. The returned response carries the text
// and a wa.me link so the client can open the chat itself.
func (s *Service) BuyNow(ctx context.Context, productID uint) (*BuyNowResponse, error) {
	product, err := s.catalog.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	message := s.BuildMessage(product)
	msg := &notify.Message{
		Recipient: s.config.Store.WhatsAppNumber,
		Text:      message,
	}

	// Fire and forget: delivery must not block or fail the request
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), s.config.Store.NotifyTimeout)
		defer cancel()

		if err := s.channel.Send(sendCtx, msg); err != nil {
			s.logger.WithFields(logrus.Fields{
				"channel":    s.channel.Name(),
				"product_id": product.ID,
			}).WithError(err).Warn("Failed to deliver purchase intent")
		}
	}()

	return &BuyNowResponse{
		ProductID:   product.ID,
		Message:     message,
		WhatsAppURL: notify.WhatsAppLink(s.config.Store.WhatsAppNumber, message),
	}, nil
}

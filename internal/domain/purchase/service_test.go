package purchase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/pkg/notify"
)

// capturingChannel records dispatched messages for assertions
type capturingChannel struct {
	sent chan *notify.Message
}

func newCapturingChannel() *capturingChannel {
	return &capturingChannel{sent: make(chan *notify.Message, 1)}
}

func (c *capturingChannel) Name() string { return "capture" }

func (c *capturingChannel) Send(_ context.Context, msg *notify.Message) error {
	c.sent <- msg
	return nil
}

func testService(channel notify.Channel) (*Service, *catalog.Service) {
	cfg := &config.Config{
		Store: config.StoreConfig{
			CurrencySymbol: "₹",
			WhatsAppNumber: "916362141143",
			NotifyTimeout:  5 * time.Second,
		},
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	catalogService := catalog.NewService(nil)
	catalogService.SetProducts([]catalog.Product{
		{ID: 1, Name: "Red Bag", Category: "Hand Bag", Price: 5000, OriginalPrice: 8000},
	})

	return NewService(catalogService, channel, cfg, logger), catalogService
}

func Test_Service_BuildMessage(t *testing.T) {
	svc, catalogService := testService(newCapturingChannel())

	product, err := catalogService.GetProduct(1)
	require.NoError(t, err)

	assert.Equal(t, "Hi! I want to buy Red Bag for ₹5000", svc.BuildMessage(product))
}

func Test_Service_BuyNow(t *testing.T) {
	t.Run("builds the intent and dispatches to the channel", func(t *testing.T) {
		channel := newCapturingChannel()
		svc, _ := testService(channel)

		response, err := svc.BuyNow(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, uint(1), response.ProductID)
		assert.Equal(t, "Hi! I want to buy Red Bag for ₹5000", response.Message)
		assert.Contains(t, response.WhatsAppURL, "https://wa.me/916362141143?text=")

		select {
		case msg := <-channel.sent:
			assert.Equal(t, "916362141143", msg.Recipient)
			assert.Equal(t, response.Message, msg.Text)
		case <-time.After(2 * time.Second):
			t.Fatal("purchase intent was never dispatched")
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		svc, _ := testService(newCapturingChannel())

		_, err := svc.BuyNow(context.Background(), 99)
		assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	})
}

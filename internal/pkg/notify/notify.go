// internal/pkg/notify/notify.go
package notify

import (
	"context"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
)

// Message is an outbound text notification. Delivery, retries and failures
// are the channel's concern; callers fire and forget.
type Message struct {
	Recipient string `json:"recipient"`
	Text      string `json:"text"`
}

// Channel delivers messages to an external communication target
type Channel interface {
	Name() string
	Send(ctx context.Context, msg *Message) error
}

// NewChannel selects a channel implementation from configuration.
// Unknown providers fall back to the log channel so a misconfigured
// deployment degrades to observable no-ops instead of failing requests.
func NewChannel(cfg *config.Config, logger *logrus.Logger) Channel {
	switch cfg.Store.NotifyProvider {
	case "whatsapp":
		return NewWhatsAppGateway(cfg.Store.NotifyGateway, cfg.Store.NotifyTimeout)
	default:
		return NewLogChannel(logger)
	}
}

// WhatsAppLink builds a wa.me deep link that opens a chat with the given
// number and the message pre-filled. Returns an empty string when no number
// is configured.
func WhatsAppLink(number, text string) string {
	if number == "" {
		return ""
	}
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(text)
}

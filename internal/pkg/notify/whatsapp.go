// internal/pkg/notify/whatsapp.go
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// WhatsAppGateway posts messages to a WhatsApp HTTP gateway (e.g. a hosted
// business-API bridge). The gateway owns actual delivery.
type WhatsAppGateway struct {
	endpoint string
	client   *http.Client
}

// NewWhatsAppGateway creates a WhatsApp gateway channel
func NewWhatsAppGateway(endpoint string, timeout time.Duration) *WhatsAppGateway {
	return &WhatsAppGateway{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the channel name
func (g *WhatsAppGateway) Name() string {
	return "whatsapp"
}

type gatewayRequest struct {
	To   string `json:"to"`
	Text string `json:"text"`
}

// Send posts the message to the gateway. The response body is not consumed
// beyond the status check.
func (g *WhatsAppGateway) Send(ctx context.Context, msg *Message) error {
	payload, err := json.Marshal(gatewayRequest{
		To:   msg.Recipient,
		Text: msg.Text,
	})
	if err != nil {
		return fmt.Errorf("failed to encode gateway payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach WhatsApp gateway: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("WhatsApp gateway returned status %d", resp.StatusCode)
	}
	return nil
}

// internal/pkg/notify/log.go
package notify

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogChannel writes messages to the application log instead of delivering
// them. Default in development and the fallback for unknown providers.
type LogChannel struct {
	logger *logrus.Logger
}

// NewLogChannel creates a log-only channel
func NewLogChannel(logger *logrus.Logger) *LogChannel {
	return &LogChannel{logger: logger}
}

// Name returns the channel name
func (l *LogChannel) Name() string {
	return "log"
}

// Send logs the message and reports success
func (l *LogChannel) Send(_ context.Context, msg *Message) error {
	l.logger.WithFields(logrus.Fields{
		"channel":   "log",
		"recipient": msg.Recipient,
	}).Info(msg.Text)
	return nil
}

// Package notify is the boundary to the welcome-notification collaborator.
// Sends are best-effort: a failure is logged by the caller and never aborts
// the registration response.
package notify

import (
	"context"

	"go.uber.org/zap"
)

// Notifier delivers account-lifecycle notifications.
type Notifier interface {
	SendWelcome(ctx context.Context, email, name string) error
}

// LogNotifier records the send intent in the application log. Actual mail
// delivery runs out of process and consumes the same log stream.
type LogNotifier struct {
	log *zap.Logger
}

// NewLogNotifier creates a LogNotifier
func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// SendWelcome records a welcome notification for the given recipient
func (n *LogNotifier) SendWelcome(ctx context.Context, email, name string) error {
	n.log.Info("welcome notification queued",
		zap.String("email", email),
		zap.String("name", name),
	)
	return nil
}

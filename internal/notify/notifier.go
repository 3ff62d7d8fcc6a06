// Package notify delivers settlement results to players out-of-band.
// Delivery is best-effort: a failed send is logged and never fails the
// settlement that produced it.
package notify

import (
	"context"
	"log/slog"

	"github.com/nikrus/rpsduel-go/internal/model"
)

// Notifier delivers a single notification request
type Notifier interface {
	Send(ctx context.Context, req model.NotificationRequest) error
}

// Dispatch attempts delivery of every request, logging failures
func Dispatch(ctx context.Context, notifier Notifier, logger *slog.Logger, requests []model.NotificationRequest) {
	for _, req := range requests {
		if err := notifier.Send(ctx, req); err != nil {
			logger.Warn("notification delivery failed",
				slog.String("chat_id", req.ChatID),
				slog.String("error", err.Error()),
			)
		}
	}
}

// LogNotifier writes notifications to the log instead of a chat transport.
// It is the default when no transport is configured.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Send logs the notification
func (n *LogNotifier) Send(ctx context.Context, req model.NotificationRequest) error {
	n.logger.Info("notification",
		slog.String("chat_id", req.ChatID),
		slog.String("text", req.Text),
	)
	return nil
}

var _ Notifier = (*LogNotifier)(nil)

// Package notify delivers parcel status messages to clients. Every
// implementation satisfies ports.Notifier; the command layer logs and
// swallows their errors.
package notify

import (
	"context"
	"log/slog"

	"cargo/internal/core/ports"
)

var _ ports.Notifier = (*LogNotifier)(nil)

// LogNotifier writes messages to the log instead of sending them. It is the
// default when no messaging channel is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "log_notifier")}
}

func (n *LogNotifier) Send(ctx context.Context, recipient, text string) error {
	n.logger.InfoContext(ctx, "Notification",
		"recipient", recipient,
		"text", text,
	)
	return nil
}

package ports

import "context"

// Notifier delivers a text message to a recipient handle (for example a
// Telegram chat ID). Implementations must honour ctx cancellation so callers
// can bound each delivery with a timeout.
type Notifier interface {
	Send(ctx context.Context, recipient, text string) error
}

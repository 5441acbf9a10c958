package interfaces

import (
	"context"

	"brainrot-value-bot/internal/types"
)

// Notifier delivers a message embed to one channel. Delivery is
// best-effort: callers swallow errors per send.
type Notifier interface {
	Send(ctx context.Context, channelID string, msg types.Message) error
}

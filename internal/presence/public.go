package presence

import (
	"context"

	"github.com/google/uuid"
)

// Sink answers online checks and delivers best-effort chat messages to
// players. Delivery is fire-and-forget: an offline player simply misses the
// message.
type Sink interface {
	IsOnline(ctx context.Context, playerId uuid.UUID) (bool, error)
	Notify(ctx context.Context, playerId uuid.UUID, message string) error
}

package permission

import (
	"context"

	"github.com/google/uuid"
)

// Client talks to the external permission service. Grant/Revoke failures are
// fallible remote calls: callers log and continue, they never roll back a
// decision already recorded.
type Client interface {
	// HasPermission reports whether the player holds the permission node.
	HasPermission(ctx context.Context, playerId uuid.UUID, node string) (bool, error)
	// Grant gives the player the permission node.
	Grant(ctx context.Context, playerId uuid.UUID, node string) error
	// Revoke takes the permission node away from the player.
	Revoke(ctx context.Context, playerId uuid.UUID, node string) error
}

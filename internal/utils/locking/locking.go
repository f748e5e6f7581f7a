package locking

import (
	"sync"

	"github.com/google/uuid"
)

const stripes = 64

// KeyedMutex serializes work per player without a global lock. Players are
// hashed onto a fixed set of stripes, so unrelated players rarely contend.
// The wizard, decision processor and sweeper share one instance: every
// ledger read-modify-write for a player happens under their stripe.
type KeyedMutex struct {
	stripes [stripes]sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{}
}

// Lock locks the player's stripe and returns the unlock func.
func (m *KeyedMutex) Lock(playerId uuid.UUID) func() {
	stripe := &m.stripes[int(playerId[0])%stripes]
	stripe.Lock()
	return stripe.Unlock
}

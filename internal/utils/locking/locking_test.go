package locking

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSamePlayer(t *testing.T) {
	m := NewKeyedMutex()
	playerId := uuid.New()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := m.Lock(playerId)
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 200, counter)
}

func TestKeyedMutex_LockIsReleasable(t *testing.T) {
	m := NewKeyedMutex()
	playerId := uuid.New()

	unlock := m.Lock(playerId)
	unlock()

	// A released stripe can be taken again without blocking.
	unlock = m.Lock(playerId)
	unlock()
}

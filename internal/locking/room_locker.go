// Package locking provides the per-room serialization discipline for
// check-then-write booking sequences. Every availability check followed by a
// write for a given room runs inside the room's critical section; requests
// against different rooms never contend.
package locking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Beausejour-Hotels/service-reservation/internal/domain"
)

// DefaultAcquireTimeout bounds how long a request may wait for a room's
// critical section before failing with a retryable error.
const DefaultAcquireTimeout = 5 * time.Second

// RoomLocker serializes check-then-write sequences per room.
type RoomLocker interface {
	// Acquire enters the room's critical section, blocking until it is free,
	// the timeout budget elapses, or the context is done. On success it
	// returns a release function; the release function is idempotent.
	Acquire(ctx context.Context, roomID uuid.UUID) (func(), error)
}

// KeyedRoomLocker is an in-process RoomLocker keyed by room id. Each room
// owns a one-slot token channel; holding the token is holding the lock, and
// waiting on the channel composes with timeouts and context cancellation.
//
// Lock entries are retained for the life of the process. The key space is the
// hotel's room inventory, so the map stays small.
type KeyedRoomLocker struct {
	locks          sync.Map // uuid.UUID -> chan struct{}
	acquireTimeout time.Duration
}

// NewKeyedRoomLocker creates a KeyedRoomLocker with the given acquire
// timeout. A non-positive timeout falls back to DefaultAcquireTimeout.
func NewKeyedRoomLocker(acquireTimeout time.Duration) *KeyedRoomLocker {
	if acquireTimeout <= 0 {
		acquireTimeout = DefaultAcquireTimeout
	}
	return &KeyedRoomLocker{acquireTimeout: acquireTimeout}
}

// Acquire enters the critical section for roomID.
func (l *KeyedRoomLocker) Acquire(ctx context.Context, roomID uuid.UUID) (func(), error) {
	v, _ := l.locks.LoadOrStore(roomID, make(chan struct{}, 1))
	token := v.(chan struct{})

	timer := time.NewTimer(l.acquireTimeout)
	defer timer.Stop()

	select {
	case token <- struct{}{}:
		var once sync.Once
		release := func() {
			once.Do(func() { <-token })
		}
		return release, nil
	case <-timer.C:
		return nil, domain.NewConcurrencyTimeoutError(roomID.String())
	case <-ctx.Done():
		return nil, domain.NewConcurrencyTimeoutError(roomID.String())
	}
}

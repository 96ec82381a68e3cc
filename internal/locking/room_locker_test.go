package locking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beausejour-Hotels/service-reservation/internal/domain"
)

func TestAcquireRelease(t *testing.T) {
	locker := NewKeyedRoomLocker(time.Second)
	roomID := uuid.New()

	release, err := locker.Acquire(context.Background(), roomID)
	require.NoError(t, err)
	release()

	// Lock is free again.
	release2, err := locker.Acquire(context.Background(), roomID)
	require.NoError(t, err)
	release2()
}

func TestAcquire_TimesOutWhenHeld(t *testing.T) {
	locker := NewKeyedRoomLocker(50 * time.Millisecond)
	roomID := uuid.New()

	release, err := locker.Acquire(context.Background(), roomID)
	require.NoError(t, err)
	defer release()

	_, err = locker.Acquire(context.Background(), roomID)
	require.Error(t, err)

	var timeout *domain.ConcurrencyTimeoutError
	assert.ErrorAs(t, err, &timeout)
}

func TestAcquire_ContextCancelled(t *testing.T) {
	locker := NewKeyedRoomLocker(10 * time.Second)
	roomID := uuid.New()

	release, err := locker.Acquire(context.Background(), roomID)
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = locker.Acquire(ctx, roomID)
	var timeout *domain.ConcurrencyTimeoutError
	assert.ErrorAs(t, err, &timeout)
}

func TestAcquire_DifferentRoomsDoNotContend(t *testing.T) {
	locker := NewKeyedRoomLocker(100 * time.Millisecond)

	releaseA, err := locker.Acquire(context.Background(), uuid.New())
	require.NoError(t, err)
	defer releaseA()

	// Holding room A must not block room B.
	releaseB, err := locker.Acquire(context.Background(), uuid.New())
	require.NoError(t, err)
	releaseB()
}

func TestRelease_Idempotent(t *testing.T) {
	locker := NewKeyedRoomLocker(time.Second)
	roomID := uuid.New()

	release, err := locker.Acquire(context.Background(), roomID)
	require.NoError(t, err)
	release()
	release() // second call must be a no-op, not an underflow

	release2, err := locker.Acquire(context.Background(), roomID)
	require.NoError(t, err)
	release2()
}

func TestAcquire_SerializesGoroutines(t *testing.T) {
	locker := NewKeyedRoomLocker(5 * time.Second)
	roomID := uuid.New()

	const workers = 20
	inSection := 0
	maxInSection := 0
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := locker.Acquire(context.Background(), roomID)
			if err != nil {
				return
			}
			mu.Lock()
			inSection++
			if inSection > maxInSection {
				maxInSection = inSection
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inSection--
			mu.Unlock()
			release()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInSection, "critical section must admit one goroutine at a time")
}

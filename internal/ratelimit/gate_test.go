package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeClock advances only when After is called or the test moves it.
type fakeClock struct {
	now    time.Time
	waits  []time.Duration
	frozen bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.waits = append(c.waits, d)

	ch := make(chan time.Time, 1)
	if c.frozen {
		return ch
	}

	c.now = c.now.Add(d)
	ch <- c.now

	return ch
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestGate_Wait(t *testing.T) {
	ctx := context.Background()

	t.Run("First call passes without waiting", func(t *testing.T) {
		// Given: a fresh gate
		clock := newFakeClock()
		gate := New(500*time.Millisecond, WithClock(clock))

		// When: the first permit is requested
		err := gate.Wait(ctx)

		// Then: no wait happens
		require.NoError(t, err)
		assert.Empty(t, clock.waits)
	})

	t.Run("Back-to-back calls are spaced by the interval", func(t *testing.T) {
		// Given: a gate that just issued a permit
		clock := newFakeClock()
		gate := New(500*time.Millisecond, WithClock(clock))
		require.NoError(t, gate.Wait(ctx))

		// When: two more permits are requested with 200ms of work in between
		require.NoError(t, gate.Wait(ctx))
		clock.advance(200 * time.Millisecond)
		require.NoError(t, gate.Wait(ctx))

		// Then: the gate waited the full interval, then only the remainder
		assert.Equal(t, []time.Duration{500 * time.Millisecond, 300 * time.Millisecond}, clock.waits)
	})

	t.Run("No wait once the interval has already passed", func(t *testing.T) {
		// Given: a gate whose previous permit is older than the interval
		clock := newFakeClock()
		gate := New(500*time.Millisecond, WithClock(clock))
		require.NoError(t, gate.Wait(ctx))
		clock.advance(time.Second)

		// When: the next permit is requested
		err := gate.Wait(ctx)

		// Then: it passes immediately
		require.NoError(t, err)
		assert.Empty(t, clock.waits)
	})

	t.Run("Zero interval disables spacing", func(t *testing.T) {
		clock := newFakeClock()
		gate := New(0, WithClock(clock))

		for i := 0; i < 5; i++ {
			require.NoError(t, gate.Wait(ctx))
		}

		assert.Empty(t, clock.waits)
	})

	t.Run("Cancelled context interrupts the wait", func(t *testing.T) {
		// Given: a gate with a pending interval and a clock that never fires
		clock := newFakeClock()
		gate := New(time.Minute, WithClock(clock))
		require.NoError(t, gate.Wait(ctx))
		clock.frozen = true

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		// When: waiting with a cancelled context
		err := gate.Wait(cancelled)

		// Then: the context error is returned
		require.ErrorIs(t, err, context.Canceled)
	})
}

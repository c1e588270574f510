// Package ratelimit spaces outbound requests so that consecutive calls are at least
// a fixed interval apart.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Clock is the time source of a Gate. Tests swap it for a fake one.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) Now() time.Time                         { return time.Now() }
func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

type Gate struct {
	mu       sync.Mutex
	clock    Clock
	interval time.Duration
	last     time.Time
}

type Option func(*Gate)

func WithClock(clock Clock) Option {
	return func(g *Gate) {
		g.clock = clock
	}
}

// New - creates a gate; an interval of zero lets every call through immediately.
func New(interval time.Duration, opts ...Option) *Gate {
	gate := &Gate{
		clock:    realClock{},
		interval: interval,
	}

	for _, opt := range opts {
		opt(gate)
	}

	return gate
}

// Wait - blocks until the interval since the previous permit has elapsed.
// The first call never waits.
func (that *Gate) Wait(ctx context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.interval > 0 && !that.last.IsZero() {
		if wait := that.interval - that.clock.Now().Sub(that.last); wait > 0 {
			select {
			case <-that.clock.After(wait):
			case <-ctx.Done():
				return fmt.Errorf("rate limit wait interrupted: %w", ctx.Err())
			}
		}
	}

	that.last = that.clock.Now()

	return nil
}

func (that *Gate) Interval() time.Duration {
	return that.interval
}

package clock

import (
	"context"
	"sync"
	"time"
)

// Ticker calls a function on a fixed interval until its context is cancelled
// or Stop is called.
type Ticker struct {
	fn       func(time.Time)
	now      func() time.Time
	cancel   context.CancelFunc
	done     chan struct{}
	interval time.Duration
	once     sync.Once
	mu       sync.Mutex
}

// NewTicker returns a ticker that calls fn every interval with the current
// time.
func NewTicker(interval time.Duration, now func() time.Time, fn func(time.Time)) *Ticker {
	return &Ticker{
		fn:       fn,
		now:      now,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start calls fn once immediately and then on every tick. It returns at once;
// the loop runs until ctx is cancelled or Stop is called. Start must be
// called at most once.
func (t *Ticker) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	t.mu.Lock()
	t.cancel = cancel
	t.mu.Unlock()

	go t.loop(ctx)
}

func (t *Ticker) loop(ctx context.Context) {
	defer close(t.done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.fn(t.now())

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// a cancelled context wins over a pending tick
			if ctx.Err() != nil {
				return
			}

			t.fn(t.now())
		}
	}
}

// Stop ends the loop and waits for an in-flight call to return. No call to fn
// starts after Stop returns. Stop is safe to call more than once, and before
// Start.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.mu.Unlock()

	if cancel == nil {
		return
	}

	t.once.Do(cancel)

	<-t.done
}

// Done is closed once the loop exits.
func (t *Ticker) Done() <-chan struct{} {
	return t.done
}

package clock

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLatch(t *testing.T) {
	var l Latch

	assert.False(t, l.Observe("2025-10-15", false))
	assert.True(t, l.Observe("2025-10-15", true))
	assert.False(t, l.Observe("2025-10-15", true))
	assert.False(t, l.Observe("2025-10-15", false))
	assert.False(t, l.Observe("2025-10-15", true), "same day fires once")

	assert.True(t, l.Observe("2025-10-16", true))

	l.Reset()
	assert.True(t, l.Observe("2025-10-16", true))
}

func TestDayCompleteFiresOnce(t *testing.T) {
	var (
		l     Latch
		fired int
	)

	for m := 14 * 60; m < 24*60; m += 7 {
		now := at(0, 0).Add(time.Duration(m) * time.Minute)

		if l.Observe(now.Format("2006-01-02"), Evaluate(highSchool, now).Complete()) {
			fired++
		}
	}

	assert.Equal(t, 1, fired)
}

func TestTickerStop(t *testing.T) {
	var calls atomic.Int32

	tk := NewTicker(time.Millisecond, time.Now, func(time.Time) {
		calls.Add(1)
	})

	tk.Stop()

	tk.Start(context.Background())

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)

	tk.Stop()
	tk.Stop()

	after := calls.Load()

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "no ticks after Stop returns")
}

func TestTickerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	tk := NewTicker(time.Hour, time.Now, func(time.Time) {})
	tk.Start(ctx)

	cancel()

	select {
	case <-tk.Done():
	case <-time.After(time.Second):
		t.Fatal("ticker did not stop after cancel")
	}

	tk.Stop()
}

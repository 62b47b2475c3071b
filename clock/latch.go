package clock

import "sync"

// Latch turns a level ("the day is complete") into a single event per key
// ("the day identified by 2025-10-15 completed").
type Latch struct {
	fired string
	mu    sync.Mutex
}

// Observe reports true the first time reached is true for key. Later calls
// with the same key return false until Reset is called or a different key is
// observed.
func (l *Latch) Observe(key string, reached bool) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !reached || l.fired == key {
		return false
	}

	l.fired = key

	return true
}

// Reset re-arms the latch.
func (l *Latch) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.fired = ""
}

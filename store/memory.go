package store

import (
	"maps"
	"slices"
	"sync"
)

// Memory is an in-memory KV used in tests and for dry runs. Setting FailWith
// makes every write fail with that error.
type Memory struct {
	FailWith error
	values   map[string]string
	writes   int
	mu       sync.Mutex
}

func NewMemory() *Memory {
	return &Memory{
		values: make(map[string]string),
	}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]

	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	return m.SetMany(map[string]string{key: value})
}

func (m *Memory) SetMany(values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return m.FailWith
	}

	maps.Copy(m.values, values)

	m.writes++

	return nil
}

func (m *Memory) Keys() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Sorted(maps.Keys(m.values)), nil
}

// Writes returns the number of successful write calls.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.writes
}

func (m *Memory) Close() error {
	return nil
}

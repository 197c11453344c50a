package kv

import "sync"

// MemoryDriver is an in-process store. Not durable across restarts; the
// default driver for development and the only driver used in tests.
type MemoryDriver struct {
	mu     sync.RWMutex
	data   map[string]string
	writes map[string]int
}

func NewMemoryDriver() *MemoryDriver {
	return &MemoryDriver{
		data:   make(map[string]string),
		writes: make(map[string]int),
	}
}

func (d *MemoryDriver) Get(key string) (string, bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	v, ok := d.data[key]
	return v, ok, nil
}

func (d *MemoryDriver) Set(key, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.data[key] = value
	d.writes[key]++
	return nil
}

func (d *MemoryDriver) Remove(key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.data, key)
	d.writes[key]++
	return nil
}

// Writes returns how many times key has been written (set or removed).
// Used by tests asserting write-through behaviour.
func (d *MemoryDriver) Writes(key string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.writes[key]
}

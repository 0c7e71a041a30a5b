package github

import "sync"

// keyedCache maps a natural key to a bound resource within one owning
// Repository's lifetime. Entries are immutable once inserted and never
// evicted. The mutex is held across fetch so two concurrent first accesses
// cannot both hit the network.
type keyedCache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]V
}

func newKeyedCache[K comparable, V any]() *keyedCache[K, V] {
	return &keyedCache[K, V]{
		entries: map[K]V{},
	}
}

// getOrFetch returns the cached value for key, or runs fetch (which must
// return an already-bound resource), stores the result and returns it.
func (x *keyedCache[K, V]) getOrFetch(key K, fetch func() (V, error)) (V, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if v, ok := x.entries[key]; ok {
		return v, nil
	}

	v, err := fetch()
	if err != nil {
		var zero V
		return zero, err
	}
	x.entries[key] = v
	return v, nil
}

// putIfAbsent stores v under key unless an entry already exists, and returns
// the canonical instance for key either way.
func (x *keyedCache[K, V]) putIfAbsent(key K, v V) V {
	x.mu.Lock()
	defer x.mu.Unlock()

	if cur, ok := x.entries[key]; ok {
		return cur
	}
	x.entries[key] = v
	return v
}

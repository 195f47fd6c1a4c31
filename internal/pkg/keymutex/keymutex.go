// Package keymutex provides mutual exclusion scoped to a key.
package keymutex

import "sync"

// KeyMutex serializes callers that share a key while letting different keys proceed in
// parallel. Entries are reference counted and removed once nobody holds or waits on them.
// The zero value is not usable; call New.
type KeyMutex[K comparable] struct {
	mu    sync.Mutex
	locks map[K]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New[K comparable]() *KeyMutex[K] {
	return &KeyMutex[K]{locks: make(map[K]*entry)}
}

// Lock blocks until the key is free and returns the function that releases it.
//
// Example:
//
//	unlock := locks.Lock(orderID)
//	defer unlock()
func (km *KeyMutex[K]) Lock(key K) func() {
	km.mu.Lock()
	e, ok := km.locks[key]
	if !ok {
		e = &entry{}
		km.locks[key] = e
	}
	e.refs++
	km.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()

			km.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(km.locks, key)
			}
			km.mu.Unlock()
		})
	}
}

// Len reports how many keys are currently held or awaited.
func (km *KeyMutex[K]) Len() int {
	km.mu.Lock()
	defer km.mu.Unlock()
	return len(km.locks)
}

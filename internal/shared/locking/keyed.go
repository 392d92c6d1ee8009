// Package locking provides string-keyed mutual exclusion. Entries are
// reference counted and freed once the last holder unlocks, so the
// table does not grow with the keyspace.
package locking

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// KeyedMutex serializes critical sections per key. Different keys never
// contend with each other.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{entries: map[string]*entry{}}
}

// Lock acquires the mutex for key and returns its unlock function. The
// returned function must be called exactly once.
func (k *KeyedMutex) Lock(key string) func() {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.entries, key)
		}
		k.mu.Unlock()
	}
}

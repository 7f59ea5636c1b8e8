package kmutex

import "sync"

// KMutex provides mutual exclusion per string key. The cart engine locks
// on userId around its read-modify-write section so concurrent adds for
// the same user cannot lose updates. Entries are reference counted and
// removed once the last holder unlocks, so the map does not grow with
// the key space.
type KMutex struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *KMutex {
	return &KMutex{locks: make(map[string]*entry)}
}

func (k *KMutex) Lock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

func (k *KMutex) Unlock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		k.mu.Unlock()
		panic("kmutex: unlock of unheld key " + key)
	}
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}

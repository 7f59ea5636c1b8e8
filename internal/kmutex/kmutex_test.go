package kmutex

import (
	"sync"
	"testing"
)

func TestLockSerializesSameKey(t *testing.T) {
	t.Parallel()
	km := New()

	const workers = 50
	counter := 0
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			km.Lock("user-1")
			counter++
			km.Unlock("user-1")
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Fatalf("lost increments: got=%d want=%d", counter, workers)
	}
}

func TestDistinctKeysDoNotBlockEachOther(t *testing.T) {
	t.Parallel()
	km := New()

	km.Lock("user-1")
	done := make(chan struct{})
	go func() {
		km.Lock("user-2")
		km.Unlock("user-2")
		close(done)
	}()
	<-done
	km.Unlock("user-1")
}

func TestEntriesAreReleased(t *testing.T) {
	t.Parallel()
	km := New()

	km.Lock("user-1")
	km.Unlock("user-1")

	km.mu.Lock()
	defer km.mu.Unlock()
	if len(km.locks) != 0 {
		t.Fatalf("lock table not drained: %d entries", len(km.locks))
	}
}

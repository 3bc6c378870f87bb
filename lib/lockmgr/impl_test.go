package lockmgr

import (
	"sync"
	"testing"
)

func TestLockUnlock(t *testing.T) {
	lm := NewLockManager()

	lm.Lock("resource")
	lm.Unlock("resource")

	// Reacquiring after release must not block.
	lm.Lock("resource")
	lm.Unlock("resource")
}

func TestMutualExclusion(t *testing.T) {
	lm := NewLockManager()

	const (
		goroutines = 16
		iterations = 1000
	)

	// The counter is only safe if the lock actually excludes.
	counter := 0
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				lm.Lock("counter")
				counter++
				lm.Unlock("counter")
			}
		}()
	}
	wg.Wait()

	if counter != goroutines*iterations {
		t.Errorf("Expected counter %d, got %d", goroutines*iterations, counter)
	}
}

func TestIndependentNames(t *testing.T) {
	lm := NewLockManager()

	// Holding one name must not block another. If the names shared a lock
	// this test would deadlock and time out.
	lm.Lock("alpha")
	lm.Lock("beta")
	lm.Unlock("beta")
	lm.Unlock("alpha")
}

func TestUnlockUnknownPanics(t *testing.T) {
	lm := NewLockManager()

	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic on unlock of never-acquired lock")
		}
	}()
	lm.Unlock("never-acquired")
}

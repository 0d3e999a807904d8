package usecase

import (
	"sync"
	"testing"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	locks := newKeyedMutex()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("EMP001")
			counter++
			unlock()
		}()
	}
	wg.Wait()

	if counter != 100 {
		t.Fatalf("counter = %d", counter)
	}
	if len(locks.locks) != 0 {
		t.Errorf("%d entries left behind", len(locks.locks))
	}
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	locks := newKeyedMutex()
	unlockA := locks.Lock("EMP001")
	defer unlockA()

	// would deadlock if keys shared a lock
	unlockB := locks.Lock("EMP002")
	unlockB()
}

package commons

import (
	"sync"
	"testing"
)

func TestLockRegistryReturnsSameHandle(t *testing.T) {
	registry := NewLockRegistry()

	first := registry.Acquire("12345")
	second := registry.Acquire("12345")
	if first != second {
		t.Fatal("expected the same handle for the same account")
	}

	other := registry.Acquire("67890")
	if other == first {
		t.Fatal("expected distinct handles for distinct accounts")
	}
}

func TestLockRegistryConcurrentFirstAccess(t *testing.T) {
	registry := NewLockRegistry()

	const goroutines = 100
	handles := make([]*sync.Mutex, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i] = registry.Acquire("12345")
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if handles[i] != handles[0] {
			t.Fatal("concurrent first access created more than one handle")
		}
	}
}

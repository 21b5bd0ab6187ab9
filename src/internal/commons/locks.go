package commons

import "sync"

// LockRegistry hands out one mutex per account identifier. Handles are
// created lazily on first reference and live for the process lifetime;
// with an unbounded account set the registry grows without bound.
type LockRegistry struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLockRegistry() *LockRegistry {
	return &LockRegistry{locks: make(map[string]*sync.Mutex)}
}

// Acquire returns the mutex handle for the given account, creating it
// exactly once even under concurrent first access. The caller locks and
// unlocks the handle itself.
func (r *LockRegistry) Acquire(accountID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	handle, ok := r.locks[accountID]
	if !ok {
		handle = &sync.Mutex{}
		r.locks[accountID] = handle
	}
	return handle
}

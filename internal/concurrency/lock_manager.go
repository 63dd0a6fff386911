package concurrency

import (
	"sync"
)

// LockManager handles named locks. The adventure service takes one lock per
// character ID so concurrent actions for the same character cannot
// double-consume a buff or double-count a flee failure.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

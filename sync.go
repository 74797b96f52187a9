package webstorage

import (
	"github.com/sasha-s/go-deadlock"
)

// SyncStorage serializes access to a Storage shared between goroutines.
//
// Reads (Length, Key, GetItem) take a shared lock; writes take an exclusive
// one. Each call is atomic on its own, sequences of calls are not.
//
// The lock is a go-deadlock RWMutex. With its default options a goroutine
// that waits longer than deadlock.Opts.DeadlockTimeout (30s) for the lock is
// reported as a potential deadlock and the process exits. Keep Update and
// View callbacks short, or adjust deadlock.Opts (for example set
// DeadlockTimeout to 0 or replace OnPotentialDeadlock) before sharing a
// storage under long-held locks.
type SyncStorage struct {
	mu    deadlock.RWMutex
	inner Storage
}

var _ Storage = (*SyncStorage)(nil)

// NewSyncStorage wraps inner. Callers must not use inner directly afterwards.
func NewSyncStorage(inner Storage) *SyncStorage {
	return &SyncStorage{inner: inner}
}

// Length returns the number of stored entries under a shared lock.
func (s *SyncStorage) Length() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Length()
}

// Clear removes every entry under an exclusive lock.
func (s *SyncStorage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Clear()
}

// Key returns the name of the nth key under a shared lock.
func (s *SyncStorage) Key(n int) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Key(n)
}

// GetItem returns the value stored under key under a shared lock.
func (s *SyncStorage) GetItem(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.GetItem(key)
}

// SetItem stores value under key under an exclusive lock.
func (s *SyncStorage) SetItem(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.SetItem(key, value)
}

// RemoveItem removes key, if present, under an exclusive lock.
func (s *SyncStorage) RemoveItem(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.RemoveItem(key)
}

// Update runs fn with exclusive access to the wrapped storage, so a
// read-modify-write sequence happens atomically. fn must not call back into s.
func (s *SyncStorage) Update(fn func(Storage)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.inner)
}

// View runs fn with shared access to the wrapped storage. fn must only read.
func (s *SyncStorage) View(fn func(Storage)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.inner)
}

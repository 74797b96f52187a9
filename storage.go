package webstorage

import (
	"github.com/davidroman0O/webstorage/store"
)

// MemoryStorage is an in-memory Storage.
//
// It is not safe for concurrent use; wrap it with NewSyncStorage when it has
// to be shared between goroutines.
type MemoryStorage struct {
	entries *store.OrderedStore
	name    string
	logger  Logger
}

var _ Storage = (*MemoryStorage)(nil)

// Option is a function that configures a MemoryStorage
type Option func(*MemoryStorage)

// WithLogger sets the logger used for debug output
func WithLogger(logger Logger) Option {
	return func(s *MemoryStorage) {
		s.logger = logger
	}
}

// WithName labels the storage in log output
func WithName(name string) Option {
	return func(s *MemoryStorage) {
		s.name = name
	}
}

// NewMemoryStorage creates a storage seeded with initial, in order.
//
// The initial slice is copied but the values it carries are not: a pointer,
// map or slice mutated by the caller after construction is visible through
// the storage. A key repeated in initial keeps the position of its first
// occurrence and the value of its last. A nil initial starts empty.
func NewMemoryStorage(initial []Entry, opts ...Option) *MemoryStorage {
	s := &MemoryStorage{}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = newNamedLogger(s.name, s.logger)

	s.entries = store.NewOrderedStore(initial...)
	if dup := len(initial) - s.entries.Count(); dup > 0 {
		s.logger.Warn("initial entries carry %d duplicate keys, later values win", dup)
	}
	s.logger.Debug("created with %d entries", s.entries.Count())
	return s
}

// Length returns the number of stored entries.
func (s *MemoryStorage) Length() int {
	return s.entries.Count()
}

// Clear removes every entry. Calling it on an empty storage does nothing.
func (s *MemoryStorage) Clear() {
	n := s.entries.Clear()
	s.logger.Debug("clear removed %d entries", n)
}

// Key returns the name of the nth key in insertion order, or false when n is
// negative or not less than Length.
func (s *MemoryStorage) Key(n int) (string, bool) {
	return s.entries.KeyAt(n)
}

// GetItem returns the value stored under key. Keys are compared exactly.
func (s *MemoryStorage) GetItem(key string) (any, bool) {
	return s.entries.Get(key)
}

// SetItem stores value under key. An existing key keeps its position;
// a new key is appended.
func (s *MemoryStorage) SetItem(key string, value any) {
	if s.entries.Put(key, value) {
		s.logger.Debug("set %q (new, length %d)", key, s.entries.Count())
		return
	}
	s.logger.Debug("set %q (updated)", key)
}

// RemoveItem removes key if it is present.
func (s *MemoryStorage) RemoveItem(key string) {
	if s.entries.Delete(key) {
		s.logger.Debug("removed %q (length %d)", key, s.entries.Count())
	}
}

// Keys returns the stored keys in insertion order.
func (s *MemoryStorage) Keys() []string {
	return s.entries.ListKeys()
}

// Entries returns a snapshot of the stored entries in insertion order.
// Values are shared with the storage.
func (s *MemoryStorage) Entries() []Entry {
	return s.entries.Entries()
}

// Clone returns an independent storage with the same entries in the same
// order. Values are shared; the logger and name carry over.
func (s *MemoryStorage) Clone() *MemoryStorage {
	return &MemoryStorage{
		entries: s.entries.Clone(),
		name:    s.name,
		logger:  s.logger,
	}
}

// GetItemAs returns the value stored under key as a T. It reports false when
// the key is absent or the value is not a T. A stored nil reads as the zero T
// when T can hold nil.
func GetItemAs[T any](s Storage, key string) (T, bool) {
	v, ok := s.GetItem(key)
	if !ok {
		var zero T
		return zero, false
	}
	typed, err := store.As[T](v)
	return typed, err == nil
}

package webstorage

import "github.com/davidroman0O/webstorage/store"

// Entry is a single key/value pair used to seed a storage.
type Entry = store.Entry

// Storage is the browser Storage contract.
//
// Implementations never return errors: absence is reported as a false
// second result, and removing a missing key does nothing.
type Storage interface {
	// Length returns the number of stored entries.
	Length() int

	// Clear removes every entry.
	Clear()

	// Key returns the name of the nth key in insertion order.
	Key(n int) (string, bool)

	// GetItem returns the value stored under key.
	GetItem(key string) (any, bool)

	// SetItem stores value under key, updating it in place if the key exists.
	SetItem(key string, value any)

	// RemoveItem removes key if it is present.
	RemoveItem(key string)
}

// Logger provides a simple interface for storage logging
type Logger interface {
	// Debug logs a message at debug level
	Debug(format string, args ...interface{})

	// Info logs a message at info level
	Info(format string, args ...interface{})

	// Warn logs a message at warning level
	Warn(format string, args ...interface{})

	// Error logs a message at error level
	Error(format string, args ...interface{})
}

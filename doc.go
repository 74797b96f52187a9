// Package webstorage provides an in-memory emulation of the browser Storage API.
//
// webstorage lets code that depends on a localStorage-style contract run in
// tests and other environments where no browser or disk is available. Nothing
// is persisted: a storage lives as long as the value that references it.
//
// Core components include:
//   - Storage: the six-member contract (Length, Clear, Key, GetItem, SetItem, RemoveItem)
//   - MemoryStorage: the in-memory implementation, seeded with initial entries
//   - SyncStorage: a locking wrapper for storages shared between goroutines
//   - Logger: an optional sink for debug output, silent by default
//
// None of the Storage operations fail. A missing key or an out-of-range index
// is reported through the comma-ok idiom, and removing a missing key is a
// no-op. Keys are unique, case-sensitive and kept in insertion order; updating
// a key keeps its position.
package webstorage

// Package store provides an ordered, key-unique in-memory container.
//
// OrderedStore keeps entries in insertion order and guarantees that no two
// entries share a key. Updating an existing key keeps its original position;
// only removal changes the relative order of the remaining entries.
//
// Core features include:
//   - Ordinal access to keys with KeyAt
//   - Type-safe reads using generics (Get, GetOrDefault, KeysByType)
//   - JSON Schema generation for the type of a stored value
//   - Shallow cloning
//
// Values are stored as given. The store never copies, inspects or compares
// them, so a pointer, map or slice placed in the store stays shared with the
// caller:
//
//	cfg := map[string]any{"debug": false}
//	s := NewOrderedStore(Entry{Key: "config", Value: cfg})
//	cfg["debug"] = true
//	v, _ := s.Get("config") // v["debug"] is true
//
// OrderedStore is not safe for concurrent use.
package store

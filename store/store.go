package store

import (
	"fmt"
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Entry is a single key/value pair held by the store.
type Entry struct {
	Key   string
	Value any
}

// OrderedStore is an insertion-ordered in-memory store with unique keys.
type OrderedStore struct {
	data *orderedmap.OrderedMap[string, any]
}

// NewOrderedStore constructs a store seeded with entries, in order.
//
// The entries slice itself is not retained. When a key appears more than once
// the first occurrence fixes its position and the last one fixes its value.
func NewOrderedStore(entries ...Entry) *OrderedStore {
	s := &OrderedStore{data: orderedmap.New[string, any]()}
	for _, e := range entries {
		s.Put(e.Key, e.Value)
	}
	return s
}

// Put stores value under key. An existing key is updated in place and keeps
// its position; a new key is appended. It reports whether a new entry was created.
func (s *OrderedStore) Put(key string, value any) bool {
	_, present := s.data.Set(key, value)
	return !present
}

// Get returns the value stored under key.
func (s *OrderedStore) Get(key string) (any, bool) {
	return s.data.Get(key)
}

// Has reports whether key is present.
func (s *OrderedStore) Has(key string) bool {
	_, ok := s.data.Get(key)
	return ok
}

// Delete removes a key from the store and reports whether it was present.
func (s *OrderedStore) Delete(key string) bool {
	_, present := s.data.Delete(key)
	return present
}

// Clear removes all keys from the store and returns how many were removed.
func (s *OrderedStore) Clear() int {
	n := s.data.Len()
	s.data = orderedmap.New[string, any]()
	return n
}

// KeyAt returns the key at position n in insertion order.
func (s *OrderedStore) KeyAt(n int) (string, bool) {
	if n < 0 || n >= s.data.Len() {
		return "", false
	}
	pair := s.data.Oldest()
	for i := 0; i < n; i++ {
		pair = pair.Next()
	}
	return pair.Key, true
}

// Count returns the number of entries in the store.
func (s *OrderedStore) Count() int {
	return s.data.Len()
}

// ListKeys returns all stored keys in insertion order.
func (s *OrderedStore) ListKeys() []string {
	out := make([]string, 0, s.data.Len())
	for pair := s.data.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Entries returns a snapshot of the entries in insertion order.
// Values are not copied.
func (s *OrderedStore) Entries() []Entry {
	out := make([]Entry, 0, s.data.Len())
	for pair := s.data.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Entry{Key: pair.Key, Value: pair.Value})
	}
	return out
}

// Clone returns a new store holding the same entries in the same order.
// Values are shared with the original, entries are not.
func (s *OrderedStore) Clone() *OrderedStore {
	return NewOrderedStore(s.Entries()...)
}

// ListTypes returns the distinct concrete types stored, in the order they
// were first seen. Nil values are reported as "<nil>".
func (s *OrderedStore) ListTypes() []string {
	seen := map[string]struct{}{}
	out := []string{}

	for pair := s.data.Oldest(); pair != nil; pair = pair.Next() {
		name := "<nil>"
		if pair.Value != nil {
			name = reflect.TypeOf(pair.Value).String()
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Get retrieves a value of type T for the given key.
//
// A stored nil is returned as the zero T when T can hold nil (interfaces,
// pointers, maps, slices, channels and funcs).
func Get[T any](s *OrderedStore, key string) (T, error) {
	v, ok := s.data.Get(key)
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return As[T](v)
}

// As converts a value read from a store to T, following the same rules as Get.
func As[T any](v any) (T, error) {
	var zero T

	want := reflect.TypeOf((*T)(nil)).Elem()
	if v == nil {
		if nillable(want.Kind()) {
			return zero, nil
		}
		return zero, fmt.Errorf("%w: wanted %v, got nil", ErrTypeMismatch, want)
	}

	result, ok := v.(T)
	if !ok {
		got := reflect.TypeOf(v)
		if want.Kind() == reflect.Interface {
			return zero, fmt.Errorf("%w: wanted interface %v, got %v which doesn't implement it",
				ErrTypeMismatch, want, got)
		}
		return zero, fmt.Errorf("%w: wanted %v (kind: %v), got %v (kind: %v)",
			ErrTypeMismatch, want, want.Kind(), got, got.Kind())
	}
	return result, nil
}

// GetOrDefault retrieves a value of type T for the given key, or defaultValue
// when the key is absent.
func GetOrDefault[T any](s *OrderedStore, key string, defaultValue T) (T, error) {
	value, err := Get[T](s, key)
	if err == ErrNotFound {
		return defaultValue, nil
	}
	return value, err
}

// KeysByType returns, in insertion order, the keys whose values are of type T.
func KeysByType[T any](s *OrderedStore) []string {
	var keys []string
	for pair := s.data.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == nil {
			continue
		}
		if _, ok := pair.Value.(T); ok {
			keys = append(keys, pair.Key)
		}
	}
	return keys
}

func nillable(kind reflect.Kind) bool {
	switch kind {
	case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return true
	default:
		return false
	}
}

package store

// ---------------------------------------------------------------------------
// Identifier Source
// ---------------------------------------------------------------------------

// IDSource produces keys for values that are stored without a caller
// supplied key. Implementations must never return the same identifier twice
// within the lifetime of the process, and must never return the empty
// string.
//
// Implementations of this interface can be found in the lib/ids package.
type IDSource interface {
	// NextID returns a fresh, never before issued identifier.
	NextID() string
}

// ---------------------------------------------------------------------------
// Store
// ---------------------------------------------------------------------------

// Store is a minimal in-memory container that associates string keys with
// values of type V. It is the storage primitive the data server builds on
// and is also usable on its own.
//
// All operations signal "no value" and "key already taken" through their
// comma-ok results instead of errors or in-band magic values, so callers
// can always distinguish a stored zero value from an absent entry.
//
// The empty string is not a valid key: Insert and Upsert treat it as "no
// key supplied" and generate one via the IDSource, Update treats it as
// referring to no entry. Consequently Lookup("") and Remove("") always
// report absent.
//
// Lookup, Values and Remove hand out the stored values themselves, not
// copies. Callers that mutate a returned value through a pointer or slice
// mutate the stored value too. Callers that need isolation must copy.
//
// Thread-safety: a Store performs no locking of its own. Concurrent use
// from multiple goroutines must be serialized externally, for example with
// lockmgr.ILockManager (see the api/server package for how the data server
// does this).
type Store[V any] struct {
	ids     IDSource
	entries map[string]V
}

// New creates an empty store. The ids source is consulted whenever Insert
// or Upsert is called without a key and must not be nil.
func New[V any](ids IDSource) *Store[V] {
	return &Store[V]{
		ids:     ids,
		entries: make(map[string]V),
	}
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Lookup returns the value stored under key. The second return value is
// false if no entry exists, in which case the first is the zero value of V.
//
// Thread-safety: this method is NOT thread safe, see the Store doc.
func (s *Store[V]) Lookup(key string) (V, bool) {
	value, ok := s.entries[key]
	return value, ok
}

// Insert stores value under key and returns the effective key. If key is
// empty a fresh key is generated. If the effective key is already taken the
// store is left untouched and Insert returns ("", false); an existing value
// is never overwritten by this method.
//
// Thread-safety: this method is NOT thread safe, see the Store doc.
func (s *Store[V]) Insert(key string, value V) (string, bool) {
	if key == "" {
		key = s.ids.NextID()
	}
	if _, taken := s.entries[key]; taken {
		return "", false
	}
	s.entries[key] = value
	return key, true
}

// Update replaces the value stored under key and returns the new value. If
// no entry exists (or key is empty) it returns the zero value of V and
// false without creating an entry; an absent value is never created by this
// method.
//
// Thread-safety: this method is NOT thread safe, see the Store doc.
func (s *Store[V]) Update(key string, value V) (V, bool) {
	var zero V
	if key == "" {
		return zero, false
	}
	if _, ok := s.entries[key]; !ok {
		return zero, false
	}
	s.entries[key] = value
	return value, true
}

// Upsert stores value under key unconditionally, overwriting any previous
// value, and returns the effective key. If key is empty a fresh key is
// generated.
//
// Thread-safety: this method is NOT thread safe, see the Store doc.
func (s *Store[V]) Upsert(key string, value V) string {
	if key == "" {
		key = s.ids.NextID()
	}
	s.entries[key] = value
	return key
}

// Remove deletes the entry stored under key and returns the removed value.
// If no entry exists it returns the zero value of V and false, and the
// store is left untouched.
//
// Thread-safety: this method is NOT thread safe, see the Store doc.
func (s *Store[V]) Remove(key string) (V, bool) {
	value, ok := s.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	delete(s.entries, key)
	return value, true
}

// Keys returns the keys of all entries as a snapshot. The returned slice is
// owned by the caller and unaffected by later store mutations. Order is
// unspecified.
//
// Thread-safety: this method is NOT thread safe, see the Store doc.
func (s *Store[V]) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	return keys
}

// Values returns all stored values as a snapshot. The slice itself is owned
// by the caller, the values are the stored ones (see the Store doc on
// sharing). Order is unspecified.
//
// Thread-safety: this method is NOT thread safe, see the Store doc.
func (s *Store[V]) Values() []V {
	values := make([]V, 0, len(s.entries))
	for _, value := range s.entries {
		values = append(values, value)
	}
	return values
}

// Len returns the number of stored entries.
//
// Thread-safety: this method is NOT thread safe, see the Store doc.
func (s *Store[V]) Len() int {
	return len(s.entries)
}

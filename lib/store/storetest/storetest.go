// Package storetest provides a standardised test suite and benchmarks for
// the store operations, driven by a factory so that every embedding (plain
// library use, the data server's datasets) can validate the same contract.
//
// Example usage:
//
//	factory := func() *store.Store[[]byte] {
//		return store.New[[]byte](ids.NewTimestampSource())
//	}
//
//	// Running the contract test suite
//	storetest.RunStoreTests(t, "map-backed", factory)
//
//	// Running the benchmarks
//	storetest.RunStoreBenchmarks(b, "map-backed", factory)
package storetest

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/ion-oset/electorate-vanadium-core/lib/store"
)

// Factory is a function type that creates a fresh, empty store for one test
// or benchmark case.
type Factory func() *store.Store[[]byte]

// RunStoreTests runs the contract test suite against stores created by the
// factory.
func RunStoreTests(t *testing.T, name string, factory Factory) {
	t.Run(name, func(t *testing.T) {
		t.Run("InsertAndLookup", func(t *testing.T) { testInsertAndLookup(t, factory()) })
		t.Run("InsertConflict", func(t *testing.T) { testInsertConflict(t, factory()) })
		t.Run("GeneratedKeys", func(t *testing.T) { testGeneratedKeys(t, factory()) })
		t.Run("Update", func(t *testing.T) { testUpdate(t, factory()) })
		t.Run("Upsert", func(t *testing.T) { testUpsert(t, factory()) })
		t.Run("Remove", func(t *testing.T) { testRemove(t, factory()) })
		t.Run("KeysAndValues", func(t *testing.T) { testKeysAndValues(t, factory()) })
		t.Run("EdgeCases", func(t *testing.T) { testEdgeCases(t, factory()) })
		t.Run("RealisticUsage", func(t *testing.T) { testRealisticUsage(t, factory()) })
	})
}

func testInsertAndLookup(t *testing.T, s *store.Store[[]byte]) {
	key, ok := s.Insert("test-key", []byte("test-value"))
	if !ok {
		t.Fatalf("Expected insert to succeed")
	}
	if key != "test-key" {
		t.Errorf("Expected effective key test-key, got %s", key)
	}

	value, ok := s.Lookup("test-key")
	if !ok {
		t.Fatalf("Expected key to be present after insert")
	}
	if !bytes.Equal(value, []byte("test-value")) {
		t.Errorf("Expected value test-value, got %s", value)
	}

	if _, ok := s.Lookup("nonexistent-key"); ok {
		t.Errorf("Expected absent for nonexistent key")
	}
}

func testInsertConflict(t *testing.T, s *store.Store[[]byte]) {
	s.Insert("test-key", []byte("original"))

	if _, ok := s.Insert("test-key", []byte("replacement")); ok {
		t.Errorf("Expected conflict for taken key")
	}
	if value, _ := s.Lookup("test-key"); !bytes.Equal(value, []byte("original")) {
		t.Errorf("Expected original value to survive conflict, got %s", value)
	}
}

func testGeneratedKeys(t *testing.T, s *store.Store[[]byte]) {
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		key, ok := s.Insert("", []byte(fmt.Sprintf("value-%d", i)))
		if !ok {
			t.Fatalf("Expected keyless insert %d to succeed", i)
		}
		if key == "" {
			t.Fatalf("Expected non-empty generated key")
		}
		if _, dup := seen[key]; dup {
			t.Fatalf("Expected unique generated keys, got duplicate %s", key)
		}
		seen[key] = struct{}{}
	}
	if s.Len() != 100 {
		t.Errorf("Expected 100 entries, got %d", s.Len())
	}
}

func testUpdate(t *testing.T, s *store.Store[[]byte]) {
	s.Insert("test-key", []byte("v1"))

	value, ok := s.Update("test-key", []byte("v2"))
	if !ok {
		t.Fatalf("Expected update of present key to succeed")
	}
	if !bytes.Equal(value, []byte("v2")) {
		t.Errorf("Expected new value v2, got %s", value)
	}

	if _, ok := s.Update("missing-key", []byte("v3")); ok {
		t.Errorf("Expected absent for update of missing key")
	}
	if _, ok := s.Lookup("missing-key"); ok {
		t.Errorf("Expected update to never create entries")
	}
	if _, ok := s.Update("", []byte("v4")); ok {
		t.Errorf("Expected absent for update without a key")
	}
}

func testUpsert(t *testing.T, s *store.Store[[]byte]) {
	if key := s.Upsert("test-key", []byte("v1")); key != "test-key" {
		t.Errorf("Expected upsert to return test-key, got %s", key)
	}
	if key := s.Upsert("test-key", []byte("v2")); key != "test-key" {
		t.Errorf("Expected overwriting upsert to return test-key, got %s", key)
	}
	if value, _ := s.Lookup("test-key"); !bytes.Equal(value, []byte("v2")) {
		t.Errorf("Expected upsert to overwrite, got %s", value)
	}

	generated := s.Upsert("", []byte("v3"))
	if generated == "" {
		t.Fatalf("Expected keyless upsert to generate a key")
	}
	if value, ok := s.Lookup(generated); !ok || !bytes.Equal(value, []byte("v3")) {
		t.Errorf("Expected generated key to resolve to v3, got %s (present=%v)", value, ok)
	}
}

func testRemove(t *testing.T, s *store.Store[[]byte]) {
	s.Insert("test-key", []byte("test-value"))

	value, ok := s.Remove("test-key")
	if !ok {
		t.Fatalf("Expected remove of present key to succeed")
	}
	if !bytes.Equal(value, []byte("test-value")) {
		t.Errorf("Expected removed value test-value, got %s", value)
	}
	if _, ok := s.Lookup("test-key"); ok {
		t.Errorf("Expected key to be absent after remove")
	}
	if _, ok := s.Remove("test-key"); ok {
		t.Errorf("Expected absent for second remove")
	}
}

func testKeysAndValues(t *testing.T, s *store.Store[[]byte]) {
	for i := 0; i < 10; i++ {
		s.Insert(fmt.Sprintf("key-%d", i), []byte(fmt.Sprintf("value-%d", i)))
	}

	keys := s.Keys()
	values := s.Values()
	if len(keys) != 10 || len(values) != 10 {
		t.Fatalf("Expected 10 keys and values, got %d and %d", len(keys), len(values))
	}

	// Snapshots must not follow later mutations.
	s.Remove("key-0")
	if len(keys) != 10 {
		t.Errorf("Expected key snapshot to be detached from the store")
	}

	for _, key := range keys {
		if key == "key-0" {
			continue
		}
		if _, ok := s.Lookup(key); !ok {
			t.Errorf("Expected listed key %s to be present", key)
		}
	}
}

func testEdgeCases(t *testing.T, s *store.Store[[]byte]) {
	// Empty (but present) values are distinguishable from absent ones.
	s.Insert("empty", []byte{})
	if value, ok := s.Lookup("empty"); !ok || len(value) != 0 {
		t.Errorf("Expected present empty value, got %v (present=%v)", value, ok)
	}

	// Nil values are legal too.
	s.Insert("nil", nil)
	if _, ok := s.Lookup("nil"); !ok {
		t.Errorf("Expected present nil value")
	}

	// Large keys and values.
	largeKey := string(bytes.Repeat([]byte("k"), 4096))
	largeValue := bytes.Repeat([]byte("v"), 1<<20)
	if _, ok := s.Insert(largeKey, largeValue); !ok {
		t.Fatalf("Expected insert of large entry to succeed")
	}
	if value, ok := s.Lookup(largeKey); !ok || !bytes.Equal(value, largeValue) {
		t.Errorf("Expected large value to round-trip")
	}
}

func testRealisticUsage(t *testing.T, s *store.Store[[]byte]) {
	const n = 1000

	// Create half with explicit keys and half with generated ones.
	keys := make([]string, 0, n)
	for i := 0; i < n; i++ {
		key := ""
		if i%2 == 0 {
			key = fmt.Sprintf("explicit-%d", i)
		}
		effective, ok := s.Insert(key, []byte(fmt.Sprintf("value-%d", i)))
		if !ok {
			t.Fatalf("Expected insert %d to succeed", i)
		}
		keys = append(keys, effective)
	}

	// Replace every third entry, remove every fifth.
	removed := make(map[string]struct{})
	for i, key := range keys {
		switch {
		case i%5 == 0:
			if _, ok := s.Remove(key); !ok {
				t.Fatalf("Expected remove of %s to succeed", key)
			}
			removed[key] = struct{}{}
		case i%3 == 0:
			if _, ok := s.Update(key, []byte(fmt.Sprintf("updated-%d", i))); !ok {
				t.Fatalf("Expected update of %s to succeed", key)
			}
		}
	}

	if s.Len() != n-len(removed) {
		t.Fatalf("Expected %d entries, got %d", n-len(removed), s.Len())
	}

	for i, key := range keys {
		value, ok := s.Lookup(key)
		if _, gone := removed[key]; gone {
			if ok {
				t.Errorf("Expected removed key %s to be absent", key)
			}
			continue
		}
		if !ok {
			t.Errorf("Expected surviving key %s to be present", key)
			continue
		}
		want := fmt.Sprintf("value-%d", i)
		if i%3 == 0 {
			want = fmt.Sprintf("updated-%d", i)
		}
		if !bytes.Equal(value, []byte(want)) {
			t.Errorf("Expected %s for key %s, got %s", want, key, value)
		}
	}
}

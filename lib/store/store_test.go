package store_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/ion-oset/electorate-vanadium-core/lib/ids"
	"github.com/ion-oset/electorate-vanadium-core/lib/store"
	"github.com/ion-oset/electorate-vanadium-core/lib/store/storetest"
)

// seqSource issues deterministic identifiers for tests.
type seqSource struct {
	prefix string
	n      int
}

func (s *seqSource) NextID() string {
	s.n++
	return fmt.Sprintf("%s-%d", s.prefix, s.n)
}

// fixedSource always issues the same identifier, to provoke collisions.
type fixedSource struct{ id string }

func (s *fixedSource) NextID() string { return s.id }

func newStringStore() *store.Store[string] {
	return store.New[string](&seqSource{prefix: "gen"})
}

// ---------------------------------------------------------------------------
// Operation Tests
// ---------------------------------------------------------------------------

func TestInsertLookup(t *testing.T) {
	s := newStringStore()

	key, ok := s.Insert("alpha", "one")
	if !ok {
		t.Fatalf("Expected insert into empty store to succeed")
	}
	if key != "alpha" {
		t.Errorf("Expected effective key alpha, got %s", key)
	}

	value, ok := s.Lookup("alpha")
	if !ok {
		t.Fatalf("Expected alpha to be present after insert")
	}
	if value != "one" {
		t.Errorf("Expected value one, got %s", value)
	}

	if _, ok := s.Lookup("beta"); ok {
		t.Errorf("Expected lookup of never-inserted key to report absent")
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", s.Len())
	}
}

func TestInsertConflict(t *testing.T) {
	s := newStringStore()

	if _, ok := s.Insert("alpha", "one"); !ok {
		t.Fatalf("Expected first insert to succeed")
	}
	key, ok := s.Insert("alpha", "two")
	if ok {
		t.Errorf("Expected insert of taken key to report conflict")
	}
	if key != "" {
		t.Errorf("Expected empty key on conflict, got %s", key)
	}

	// The original value must survive a conflicting insert.
	if value, _ := s.Lookup("alpha"); value != "one" {
		t.Errorf("Expected original value one after conflict, got %s", value)
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 entry after conflict, got %d", s.Len())
	}
}

func TestInsertGeneratesKey(t *testing.T) {
	s := newStringStore()

	key, ok := s.Insert("", "one")
	if !ok {
		t.Fatalf("Expected keyless insert to succeed")
	}
	if key != "gen-1" {
		t.Errorf("Expected generated key gen-1, got %s", key)
	}
	if value, ok := s.Lookup(key); !ok || value != "one" {
		t.Errorf("Expected generated key to resolve to one, got %s (present=%v)", value, ok)
	}

	// The empty string is never a key in its own right.
	if _, ok := s.Lookup(""); ok {
		t.Errorf("Expected lookup of empty key to report absent")
	}

	key2, ok := s.Insert("", "two")
	if !ok || key2 == key {
		t.Errorf("Expected second keyless insert to get a distinct key, got %s (ok=%v)", key2, ok)
	}
}

func TestInsertGeneratedKeyCollision(t *testing.T) {
	s := store.New[string](&fixedSource{id: "stuck"})

	if _, ok := s.Insert("", "one"); !ok {
		t.Fatalf("Expected first keyless insert to succeed")
	}
	if _, ok := s.Insert("", "two"); ok {
		t.Errorf("Expected colliding generated key to report conflict")
	}
	if value, _ := s.Lookup("stuck"); value != "one" {
		t.Errorf("Expected original value one, got %s", value)
	}
}

func TestUpdate(t *testing.T) {
	s := newStringStore()
	s.Insert("alpha", "one")

	value, ok := s.Update("alpha", "two")
	if !ok {
		t.Fatalf("Expected update of present key to succeed")
	}
	if value != "two" {
		t.Errorf("Expected update to return new value two, got %s", value)
	}
	if stored, _ := s.Lookup("alpha"); stored != "two" {
		t.Errorf("Expected stored value two after update, got %s", stored)
	}
}

func TestUpdateAbsent(t *testing.T) {
	s := newStringStore()

	value, ok := s.Update("missing", "two")
	if ok {
		t.Errorf("Expected update of absent key to report absent")
	}
	if value != "" {
		t.Errorf("Expected zero value on absent update, got %s", value)
	}
	// An update must never create an entry.
	if s.Len() != 0 {
		t.Errorf("Expected store to stay empty after absent update, got %d entries", s.Len())
	}
}

func TestUpdateEmptyKey(t *testing.T) {
	s := newStringStore()
	s.Insert("alpha", "one")

	if _, ok := s.Update("", "two"); ok {
		t.Errorf("Expected update without a key to report absent")
	}
	if s.Len() != 1 {
		t.Errorf("Expected store unchanged after keyless update, got %d entries", s.Len())
	}
}

func TestUpsert(t *testing.T) {
	s := newStringStore()

	if key := s.Upsert("alpha", "one"); key != "alpha" {
		t.Errorf("Expected upsert to return alpha, got %s", key)
	}
	if key := s.Upsert("alpha", "two"); key != "alpha" {
		t.Errorf("Expected overwriting upsert to return alpha, got %s", key)
	}
	if value, _ := s.Lookup("alpha"); value != "two" {
		t.Errorf("Expected upsert to overwrite, got %s", value)
	}

	key := s.Upsert("", "three")
	if key == "" {
		t.Fatalf("Expected keyless upsert to generate a key")
	}
	if value, ok := s.Lookup(key); !ok || value != "three" {
		t.Errorf("Expected generated key to resolve to three, got %s (present=%v)", value, ok)
	}
	if s.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", s.Len())
	}
}

func TestRemove(t *testing.T) {
	s := newStringStore()
	s.Insert("alpha", "one")
	s.Insert("beta", "two")

	value, ok := s.Remove("alpha")
	if !ok {
		t.Fatalf("Expected remove of present key to succeed")
	}
	if value != "one" {
		t.Errorf("Expected removed value one, got %s", value)
	}
	if _, ok := s.Lookup("alpha"); ok {
		t.Errorf("Expected alpha to be absent after remove")
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 entry after remove, got %d", s.Len())
	}
}

func TestRemoveAbsent(t *testing.T) {
	s := newStringStore()
	s.Insert("alpha", "one")

	value, ok := s.Remove("missing")
	if ok {
		t.Errorf("Expected remove of absent key to report absent")
	}
	if value != "" {
		t.Errorf("Expected zero value on absent remove, got %s", value)
	}
	if s.Len() != 1 {
		t.Errorf("Expected store unchanged after absent remove, got %d entries", s.Len())
	}
}

func TestKeysAndValues(t *testing.T) {
	s := newStringStore()
	want := map[string]string{"a": "1", "b": "2", "c": "3"}
	for key, value := range want {
		s.Insert(key, value)
	}

	keys := s.Keys()
	values := s.Values()
	if len(keys) != len(want) || len(values) != len(want) {
		t.Fatalf("Expected %d keys and values, got %d and %d", len(want), len(keys), len(values))
	}

	sort.Strings(keys)
	if keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("Expected keys a b c, got %v", keys)
	}
	sort.Strings(values)
	if values[0] != "1" || values[1] != "2" || values[2] != "3" {
		t.Errorf("Expected values 1 2 3, got %v", values)
	}

	// Every listed key must resolve.
	for _, key := range keys {
		if _, ok := s.Lookup(key); !ok {
			t.Errorf("Expected listed key %s to be present", key)
		}
	}
}

func TestKeysAndValuesAreSnapshots(t *testing.T) {
	s := newStringStore()
	s.Insert("a", "1")
	s.Insert("b", "2")

	keys := s.Keys()
	values := s.Values()

	s.Remove("a")
	s.Insert("c", "3")

	if len(keys) != 2 {
		t.Errorf("Expected key snapshot to keep 2 entries, got %d", len(keys))
	}
	if len(values) != 2 {
		t.Errorf("Expected value snapshot to keep 2 entries, got %d", len(values))
	}

	// An empty store hands out empty snapshots, not nil panics.
	empty := newStringStore()
	if got := empty.Keys(); len(got) != 0 {
		t.Errorf("Expected no keys on empty store, got %v", got)
	}
	if got := empty.Values(); len(got) != 0 {
		t.Errorf("Expected no values on empty store, got %v", got)
	}
}

// TestSharedValueSemantics pins down that Lookup hands out the stored value
// itself. For reference-like V (slices, maps, pointers) callers share state
// with the store.
func TestSharedValueSemantics(t *testing.T) {
	s := store.New[map[string]int](&seqSource{prefix: "gen"})
	s.Insert("counts", map[string]int{"a": 1})

	value, _ := s.Lookup("counts")
	value["a"] = 42

	stored, _ := s.Lookup("counts")
	if stored["a"] != 42 {
		t.Errorf("Expected mutation through looked-up value to be visible, got %d", stored["a"])
	}
}

// TestLifecycleSequence walks one value through the full create, read,
// replace, delete cycle.
func TestLifecycleSequence(t *testing.T) {
	type record struct {
		Name   string
		Status string
	}
	s := store.New[record](&seqSource{prefix: "rec"})

	key, ok := s.Insert("", record{Name: "Ada", Status: "received"})
	if !ok || key == "" {
		t.Fatalf("Expected keyless insert to succeed with a generated key")
	}

	got, ok := s.Lookup(key)
	if !ok || got.Name != "Ada" {
		t.Fatalf("Expected to read back the inserted record, got %+v (present=%v)", got, ok)
	}

	updated, ok := s.Update(key, record{Name: "Ada", Status: "approved"})
	if !ok || updated.Status != "approved" {
		t.Fatalf("Expected update to return the new record, got %+v (present=%v)", updated, ok)
	}

	if _, ok := s.Insert(key, record{Name: "Eve"}); ok {
		t.Errorf("Expected insert under the taken key to report conflict")
	}

	removed, ok := s.Remove(key)
	if !ok || removed.Status != "approved" {
		t.Fatalf("Expected remove to return the latest record, got %+v (present=%v)", removed, ok)
	}
	if _, ok := s.Lookup(key); ok {
		t.Errorf("Expected record to be gone after remove")
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty store at end of lifecycle, got %d entries", s.Len())
	}
}

// ---------------------------------------------------------------------------
// Contract Suite and Benchmarks
// ---------------------------------------------------------------------------

func byteStoreFactory() *store.Store[[]byte] {
	return store.New[[]byte](ids.NewTimestampSource())
}

func TestStoreContract(t *testing.T) {
	storetest.RunStoreTests(t, "map-backed", byteStoreFactory)
}

func BenchmarkStore(b *testing.B) {
	storetest.RunStoreBenchmarks(b, "map-backed", byteStoreFactory)
}

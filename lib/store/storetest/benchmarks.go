package storetest

import (
	"fmt"
	"testing"

	"github.com/ion-oset/electorate-vanadium-core/lib/store"
)

// RunStoreBenchmarks runs the benchmark suite against stores created by the
// factory. The store contract requires external serialization, so all
// benchmarks drive the store from a single goroutine.
func RunStoreBenchmarks(b *testing.B, name string, factory Factory) {
	b.Run(name, func(b *testing.B) {
		b.Run("Insert", func(b *testing.B) { benchmarkInsert(b, factory) })
		b.Run("InsertGenerated", func(b *testing.B) { benchmarkInsertGenerated(b, factory) })
		b.Run("Lookup", func(b *testing.B) { benchmarkLookup(b, factory) })
		b.Run("LookupMiss", func(b *testing.B) { benchmarkLookupMiss(b, factory) })
		b.Run("Upsert", func(b *testing.B) { benchmarkUpsert(b, factory) })
		b.Run("Update", func(b *testing.B) { benchmarkUpdate(b, factory) })
		b.Run("Remove", func(b *testing.B) { benchmarkRemove(b, factory) })
		b.Run("Keys", func(b *testing.B) { benchmarkKeys(b, factory) })
	})
}

// benchKeys pre-computes n distinct keys so key formatting stays out of the
// measured loop.
func benchKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("bench-key-%d", i)
	}
	return keys
}

// populate fills the store with n entries and returns their keys.
func populate(s *store.Store[[]byte], n int) []string {
	keys := benchKeys(n)
	value := []byte("bench-value")
	for _, key := range keys {
		s.Insert(key, value)
	}
	return keys
}

func benchmarkInsert(b *testing.B, factory Factory) {
	s := factory()
	keys := benchKeys(b.N)
	value := []byte("bench-value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Insert(keys[i], value)
	}
}

func benchmarkInsertGenerated(b *testing.B, factory Factory) {
	s := factory()
	value := []byte("bench-value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Insert("", value)
	}
}

func benchmarkLookup(b *testing.B, factory Factory) {
	s := factory()
	keys := populate(s, 10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Lookup(keys[i%len(keys)])
	}
}

func benchmarkLookupMiss(b *testing.B, factory Factory) {
	s := factory()
	populate(s, 10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Lookup("missing-key")
	}
}

func benchmarkUpsert(b *testing.B, factory Factory) {
	s := factory()
	keys := benchKeys(1000)
	value := []byte("bench-value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Upsert(keys[i%len(keys)], value)
	}
}

func benchmarkUpdate(b *testing.B, factory Factory) {
	s := factory()
	keys := populate(s, 10000)
	value := []byte("bench-value-updated")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Update(keys[i%len(keys)], value)
	}
}

func benchmarkRemove(b *testing.B, factory Factory) {
	s := factory()
	keys := benchKeys(b.N)
	value := []byte("bench-value")
	for _, key := range keys {
		s.Insert(key, value)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Remove(keys[i])
	}
}

func benchmarkKeys(b *testing.B, factory Factory) {
	s := factory()
	populate(s, 10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := s.Keys(); len(got) != 10000 {
			b.Fatalf("Expected 10000 keys, got %d", len(got))
		}
	}
}

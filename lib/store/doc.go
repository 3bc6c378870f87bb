// Package store provides the in-memory key-value container underlying the
// vanadium data service. It maps opaque string keys to values of any single
// type and reports outcomes through comma-ok results, so absent entries and
// key conflicts are always distinguishable from stored zero values.
//
// The package focuses on:
//   - A small, explicit operation set (Lookup, Insert, Update, Upsert,
//     Remove, Keys, Values) with well-defined conflict and absence semantics
//   - Key generation for values stored without a caller-supplied key,
//     pluggable through the IDSource interface
//   - Snapshot listings that are detached from later store mutations
//
// Key Components:
//
//   - Store: The container itself, generic over the value type. A Store is
//     deliberately free of internal locking; callers that share one across
//     goroutines serialize access themselves, for example with the
//     lib/lockmgr package.
//
//   - IDSource: The contract for identifier generators consulted by Insert
//     and Upsert when no key is supplied. Implementations live in the
//     lib/ids package.
//
// The storetest subpackage provides a reusable contract test suite and
// benchmarks for store embeddings.
package store

// Package lockmgr implements in-process locking over named resources. The
// stores in lib/store have no internal locking, so the data server (and any
// other component that shares a store between goroutines) uses a lock
// manager to serialize access per dataset.
//
// Core Functionality:
//   - Blocking acquisition of a lock identified by name
//   - Independent locks per name, so unrelated resources never contend
//   - Lazy creation of locks on first use
//
// Implementation Approach:
//
//	Each name maps to exactly one sync.Mutex held in a concurrent map.
//	Lock resolves the mutex for the name (creating it atomically on first
//	use) and locks it, Unlock looks it up and unlocks it. Unlocking a name
//	that was never acquired panics, mirroring the behavior of sync.Mutex.
//
// Thread Safety:
//
//	The manager itself is safe for concurrent use. Mutexes are resolved
//	through an atomic load-or-compute, so two goroutines racing on the
//	first use of a name always end up sharing the same mutex.
//
// Usage Example:
//
//	locks := lockmgr.NewLockManager()
//
//	locks.Lock("registrations")
//	// Operate on the store serving the "registrations" dataset
//	// ...
//	locks.Unlock("registrations")
//
// Performance Impact:
//
//	A Lock/Unlock pair costs one concurrent-map lookup plus one mutex
//	operation each. Locks are never removed, so the map grows with the
//	number of distinct names, which is bounded by the number of datasets
//	in the intended deployment.
package lockmgr

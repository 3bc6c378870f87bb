package lockmgr

// ILockManager is the interface for serializing access to named resources.
// The store type in lib/store performs no locking of its own, so every
// component that shares a store across goroutines must funnel all store
// operations through a lock manager (or an equivalent external
// serialization layer).
//
// Locks are identified by name. Distinct names lock independently, the same
// name excludes mutually.
type ILockManager interface {
	// Lock blocks until the lock with the given name is held by the caller.
	//
	// Thread-safety: This method is thread safe.
	Lock(name string)

	// Unlock releases the lock with the given name. It panics if the lock
	// was never acquired.
	//
	// Thread-safety: This method is thread safe.
	Unlock(name string)
}

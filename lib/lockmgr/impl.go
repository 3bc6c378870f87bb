package lockmgr

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

type lockMgrImpl struct {
	locks *xsync.MapOf[string, *sync.Mutex]
}

// NewLockManager creates a lock manager with one independent lock per name.
// Locks are created lazily on first use and are never removed, so the
// manager grows with the set of names it has seen.
func NewLockManager() ILockManager {
	return &lockMgrImpl{
		locks: xsync.NewMapOf[string, *sync.Mutex](),
	}
}

// ---------------------------------------------------------------------------
// Interface Methods (docu see interface.go)
// ---------------------------------------------------------------------------

func (lm *lockMgrImpl) Lock(name string) {
	mu, _ := lm.locks.LoadOrCompute(name, func() *sync.Mutex {
		return &sync.Mutex{}
	})
	mu.Lock()
}

func (lm *lockMgrImpl) Unlock(name string) {
	mu, ok := lm.locks.Load(name)
	if !ok {
		panic("lockmgr: unlock of never-acquired lock " + name)
	}
	mu.Unlock()
}

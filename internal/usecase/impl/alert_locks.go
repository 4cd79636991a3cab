package impl

import (
	"sync"

	"github.com/google/uuid"
)

// alertLocks serializes workflow transitions per alert within this process.
// Cross-process races are caught by the repository's optimistic version check;
// this keyed mutex just keeps local contention from burning save retries.
type alertLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*alertLock
}

type alertLock struct {
	mu   sync.Mutex
	refs int
}

func newAlertLocks() *alertLocks {
	return &alertLocks{
		locks: make(map[uuid.UUID]*alertLock),
	}
}

// lock acquires the mutex for the alert and returns its release func. Lock
// entries are reference counted and removed once the last holder releases.
func (l *alertLocks) lock(alertID uuid.UUID) func() {
	l.mu.Lock()
	entry, ok := l.locks[alertID]
	if !ok {
		entry = &alertLock{}
		l.locks[alertID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, alertID)
		}
		l.mu.Unlock()
	}
}

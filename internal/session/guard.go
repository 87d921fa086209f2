package session

import (
	"errors"
	"sync"

	"github.com/ahamed-hazeeb/budget-buddy/internal/common"
)

// Notifier is the user-visible notification sink the guard reports
// through. It is narrowed to avoid pulling terminal concerns in here.
type Notifier interface {
	Failure(message string)
}

// SessionExpiredMessage is shown exactly once when the backend rejects
// the stored token.
const SessionExpiredMessage = "Session expired. Please login again with 'buddy login'."

// Guard force-clears the session when any backend call reports an
// unauthorized token. The clear and its notification fire exactly once
// per process no matter how many concurrent calls fail.
type Guard struct {
	store    *Store
	notifier Notifier
	once     sync.Once
}

// NewGuard wires a guard to a session store and notifier.
func NewGuard(store *Store, notifier Notifier) *Guard {
	return &Guard{store: store, notifier: notifier}
}

// Check inspects an error from any backend call. On unauthorized it
// clears the session, emits the single session-expired notification,
// and rewraps the error as ErrSessionExpired. Every other error passes
// through untouched.
func (g *Guard) Check(err error) error {
	if err == nil || !errors.Is(err, common.ErrUnauthenticated) {
		return err
	}

	g.once.Do(func() {
		_ = g.store.Clear()
		if g.notifier != nil {
			g.notifier.Failure(SessionExpiredMessage)
		}
	})

	return common.ErrSessionExpired
}

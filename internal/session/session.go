// Package session defines the explicit session context created on login.
// It replaces any notion of a global current user: the task service and the
// session logger are constructed from it, and it dies with the logout.
package session

import (
	"time"

	"github.com/google/uuid"
)

// Session identifies one authenticated run of the task surface.
type Session struct {
	ID        uuid.UUID
	Username  string
	StartedAt time.Time
}

// New creates a session for the authenticated username.
func New(username string) *Session {
	return &Session{
		ID:        uuid.New(),
		Username:  username,
		StartedAt: time.Now(),
	}
}

package auth

import (
	"time"

	"github.com/google/uuid"
)

// Session is a logged-in view for one user. It is a capability handle
// only; every permission decision is re-checked against the current
// snapshot, so a session never outlives the state that issued it.
type Session struct {
	ID       uuid.UUID
	Username string
	IssuedAt time.Time
}

// NewSession issues a session for username at the given instant.
func NewSession(username string, at time.Time) (*Session, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}
	return &Session{
		ID:       uuid.New(),
		Username: username,
		IssuedAt: at,
	}, nil
}

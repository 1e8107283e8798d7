package vault

import (
	"fmt"

	"github.com/DisDoh/chainvault-go/auth"
)

// Register creates a new user. The password is stored only as a salted
// one-way hash, and a new block embedding the updated snapshot is
// appended to the chain.
func (s *Service) Register(username, password string) error {
	if username == "" {
		return auth.ErrEmptyUsername
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.tip().Clone()
	if _, ok := snap.Users[username]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateUser, username)
	}

	cred, err := auth.NewCredential(password)
	if err != nil {
		return err
	}
	snap.Users[username] = cred

	if err := s.appendSnapshot(snap); err != nil {
		return err
	}
	s.log.Info().Str("user", username).Msg("user registered")
	return nil
}

// Login authenticates a user and returns a session. No chain mutation
// occurs; unknown users and wrong passwords yield the same error.
func (s *Service) Login(username, password string) (*auth.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cred, ok := s.tip().Users[username]
	if !ok || !auth.VerifyPassword(cred, password) {
		return nil, ErrAuthentication
	}

	return auth.NewSession(username, s.now())
}

package vault

import (
	"fmt"

	"github.com/DisDoh/chainvault-go/auth"
)

// GrantPermission adds grantee to the file's permission set and appends
// a new block. Only the owner may grant. Granting to the owner or to an
// existing grantee is a no-op and appends nothing.
func (s *Service) GrantPermission(session *auth.Session, filename, grantee string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.tip().Clone()
	user, err := requireUser(snap, session)
	if err != nil {
		return err
	}

	rec, ok := snap.Files[filename]
	if !ok {
		return fmt.Errorf("%w: %s", ErrFileNotFound, filename)
	}
	if rec.Owner != user {
		return fmt.Errorf("%w: %s", ErrNotOwner, filename)
	}
	if _, ok := snap.Users[grantee]; !ok {
		return fmt.Errorf("%w: %s", ErrUserNotFound, grantee)
	}

	if grantee == rec.Owner || rec.Shared[grantee] {
		return nil // already authorized
	}

	if rec.Shared == nil {
		rec.Shared = make(map[string]bool)
	}
	rec.Shared[grantee] = true

	if err := s.appendSnapshot(snap); err != nil {
		return err
	}
	s.log.Info().Str("file", filename).Str("owner", user).Str("grantee", grantee).Msg("permission granted")
	return nil
}

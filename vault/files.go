package vault

import (
	"fmt"
	"sort"

	"github.com/DisDoh/chainvault-go/auth"
	"github.com/DisDoh/chainvault-go/chain"
)

// AddFile stores a file owned by the caller and appends a new block.
// Filenames are unique per snapshot.
func (s *Service) AddFile(session *auth.Session, filename string, content []byte) error {
	if filename == "" {
		return ErrInvalidFileName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.tip().Clone()
	user, err := requireUser(snap, session)
	if err != nil {
		return err
	}

	if _, ok := snap.Files[filename]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateFile, filename)
	}

	snap.Files[filename] = &chain.FileRecord{
		Name:    filename,
		Content: append([]byte(nil), content...),
		Owner:   user,
		Added:   s.now().Unix(),
		Seq:     snap.NextSeq,
	}
	snap.NextSeq++

	if err := s.appendSnapshot(snap); err != nil {
		return err
	}
	s.log.Info().Str("user", user).Str("file", filename).Int("bytes", len(content)).Msg("file added")
	return nil
}

// GetFile returns the exact stored bytes of filename if the caller is
// the owner or a grantee.
func (s *Service) GetFile(session *auth.Session, filename string) ([]byte, error) {
	user, err := sessionUser(session)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.tip().Files[filename]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filename)
	}
	if !rec.Authorized(user) {
		return nil, fmt.Errorf("%w: %s", ErrPermission, filename)
	}

	return append([]byte(nil), rec.Content...), nil
}

// GetAll returns every filename the caller owns or is granted, sorted
// for a deterministic result.
func (s *Service) GetAll(session *auth.Session) ([]string, error) {
	user, err := sessionUser(session)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0)
	for name, rec := range s.tip().Files {
		if rec.Authorized(user) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

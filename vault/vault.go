// Package vault is the shared business-logic layer of the backup
// store. CLI and other front ends call Service methods to perform
// operations; the Service owns the chain and enforces the single
// logical writer model.
package vault

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/DisDoh/chainvault-go/auth"
	"github.com/DisDoh/chainvault-go/chain"
	"github.com/DisDoh/chainvault-go/config"
	"github.com/DisDoh/chainvault-go/storage"
)

// Service owns one Chain plus its backup store. All state-mutating
// operations (Register, AddFile, GrantPermission, LoadBackup) run in an
// exclusive write section; reads share the lock and always observe one
// consistent tip snapshot.
type Service struct {
	mu     sync.RWMutex
	chain  *chain.Chain
	store  storage.Store
	scheme int32 // compression scheme for new backups

	now func() time.Time
	log zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock injects a time source, used by tests for reproducible
// block digests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithCompression selects the compression scheme for new backups.
func WithCompression(scheme int32) Option {
	return func(s *Service) { s.scheme = scheme }
}

// New creates a Service with a fresh chain (a single genesis block
// carrying an empty snapshot) backed by store.
func New(store storage.Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("vault: store is required")
	}

	s := &Service{
		store:  store,
		scheme: storage.CompressNone,
		now:    time.Now,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	c, err := chain.New(chain.NewSnapshot(), s.now())
	if err != nil {
		return nil, fmt.Errorf("vault: create chain: %w", err)
	}
	s.chain = c

	s.log.Debug().Str("genesis", c.Tip().Hash.String()).Msg("chain created")
	return s, nil
}

// Open wires a Service from configuration: it builds the configured
// storage backend and applies the configured compression scheme.
func Open(cfg config.Config, opts ...Option) (*Service, error) {
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	var store storage.Store
	switch cfg.Backend {
	case config.BackendBolt:
		bolt, err := storage.OpenBoltStore(storage.BoltPath(cfg.StorageDir))
		if err != nil {
			return nil, fmt.Errorf("vault: open backup store: %w", err)
		}
		store = bolt
	default:
		fs, err := storage.NewFileStore(cfg.StorageDir)
		if err != nil {
			return nil, fmt.Errorf("vault: open backup store: %w", err)
		}
		store = fs
	}

	opts = append([]Option{WithCompression(cfg.CompressionScheme())}, opts...)
	return New(store, opts...)
}

// Close releases the backup store if it holds resources (bolt backend).
func (s *Service) Close() error {
	if closer, ok := s.store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// ChainLen returns the number of blocks in the current chain.
func (s *Service) ChainLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chain.Len()
}

// VerifyIntegrity re-validates the live chain from genesis and returns
// the first integrity failure, if any.
func (s *Service) VerifyIntegrity() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chain.ValidateFull()
}

// tip returns the current tip snapshot. Caller must hold the lock.
func (s *Service) tip() *chain.Snapshot {
	return s.chain.Tip().Payload
}

// appendSnapshot wraps snap in a new block linked to the tip and
// appends it. Caller must hold the write lock.
func (s *Service) appendSnapshot(snap *chain.Snapshot) error {
	b, err := chain.Next(s.chain.Tip(), snap, s.now())
	if err != nil {
		return err
	}
	if err := s.chain.Append(b); err != nil {
		return err
	}
	s.log.Debug().Uint64("index", b.Index).Str("hash", b.Hash.String()).Msg("block appended")
	return nil
}

// sessionUser extracts the caller's username from a session.
func sessionUser(session *auth.Session) (string, error) {
	if session == nil || session.Username == "" {
		return "", ErrNilSession
	}
	return session.Username, nil
}

// requireUser checks that the session's user exists in snap, so a
// session issued against replaced state cannot mutate on behalf of a
// user the current chain does not know.
func requireUser(snap *chain.Snapshot, session *auth.Session) (string, error) {
	user, err := sessionUser(session)
	if err != nil {
		return "", err
	}
	if _, ok := snap.Users[user]; !ok {
		return "", fmt.Errorf("%w: %s", ErrAuthentication, user)
	}
	return user, nil
}

package vault

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/DisDoh/chainvault-go/chain"
	"github.com/DisDoh/chainvault-go/storage"
)

// BackupFormatVersion is the current backup envelope format.
const BackupFormatVersion = 1

// backupEnvelope wraps a serialized chain for durable storage. The
// version and compression scheme travel with the blob so old backups
// stay readable when defaults change.
type backupEnvelope struct {
	Version uint32 `cbor:"v"`
	Scheme  int32  `cbor:"c"`
	Chain   []byte `cbor:"d"`
}

// Bounded decoding, same posture as the chain codec.
var envDecMode, _ = cbor.DecOptions{
	MaxNestedLevels: 16,
	IndefLength:     cbor.IndefLengthForbidden,
	DupMapKey:       cbor.DupMapKeyEnforcedAPF,
}.DecMode()

// Backup serializes the full chain and stores it under name. The store
// publishes atomically, so an I/O failure never corrupts or discards a
// prior successful backup.
func (s *Service) Backup(name string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := chain.Encode(s.chain)
	if err != nil {
		return err
	}

	packed, err := storage.Compress(data, s.scheme)
	if err != nil {
		return err
	}

	blob, err := cbor.Marshal(backupEnvelope{
		Version: BackupFormatVersion,
		Scheme:  s.scheme,
		Chain:   packed,
	})
	if err != nil {
		return fmt.Errorf("vault: encode backup envelope: %w", err)
	}

	if err := s.store.Put(name, blob); err != nil {
		return err
	}

	s.log.Info().Str("backup", name).Int("blocks", s.chain.Len()).Int("bytes", len(blob)).Msg("backup written")
	return nil
}

// LoadBackup reads the backup stored under name, deserializes it and
// runs full validation before installing it as the live chain. Any
// failure aborts with the current in-memory chain untouched.
func (s *Service) LoadBackup(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := s.store.Get(name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrBackupNotFound, name)
		}
		return err
	}

	var env backupEnvelope
	if err := envDecMode.Unmarshal(blob, &env); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptBackup, err)
	}
	if env.Version != BackupFormatVersion {
		return fmt.Errorf("%w: unsupported envelope version %d", ErrCorruptBackup, env.Version)
	}

	data, err := storage.Decompress(env.Chain, env.Scheme)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptBackup, err)
	}

	loaded, err := chain.Decode(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptBackup, err)
	}

	if err := loaded.ValidateFull(); err != nil {
		// Keep the IntegrityError in the wrap chain so callers can
		// still extract the failing block index.
		return fmt.Errorf("%w: %w", ErrCorruptBackup, err)
	}

	s.chain = loaded
	s.log.Info().Str("backup", name).Int("blocks", loaded.Len()).Msg("backup loaded")
	return nil
}

// ListBackups enumerates the names of all stored backups.
func (s *Service) ListBackups() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.List()
}

package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DisDoh/chainvault-go/config"
	"github.com/DisDoh/chainvault-go/storage"
)

func configForTest(dataDir string) config.Config {
	cfg := config.DefaultConfig(dataDir)
	cfg.Compression = "none"
	return cfg
}

// populate builds a small multi-user state: alice owns a.txt and
// secret.txt, bob owns b.txt, bob is granted secret.txt.
func populate(t *testing.T, s *Service) {
	t.Helper()
	require.NoError(t, s.Register("alice", "pw-a"))
	require.NoError(t, s.Register("bob", "pw-b"))
	alice := login(t, s, "alice", "pw-a")
	bob := login(t, s, "bob", "pw-b")
	require.NoError(t, s.AddFile(alice, "a.txt", []byte("alpha")))
	require.NoError(t, s.AddFile(alice, "secret.txt", []byte("classified")))
	require.NoError(t, s.AddFile(bob, "b.txt", []byte("bravo")))
	require.NoError(t, s.GrantPermission(alice, "secret.txt", "bob"))
}

func TestBackupLoad_RoundTrip(t *testing.T) {
	for _, compression := range []string{"none", "gzip", "lzw"} {
		t.Run(compression, func(t *testing.T) {
			cfg := config.DefaultConfig(t.TempDir())
			cfg.Compression = compression
			s, err := Open(cfg, WithClock(testClock()))
			require.NoError(t, err)
			defer s.Close()

			populate(t, s)
			wantLen := s.ChainLen()

			require.NoError(t, s.Backup("b1"))

			// Diverge, then restore.
			alice := login(t, s, "alice", "pw-a")
			require.NoError(t, s.AddFile(alice, "later.txt", []byte("x")))
			require.NoError(t, s.LoadBackup("b1"))

			assert.Equal(t, wantLen, s.ChainLen())
			assert.NoError(t, s.VerifyIntegrity())

			// Full content survives: users, files, permissions.
			alice = login(t, s, "alice", "pw-a")
			bob := login(t, s, "bob", "pw-b")

			got, err := s.GetFile(bob, "secret.txt")
			require.NoError(t, err)
			assert.Equal(t, []byte("classified"), got)

			names, err := s.GetAll(alice)
			require.NoError(t, err)
			assert.Equal(t, []string{"a.txt", "secret.txt"}, names)

			_, err = s.GetFile(alice, "later.txt")
			assert.ErrorIs(t, err, ErrFileNotFound, "post-backup state replaced wholesale")
		})
	}
}

func TestLoadBackup_Missing(t *testing.T) {
	s := newTestService(t)
	require.NoError(t, s.Register("alice", "pw"))
	before := s.ChainLen()

	err := s.LoadBackup("never-written")
	assert.ErrorIs(t, err, ErrBackupNotFound)
	assert.Equal(t, before, s.ChainLen(), "failed load leaves the chain untouched")
	assert.NoError(t, s.VerifyIntegrity())
}

func TestLoadBackup_TamperedBlobRejected(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	s, err := New(store, WithClock(testClock()))
	require.NoError(t, err)

	populate(t, s)
	require.NoError(t, s.Backup("b1"))
	before := s.ChainLen()

	path := filepath.Join(dir, "b1"+storage.BackupExt)
	blob, err := os.ReadFile(path)
	require.NoError(t, err)

	// Flip one byte at several positions across the blob; the load must
	// fail every time and never replace the good chain with a bad one.
	for _, pos := range []int{8, len(blob) / 3, len(blob) / 2, len(blob) - 16} {
		tampered := append([]byte(nil), blob...)
		tampered[pos] ^= 0x01
		require.NoError(t, os.WriteFile(path, tampered, 0600))

		err := s.LoadBackup("b1")
		assert.ErrorIs(t, err, ErrCorruptBackup, "tamper at byte %d", pos)
		assert.Equal(t, before, s.ChainLen())
		assert.NoError(t, s.VerifyIntegrity())
	}

	// Restore the original blob; it still loads.
	require.NoError(t, os.WriteFile(path, blob, 0600))
	require.NoError(t, s.LoadBackup("b1"))
}

func TestBackup_InvalidName(t *testing.T) {
	s := newTestService(t)
	assert.ErrorIs(t, s.Backup("../escape"), storage.ErrInvalidName)
	assert.ErrorIs(t, s.LoadBackup(""), storage.ErrInvalidName)
}

func TestOpen_BoltBackend(t *testing.T) {
	cfg := configForTest(t.TempDir())
	cfg.Backend = config.BackendBolt
	s, err := Open(cfg, WithClock(testClock()))
	require.NoError(t, err)
	defer s.Close()

	populate(t, s)
	require.NoError(t, s.Backup("b1"))
	require.NoError(t, s.LoadBackup("b1"))
	assert.NoError(t, s.VerifyIntegrity())

	names, err := s.ListBackups()
	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, names)
}

// End-to-end scenario from the design notes: register, empty get_all,
// add, backup, load, get_all sees the file.
func TestScenario_RegisterAddBackupLoad(t *testing.T) {
	s := newTestService(t)

	require.NoError(t, s.Register("alice", "pw"))
	alice := login(t, s, "alice", "pw")

	names, err := s.GetAll(alice)
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, s.AddFile(alice, "a.txt", []byte("hello")))
	require.NoError(t, s.Backup("b1"))
	require.NoError(t, s.LoadBackup("b1"))

	names, err = s.GetAll(alice)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, names)
}

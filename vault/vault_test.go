package vault

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DisDoh/chainvault-go/auth"
	"github.com/DisDoh/chainvault-go/storage"
)

// testClock hands out strictly increasing instants for reproducible,
// distinct block timestamps.
func testClock() func() time.Time {
	var n int64
	return func() time.Time {
		return time.Unix(1700000000, atomic.AddInt64(&n, 1))
	}
}

func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	opts = append([]Option{WithClock(testClock())}, opts...)
	s, err := New(store, opts...)
	require.NoError(t, err)
	return s
}

func login(t *testing.T, s *Service, user, password string) *auth.Session {
	t.Helper()
	sess, err := s.Login(user, password)
	require.NoError(t, err)
	return sess
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestService(t)

	require.NoError(t, s.Register("alice", "pw1"))
	assert.Equal(t, 2, s.ChainLen(), "register appends a block")

	err := s.Register("alice", "pw2")
	assert.ErrorIs(t, err, ErrDuplicateUser)
	assert.Equal(t, 2, s.ChainLen(), "failed register must not mutate")

	_, err = s.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrAuthentication)
	_, err = s.Login("nobody", "pw1")
	assert.ErrorIs(t, err, ErrAuthentication)

	sess := login(t, s, "alice", "pw1")
	assert.Equal(t, "alice", sess.Username)
	assert.Equal(t, 2, s.ChainLen(), "login never mutates the chain")
}

func TestAddFile(t *testing.T) {
	s := newTestService(t)
	require.NoError(t, s.Register("alice", "pw"))
	sess := login(t, s, "alice", "pw")

	require.NoError(t, s.AddFile(sess, "a.txt", []byte("hello")))
	assert.Equal(t, 3, s.ChainLen())

	err := s.AddFile(sess, "a.txt", []byte("again"))
	assert.ErrorIs(t, err, ErrDuplicateFile)

	err = s.AddFile(sess, "", []byte("x"))
	assert.ErrorIs(t, err, ErrInvalidFileName)

	err = s.AddFile(nil, "b.txt", []byte("x"))
	assert.ErrorIs(t, err, ErrNilSession)
}

func TestAddFile_ContentIsCopied(t *testing.T) {
	s := newTestService(t)
	require.NoError(t, s.Register("alice", "pw"))
	sess := login(t, s, "alice", "pw")

	content := []byte("original")
	require.NoError(t, s.AddFile(sess, "a.txt", content))
	content[0] = 'X'

	got, err := s.GetFile(sess, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)
}

func TestGetFile_Permissions(t *testing.T) {
	s := newTestService(t)
	require.NoError(t, s.Register("alice", "pw"))
	require.NoError(t, s.Register("bob", "pw"))
	alice := login(t, s, "alice", "pw")
	bob := login(t, s, "bob", "pw")

	secret := []byte{0x00, 0x01, 0xff, 'd', 'a', 't', 'a'}
	require.NoError(t, s.AddFile(alice, "secret.txt", secret))

	_, err := s.GetFile(bob, "secret.txt")
	assert.ErrorIs(t, err, ErrPermission)

	_, err = s.GetFile(bob, "missing.txt")
	assert.ErrorIs(t, err, ErrFileNotFound)

	require.NoError(t, s.GrantPermission(alice, "secret.txt", "bob"))

	got, err := s.GetFile(bob, "secret.txt")
	require.NoError(t, err)
	assert.Equal(t, secret, got, "grantee reads the exact original bytes")

	got, err = s.GetFile(alice, "secret.txt")
	require.NoError(t, err)
	assert.Equal(t, secret, got, "owner always reads")
}

func TestGrantPermission_Errors(t *testing.T) {
	s := newTestService(t)
	require.NoError(t, s.Register("alice", "pw"))
	require.NoError(t, s.Register("bob", "pw"))
	alice := login(t, s, "alice", "pw")
	bob := login(t, s, "bob", "pw")

	require.NoError(t, s.AddFile(alice, "a.txt", []byte("x")))

	assert.ErrorIs(t, s.GrantPermission(alice, "missing.txt", "bob"), ErrFileNotFound)
	assert.ErrorIs(t, s.GrantPermission(bob, "a.txt", "bob"), ErrNotOwner)
	assert.ErrorIs(t, s.GrantPermission(alice, "a.txt", "carol"), ErrUserNotFound)
}

func TestGrantPermission_NoOpGrants(t *testing.T) {
	s := newTestService(t)
	require.NoError(t, s.Register("alice", "pw"))
	require.NoError(t, s.Register("bob", "pw"))
	alice := login(t, s, "alice", "pw")

	require.NoError(t, s.AddFile(alice, "a.txt", []byte("x")))
	before := s.ChainLen()

	// Owner is implicitly authorized; nothing to record.
	require.NoError(t, s.GrantPermission(alice, "a.txt", "alice"))
	assert.Equal(t, before, s.ChainLen())

	require.NoError(t, s.GrantPermission(alice, "a.txt", "bob"))
	assert.Equal(t, before+1, s.ChainLen())

	// Repeat grant appends nothing.
	require.NoError(t, s.GrantPermission(alice, "a.txt", "bob"))
	assert.Equal(t, before+1, s.ChainLen())
}

func TestGetAll(t *testing.T) {
	s := newTestService(t)
	require.NoError(t, s.Register("alice", "pw"))
	require.NoError(t, s.Register("bob", "pw"))
	alice := login(t, s, "alice", "pw")
	bob := login(t, s, "bob", "pw")

	names, err := s.GetAll(alice)
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, s.AddFile(alice, "b.txt", []byte("b")))
	require.NoError(t, s.AddFile(alice, "a.txt", []byte("a")))
	require.NoError(t, s.AddFile(bob, "c.txt", []byte("c")))

	names, err = s.GetAll(alice)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, names, "sorted, owned only")

	require.NoError(t, s.GrantPermission(bob, "c.txt", "alice"))
	names, err = s.GetAll(alice)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, names)
}

func TestSearch(t *testing.T) {
	s := newTestService(t)

	assert.Empty(t, s.Search([]string{"secret"}), "empty state")

	require.NoError(t, s.Register("alice", "pw"))
	alice := login(t, s, "alice", "pw")
	require.NoError(t, s.AddFile(alice, "secret.txt", []byte("classified payload")))
	require.NoError(t, s.AddFile(alice, "notes.md", []byte("plain text")))
	require.NoError(t, s.AddFile(alice, "journal.md", []byte("my SECRET diary")))

	// Name match and content match, case-insensitive, insertion order.
	assert.Equal(t, []string{"secret.txt", "journal.md"}, s.Search([]string{"SeCrEt"}))
	assert.Equal(t, []string{"notes.md"}, s.Search([]string{"plain"}))
	assert.Equal(t, []string{"secret.txt", "notes.md", "journal.md"}, s.Search([]string{"txt", "md"}))
	assert.Empty(t, s.Search([]string{"nothing matches this"}))
	assert.Empty(t, s.Search(nil))
	assert.Empty(t, s.Search([]string{""}), "blank keywords are ignored")

	// Stable across repeated calls on unchanged state.
	assert.Equal(t, s.Search([]string{"secret"}), s.Search([]string{"secret"}))
}

func TestVerifyIntegrity(t *testing.T) {
	s := newTestService(t)
	require.NoError(t, s.Register("alice", "pw"))
	assert.NoError(t, s.VerifyIntegrity())
}

func TestSessionAgainstReplacedState(t *testing.T) {
	s := newTestService(t)
	require.NoError(t, s.Register("alice", "pw"))
	alice := login(t, s, "alice", "pw")
	require.NoError(t, s.Backup("empty-ish"))

	require.NoError(t, s.Register("bob", "pw"))
	bob := login(t, s, "bob", "pw")

	// Roll back to a state where bob never existed.
	require.NoError(t, s.LoadBackup("empty-ish"))

	err := s.AddFile(bob, "b.txt", []byte("x"))
	assert.ErrorIs(t, err, ErrAuthentication, "stale session cannot mutate")

	// alice's session is still backed by the restored state.
	require.NoError(t, s.AddFile(alice, "a.txt", []byte("x")))
}

func TestOpen_FromConfig(t *testing.T) {
	cfg := configForTest(t.TempDir())
	s, err := Open(cfg, WithClock(testClock()))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Register("alice", "pw"))
	require.NoError(t, s.Backup("b1"))

	names, err := s.ListBackups()
	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, names)
}

package vault

import "errors"

var (
	// ErrDuplicateUser indicates the username is already registered.
	ErrDuplicateUser = errors.New("vault: user already exists")

	// ErrAuthentication indicates an unknown username or wrong password.
	// Deliberately the same error for both cases.
	ErrAuthentication = errors.New("vault: invalid username or password")

	// ErrNilSession indicates an operation that requires a logged-in session.
	ErrNilSession = errors.New("vault: session is required")

	// ErrUserNotFound indicates the named user does not exist in the
	// current snapshot.
	ErrUserNotFound = errors.New("vault: user not found")

	// ErrFileNotFound indicates the filename is absent from the latest snapshot.
	ErrFileNotFound = errors.New("vault: file not found")

	// ErrDuplicateFile indicates the filename is already taken.
	ErrDuplicateFile = errors.New("vault: file already exists")

	// ErrInvalidFileName indicates an empty filename.
	ErrInvalidFileName = errors.New("vault: invalid file name")

	// ErrPermission indicates the caller is neither the owner nor a grantee.
	ErrPermission = errors.New("vault: access not granted")

	// ErrNotOwner indicates only the file's owner may perform the operation.
	ErrNotOwner = errors.New("vault: caller does not own the file")

	// ErrBackupNotFound indicates no backup exists under the given name.
	ErrBackupNotFound = errors.New("vault: backup not found")

	// ErrCorruptBackup indicates a backup that failed deserialization or
	// full chain validation on load.
	ErrCorruptBackup = errors.New("vault: backup is corrupt")
)

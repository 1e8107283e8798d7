package auth

import "errors"

var (
	// ErrEmptyUsername indicates a blank username.
	ErrEmptyUsername = errors.New("auth: username is empty")

	// ErrEmptyPassword indicates a blank password.
	ErrEmptyPassword = errors.New("auth: password is empty")

	// ErrBadCredential indicates a credential with a missing salt or hash.
	ErrBadCredential = errors.New("auth: malformed credential")
)

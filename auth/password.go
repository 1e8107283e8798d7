// Package auth implements salted one-way password hashing and the
// session values handed out on login.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/DisDoh/chainvault-go/chain"
)

// Argon2id parameters for password hashing.
const (
	argon2Time        = 3
	argon2Memory      = 64 * 1024 // 64 MB
	argon2Parallelism = 4
	argon2KeyLen      = 32

	saltLen = 16
)

// NewCredential derives a salted one-way hash of password with a fresh
// random salt. The plaintext is never retained.
func NewCredential(password string) (chain.Credential, error) {
	if password == "" {
		return chain.Credential{}, ErrEmptyPassword
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return chain.Credential{}, fmt.Errorf("auth: generate salt: %w", err)
	}

	return chain.Credential{
		Salt: salt,
		Hash: deriveHash(password, salt),
	}, nil
}

// VerifyPassword reports whether password matches the stored credential.
func VerifyPassword(cred chain.Credential, password string) bool {
	if len(cred.Salt) == 0 || len(cred.Hash) == 0 || password == "" {
		return false
	}
	got := deriveHash(password, cred.Salt)
	return subtle.ConstantTimeCompare(got, cred.Hash) == 1
}

func deriveHash(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		argon2Time,
		argon2Memory,
		argon2Parallelism,
		argon2KeyLen,
	)
}

// Package cryptox derives password verifiers for the local admin unlock.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"

	"github.com/dmitrijs2005/signon/internal/common"
)

// SaltSize is the salt length used by NewVerifier.
const SaltSize = 16

// DeriveKey stretches password with argon2id (1 pass, 64 MiB, 4 lanes, 32 bytes).
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key so the key itself is never kept.
// key is wiped afterwards.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	common.WipeByteArray(key)
	return hash[:]
}

// Verify reports whether password derives to verifier under salt.
// The comparison is constant-time.
func Verify(password, salt, verifier []byte) bool {
	candidate := MakeVerifier(DeriveKey(password, salt))
	return subtle.ConstantTimeCompare(candidate, verifier) == 1
}

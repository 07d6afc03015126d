package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashPassword returns the upper-case hex SHA-256 digest of the password.
// The digest is deterministic on purpose: authentication looks a credential
// up by (login, digest) equality, so the same input must always produce the
// same output. Plaintext passwords are never stored.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const idByteLength = 20

// GenerateID returns a fresh identifier: 20 cryptographically random bytes
// encoded as unpadded base64url. The same generator mints entity IDs and
// session tokens; at this length collisions are negligible without any
// coordination between callers.
func GenerateID() (string, error) {
	base := make([]byte, idByteLength)
	if _, err := rand.Read(base); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(base), nil
}

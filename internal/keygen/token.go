// Package keygen generates magic-link tokens and session codes.
package keygen

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
)

// TokenBytes is the entropy of a raw magic-link token.
const TokenBytes = 32

// GenerateToken returns a hex-encoded random token.
func GenerateToken() (string, error) {
	return generateToken(rand.Reader)
}

func generateToken(r io.Reader) (string, error) {
	buf := make([]byte, TokenBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashToken returns the hex SHA-256 digest stored in place of a raw token.
func HashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}

// Matches reports whether raw hashes to storedHash, in constant time.
func Matches(raw, storedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashToken(raw)), []byte(storedHash)) == 1
}

// HashPrefix returns a short, log-safe fingerprint of a raw token.
func HashPrefix(raw string) string {
	return HashToken(raw)[:12]
}

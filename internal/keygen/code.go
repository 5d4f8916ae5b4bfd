package keygen

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
)

// SessionCodeAlphabet omits characters that are easy to misread: 0, O, 1, I and l.
const SessionCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// SessionCodeLength is the length of a session code.
const SessionCodeLength = 8

// GenerateSessionCode returns a random code drawn uniformly from SessionCodeAlphabet.
func GenerateSessionCode() (string, error) {
	return generateCode(rand.Reader, SessionCodeAlphabet, SessionCodeLength)
}

func generateCode(r io.Reader, alphabet string, length int) (string, error) {
	n := len(alphabet)
	// largest multiple of n that fits in a byte; bytes above it are discarded to avoid bias
	limit := 256 - 256%n

	var b strings.Builder
	b.Grow(length)
	buf := make([]byte, length)
	for b.Len() < length {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, v := range buf {
			if int(v) >= limit {
				continue
			}
			b.WriteByte(alphabet[int(v)%n])
			if b.Len() == length {
				break
			}
		}
	}
	return b.String(), nil
}

// IsSessionCode reports whether s has the shape of a generated session code.
func IsSessionCode(s string) bool {
	if len(s) != SessionCodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(SessionCodeAlphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}

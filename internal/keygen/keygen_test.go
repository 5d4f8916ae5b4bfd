package keygen

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	a, err := GenerateToken()
	require.NoError(t, err)
	b, err := GenerateToken()
	require.NoError(t, err)

	assert.Len(t, a, TokenBytes*2)
	assert.NotEqual(t, a, b)
}

func TestGenerateToken_ReaderError(t *testing.T) {
	_, err := generateToken(bytes.NewReader(nil))
	assert.Error(t, err)
}

func TestHashToken(t *testing.T) {
	raw := "abc"
	h := HashToken(raw)

	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", h)
	assert.Equal(t, h, HashToken(raw))
	assert.NotEqual(t, h, HashToken("abd"))
	assert.True(t, Matches(raw, h))
	assert.False(t, Matches("abd", h))
	assert.Len(t, HashPrefix(raw), 12)
}

func TestGenerateSessionCode(t *testing.T) {
	for i := 0; i < 500; i++ {
		code, err := GenerateSessionCode()
		require.NoError(t, err)
		require.Len(t, code, SessionCodeLength)
		require.False(t, strings.ContainsAny(code, "0O1Il"), code)
		require.True(t, IsSessionCode(code), code)
	}
}

func TestGenerateCode_SkipsBiasedBytes(t *testing.T) {
	// with a 3-char alphabet byte 255 is rejected
	src := bytes.NewReader([]byte{255, 0, 1, 2, 255, 3})
	code, err := generateCode(src, "abc", 3)
	require.NoError(t, err)
	assert.Equal(t, "abc", code)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerateCode_ReaderError(t *testing.T) {
	_, err := generateCode(failingReader{}, SessionCodeAlphabet, SessionCodeLength)
	assert.Error(t, err)
}

func TestIsSessionCode(t *testing.T) {
	assert.True(t, IsSessionCode("ABCDEFGH"))
	assert.False(t, IsSessionCode("ABCDEFG"))
	assert.False(t, IsSessionCode("ABCDEFG0"))
	assert.False(t, IsSessionCode("abcdefgh"))
}

package apperrors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("upload: %w", NewErrForbidden())

	apiErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, apiErr.HTTPCode)
	assert.Equal(t, "Forbidden.", apiErr.Error())

	_, ok = As(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		code int
	}{
		{"validation", NewErrValidation("bad"), http.StatusBadRequest},
		{"forbidden", NewErrForbidden(), http.StatusForbidden},
		{"session not found", NewErrSessionNotFound(), http.StatusNotFound},
		{"file not found", NewErrFileNotFound(), http.StatusNotFound},
		{"invalid token", NewErrInvalidOrExpiredToken(), http.StatusBadRequest},
		{"missing auth", NewErrMissingAuthorizationToken(), http.StatusUnauthorized},
		{"invalid auth", NewErrInvalidAuthorizationToken(), http.StatusUnauthorized},
		{"too large", NewErrRequestTooLarge(), http.StatusRequestEntityTooLarge},
		{"internal", NewErrInternalServerError(), http.StatusInternalServerError},
		{"storage", NewErrStorage("Storage service is unreachable."), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.HTTPCode)
			assert.NotEmpty(t, tt.err.Message)
		})
	}

	assert.Equal(t, "bad", NewErrValidation("bad").Message)
}

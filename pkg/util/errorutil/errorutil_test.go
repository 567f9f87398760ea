package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
	assert.NoError(t, MapError(nil))

	wrapped := fmt.Errorf("fetch: %w", NewUpstreamUnavailable("Failed to fetch users", nil))
	de := ToDomainError(wrapped)
	require.NotNil(t, de)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", de.Code)
	assert.Equal(t, http.StatusBadGateway, de.HTTPStatus)
	assert.Equal(t, "Failed to fetch users", de.Message)

	plain := errors.New("boom")
	de = ToDomainError(plain)
	assert.Equal(t, "INTERNAL_ERROR", de.Code)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.ErrorIs(t, de, plain)
}

func TestFromStatus(t *testing.T) {
	tests := []struct {
		status int
		code   string
	}{
		{http.StatusNotFound, "NOT_FOUND"},
		{http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{http.StatusUnauthorized, "UNAUTHORIZED"},
		{http.StatusForbidden, "FORBIDDEN"},
		{http.StatusRequestTimeout, "TIMEOUT"},
		{http.StatusUnprocessableEntity, "BAD_REQUEST"},
		{http.StatusServiceUnavailable, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			de := FromStatus(tt.status, "")
			assert.Equal(t, tt.code, de.Code)
			assert.Equal(t, tt.status, de.HTTPStatus)
			assert.Equal(t, http.StatusText(tt.status), de.Message)
		})
	}
}

func TestConstructors(t *testing.T) {
	de := ToDomainError(NewValidationError("invalid user id", map[string]any{"id": "x"}))
	assert.Equal(t, "VALIDATION_FAILED", de.Code)
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)

	de = ToDomainError(NewNotFound("user", nil))
	assert.Equal(t, "user not found", de.Message)
	assert.NotNil(t, de.Details)

	de = ToDomainError(NewUnauthorized("Invalid credentials"))
	assert.Equal(t, http.StatusUnauthorized, de.HTTPStatus)
}

package apiclient

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTemporary(t *testing.T) {
	tests := []struct {
		name      string
		err       *APIError
		temporary bool
	}{
		{"internal server error", NewAPIError("boom", 500, "", true, nil), true},
		{"bad gateway", NewAPIError("boom", 502, "", true, nil), true},
		{"service unavailable", NewAPIError("boom", 503, "", true, nil), true},
		{"request timeout", NewAPIError("boom", 408, "", false, nil), true},
		{"network error", NewAPIError("boom", 0, "NETWORK_ERROR", true, nil), true},
		{"bad request", NewAPIError("boom", 400, "", false, nil), false},
		{"unauthorized", NewAPIError("boom", 401, "", false, nil), false},
		{"forbidden", NewAPIError("boom", 403, "", false, nil), false},
		{"not found", NewAPIError("boom", 404, "", false, nil), false},
		{"conflict", NewAPIError("boom", 409, "", false, nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.temporary, tt.err.IsTemporary())
			assert.Equal(t, tt.temporary, IsTemporaryError(tt.err))
		})
	}
}

func TestIsAuthError_DerivedFromStatus(t *testing.T) {
	// IsAuthErrorはステータスのみから導出される
	for status := 400; status < 600; status++ {
		err := NewAPIError("boom", status, "SOME_CODE", true, map[string]string{"field": "bad"})
		want := status == 401 || status == 403
		assert.Equal(t, want, err.IsAuthError, "status %d", status)
	}
}

func TestIsTemporaryError_NonAPIError(t *testing.T) {
	assert.False(t, IsTemporaryError(errors.New("plain error")))
	assert.False(t, IsTemporaryError(nil))
}

func TestHasFieldErrors(t *testing.T) {
	withFields := NewAPIError("boom", 400, "", false, map[string]string{"username": "taken"})
	assert.True(t, withFields.HasFieldErrors())
	assert.Equal(t, "taken", withFields.FieldError("username"))
	assert.True(t, IsValidationError(withFields))

	withoutFields := NewAPIError("boom", 400, "", false, nil)
	assert.False(t, withoutFields.HasFieldErrors())
	assert.False(t, IsValidationError(withoutFields))

	emptyFields := NewAPIError("boom", 400, "", false, map[string]string{})
	assert.False(t, emptyFields.HasFieldErrors())
}

func TestExtractFieldErrors(t *testing.T) {
	err := NewAPIError("boom", 409, "", false, map[string]string{"email": "duplicate"})
	assert.Equal(t, map[string]string{"email": "duplicate"}, ExtractFieldErrors(err))

	assert.Empty(t, ExtractFieldErrors(errors.New("plain error")))
	assert.Empty(t, ExtractFieldErrors(nil))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "boom", ErrorMessage(NewAPIError("boom", 500, "", true, nil), "default"))
	assert.Equal(t, "default", ErrorMessage(nil, "default"))
}

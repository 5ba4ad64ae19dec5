package tokenmint_test

import (
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	tokenmint "github.com/goliatone/go-tokenmint"
	"github.com/stretchr/testify/assert"
)

func TestErrorCategories(t *testing.T) {
	t.Run("ErrCountOutOfRange", func(t *testing.T) {
		assert.Equal(t, goerrors.CategoryValidation, tokenmint.ErrCountOutOfRange.Category)
		assert.Equal(t, tokenmint.TextCodeCountOutOfRange, tokenmint.ErrCountOutOfRange.TextCode)
	})

	t.Run("ErrTTLInvalid", func(t *testing.T) {
		assert.Equal(t, goerrors.CategoryValidation, tokenmint.ErrTTLInvalid.Category)
		assert.Equal(t, tokenmint.TextCodeTTLInvalid, tokenmint.ErrTTLInvalid.TextCode)
	})

	t.Run("ErrTokenExpired", func(t *testing.T) {
		assert.Equal(t, goerrors.CategoryAuth, tokenmint.ErrTokenExpired.Category)
		assert.Equal(t, tokenmint.TextCodeTokenExpired, tokenmint.ErrTokenExpired.TextCode)
	})

	t.Run("ErrNoVerificationKey", func(t *testing.T) {
		assert.Equal(t, goerrors.CategoryAuth, tokenmint.ErrNoVerificationKey.Category)
		assert.Equal(t, tokenmint.TextCodeVerifyWithoutKey, tokenmint.ErrNoVerificationKey.TextCode)
	})
}

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "count out of range",
			err:      tokenmint.ErrCountOutOfRange,
			expected: true,
		},
		{
			name:     "invalid TTL",
			err:      tokenmint.ErrTTLInvalid,
			expected: true,
		},
		{
			name:     "token error",
			err:      tokenmint.ErrTokenExpired,
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("something else"),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenmint.IsValidationError(tt.err))
		})
	}
}

func TestIsCryptoError(t *testing.T) {
	_, genErr := tokenmint.GenerateKey(tokenmint.Algorithm("bogus"))

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "key generation failure",
			err:      genErr,
			expected: true,
		},
		{
			name:     "validation error",
			err:      tokenmint.ErrCountOutOfRange,
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenmint.IsCryptoError(tt.err))
		})
	}
}

func TestIsTokenError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "expired token",
			err:      tokenmint.ErrTokenExpired,
			expected: true,
		},
		{
			name:     "malformed token",
			err:      tokenmint.ErrTokenMalformed,
			expected: true,
		},
		{
			name:     "missing verification key",
			err:      tokenmint.ErrNoVerificationKey,
			expected: true,
		},
		{
			name:     "validation error",
			err:      tokenmint.ErrTTLInvalid,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenmint.IsTokenError(tt.err))
		})
	}
}

func TestIsTokenExpiredError(t *testing.T) {
	assert.True(t, tokenmint.IsTokenExpiredError(tokenmint.ErrTokenExpired))
	assert.False(t, tokenmint.IsTokenExpiredError(tokenmint.ErrTokenMalformed))
	assert.False(t, tokenmint.IsTokenExpiredError(errors.New("token is expired")))
	assert.False(t, tokenmint.IsTokenExpiredError(nil))
}

func TestIsMalformedError(t *testing.T) {
	assert.True(t, tokenmint.IsMalformedError(tokenmint.ErrTokenMalformed))
	assert.False(t, tokenmint.IsMalformedError(tokenmint.ErrTokenExpired))
	assert.False(t, tokenmint.IsMalformedError(nil))
}

package tokenmint

import "github.com/goliatone/go-errors"

const (
	TextCodeCountOutOfRange  = "token_count_out_of_range"
	TextCodeTTLInvalid       = "token_ttl_invalid"
	TextCodeKeyGenFailed     = "key_generation_failed"
	TextCodeKeyMaterial      = "key_material_invalid"
	TextCodeKeyEncoding      = "key_encoding_failed"
	TextCodeKeyMismatch      = "key_algorithm_mismatch"
	TextCodeSignFailed       = "token_sign_failed"
	TextCodeTokenExpired     = "token_expired"
	TextCodeTokenMalformed   = "token_malformed"
	TextCodeVerifyWithoutKey = "token_verify_no_key"
)

// ErrCountOutOfRange is returned when the batch count is outside [1,10].
var ErrCountOutOfRange = errors.New("count must be between 1 and 10", errors.CategoryValidation).
	WithTextCode(TextCodeCountOutOfRange).
	WithCode(errors.CodeBadRequest)

// ErrTTLInvalid is returned when the expiry duration is not strictly positive.
var ErrTTLInvalid = errors.New("expires_in must be positive", errors.CategoryValidation).
	WithTextCode(TextCodeTTLInvalid).
	WithCode(errors.CodeBadRequest)

// ErrNoVerificationKey is returned when Verify is called on a builder
// that has no key configured.
var ErrNoVerificationKey = errors.New("no key provided for verification", errors.CategoryAuth).
	WithTextCode(TextCodeVerifyWithoutKey).
	WithCode(errors.CodeUnauthorized)

// ErrTokenExpired is returned when a token's exp claim has elapsed.
var ErrTokenExpired = errors.New("token is expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed is returned when a token cannot be decoded or its
// signature does not check out against the configured key.
var ErrTokenMalformed = errors.New("token is malformed or has an invalid signature", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

func newCryptoError(err error, textCode, msg string) *errors.Error {
	return errors.Wrap(err, errors.CategoryInternal, msg).
		WithTextCode(textCode).
		WithCode(errors.CodeInternal)
}

func newTokenError(err error, textCode, msg string) *errors.Error {
	return errors.Wrap(err, errors.CategoryAuth, msg).
		WithTextCode(textCode).
		WithCode(errors.CodeUnauthorized)
}

// IsValidationError reports whether err is a caller input fault
// (out-of-range count, non-positive TTL).
func IsValidationError(err error) bool {
	return hasCategory(err, errors.CategoryValidation)
}

// IsCryptoError reports whether err stems from key generation or key
// material encoding.
func IsCryptoError(err error) bool {
	return hasCategory(err, errors.CategoryInternal)
}

// IsTokenError reports whether err stems from token encoding,
// decoding, signature, or claim verification.
func IsTokenError(err error) bool {
	return hasCategory(err, errors.CategoryAuth)
}

// IsTokenExpiredError reports whether err indicates an elapsed token.
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	var richErr *errors.Error
	if errors.As(err, &richErr) {
		return richErr.TextCode == TextCodeTokenExpired
	}
	return false
}

// IsMalformedError reports whether err indicates a token that could
// not be decoded or failed its signature check.
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	var richErr *errors.Error
	if errors.As(err, &richErr) {
		return richErr.TextCode == TextCodeTokenMalformed
	}
	return false
}

func hasCategory(err error, category errors.Category) bool {
	if err == nil {
		return false
	}
	var richErr *errors.Error
	if errors.As(err, &richErr) {
		return richErr.Category == category
	}
	return false
}

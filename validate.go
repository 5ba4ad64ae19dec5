package tokenmint

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// Batch and expiry bounds enforced by the builder.
const (
	MinCount = 1
	MaxCount = 10

	// DefaultExpiresIn is the default token lifetime in seconds.
	DefaultExpiresIn int64 = 3600
)

func checkCount(count int) error {
	if err := validation.Validate(count,
		validation.Min(MinCount),
		validation.Max(MaxCount),
	); err != nil {
		return ErrCountOutOfRange
	}
	return nil
}

func checkExpiresIn(seconds int64) error {
	if err := validation.Validate(seconds, validation.Min(int64(1))); err != nil {
		return ErrTTLInvalid
	}
	return nil
}

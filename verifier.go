package tokenmint

// Verifier checks a token string and extracts claims without tying
// callers to a specific builder configuration.
type Verifier interface {
	Verify(tokenString string) (*Claims, error)
}

// Builder satisfies Verifier when it carries a key.
var _ Verifier = Builder{}

// VerifierFunc adapts a function into a Verifier.
type VerifierFunc func(tokenString string) (*Claims, error)

// Verify satisfies the Verifier interface.
func (f VerifierFunc) Verify(tokenString string) (*Claims, error) {
	if f == nil {
		return nil, ErrTokenMalformed
	}
	return f(tokenString)
}

// MultiVerifier tries verifiers in order until one succeeds, which
// covers checking a token against several candidate keys during
// rotation. It treats malformed/bad-signature results as "try next"
// and returns the last such error if every verifier fails; any other
// failure (expired, missing key) is returned immediately.
type MultiVerifier struct {
	verifiers []Verifier
}

// NewMultiVerifier filters nil verifiers and returns a composite.
func NewMultiVerifier(verifiers ...Verifier) *MultiVerifier {
	filtered := make([]Verifier, 0, len(verifiers))
	for _, v := range verifiers {
		if v != nil {
			filtered = append(filtered, v)
		}
	}
	return &MultiVerifier{verifiers: filtered}
}

// Verify satisfies the Verifier interface.
func (m *MultiVerifier) Verify(tokenString string) (*Claims, error) {
	var lastErr error
	for _, v := range m.verifiers {
		claims, err := v.Verify(tokenString)
		if err == nil {
			return claims, nil
		}
		if IsMalformedError(err) {
			lastErr = err
			continue
		}
		return nil, err
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrTokenMalformed
}

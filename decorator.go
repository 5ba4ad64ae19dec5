package tokenmint

// ClaimsDecorator can enrich extension claims before a token is signed.
// Implementations may only touch Extra; reserved claims are restored
// from builder state after decoration so token semantics stay stable.
type ClaimsDecorator interface {
	Decorate(claims *Claims) error
}

// ClaimsDecoratorFunc adapts a function into a ClaimsDecorator.
type ClaimsDecoratorFunc func(claims *Claims) error

// Decorate satisfies the ClaimsDecorator interface.
func (f ClaimsDecoratorFunc) Decorate(claims *Claims) error {
	if f == nil {
		return nil
	}
	return f(claims)
}

type noopClaimsDecorator struct{}

func (noopClaimsDecorator) Decorate(*Claims) error {
	return nil
}

func normalizeClaimsDecorator(d ClaimsDecorator) ClaimsDecorator {
	if d == nil {
		return noopClaimsDecorator{}
	}
	return d
}

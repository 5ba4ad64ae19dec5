package tokenmint

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/goliatone/go-errors"
)

// DefaultIssuer is the issuer claim applied when none is configured.
const DefaultIssuer = "go-tokenmint"

// Synthetic claim values populated when role or scope inclusion is
// enabled. They describe mock identities, not production role
// semantics.
var syntheticRoles = []string{"user", "admin"}

const syntheticScope = "read write"

// Builder accumulates token configuration and performs the one-shot
// mint and verify operations. Builder is a value: every setter returns
// an updated copy, so configurations can branch from a shared prefix
// without affecting each other, and Generate/Verify leave the receiver
// untouched and reusable.
type Builder struct {
	count        int
	algorithm    Algorithm
	expiresIn    int64
	includeRoles bool
	includeScope bool
	subject      string
	issuer       string
	key          Key
	extra        map[string]any
	decorator    ClaimsDecorator
	logger       Logger
}

// New returns a builder with the default configuration: one HS256 token
// expiring in DefaultExpiresIn seconds, no roles, no scope.
func New() Builder {
	return Builder{
		count:     1,
		algorithm: HS256,
		expiresIn: DefaultExpiresIn,
	}
}

// Count sets how many tokens Generate mints. Counts outside [1,10] fail
// with a validation error.
func (b Builder) Count(count int) (Builder, error) {
	if err := checkCount(count); err != nil {
		return b, err
	}
	b.count = count
	return b, nil
}

// Algorithm selects the signing algorithm.
func (b Builder) Algorithm(alg Algorithm) Builder {
	b.algorithm = alg
	return b
}

// ExpiresIn sets the token lifetime in seconds. Non-positive values
// fail with a validation error.
func (b Builder) ExpiresIn(seconds int64) (Builder, error) {
	if err := checkExpiresIn(seconds); err != nil {
		return b, err
	}
	b.expiresIn = seconds
	return b, nil
}

// IncludeRoles toggles the synthetic roles claim.
func (b Builder) IncludeRoles(include bool) Builder {
	b.includeRoles = include
	return b
}

// IncludeScope toggles the synthetic scope claim.
func (b Builder) IncludeScope(include bool) Builder {
	b.includeScope = include
	return b
}

// Subject fixes the sub claim. When unset, every minted token gets a
// freshly generated random subject.
func (b Builder) Subject(sub string) Builder {
	b.subject = sub
	return b
}

// Issuer fixes the iss claim. When unset, DefaultIssuer is used.
func (b Builder) Issuer(iss string) Builder {
	b.issuer = iss
	return b
}

// Key fixes the signing key for every token in the batch and enables
// Verify.
func (b Builder) Key(key Key) Builder {
	b.key = key
	return b
}

// AddClaim adds an extension claim to every minted token. The internal
// map is cloned, so builders branched before this call are unaffected.
// If name collides with a reserved claim, the reserved value wins.
func (b Builder) AddClaim(name string, value any) Builder {
	extra := make(map[string]any, len(b.extra)+1)
	for k, v := range b.extra {
		extra[k] = v
	}
	extra[name] = value
	b.extra = extra
	return b
}

// WithDecorator installs a hook that runs on each token's claims before
// signing.
func (b Builder) WithDecorator(d ClaimsDecorator) Builder {
	b.decorator = d
	return b
}

// WithLogger routes builder diagnostics to the given logger.
func (b Builder) WithLogger(logger Logger) Builder {
	b.logger = logger
	return b
}

// Generate mints exactly count tokens. Every token gets fresh
// issued-at/expiry timestamps and a fresh unique jti.
//
// When no key is configured, each token in the batch is signed with its
// own independently generated key. Tokens from such a batch cannot be
// verified afterwards, not even against each other; configure an
// explicit key when verification matters.
func (b Builder) Generate() ([]string, error) {
	if err := checkCount(b.count); err != nil {
		return nil, err
	}

	tokens := make([]string, 0, b.count)
	for i := 0; i < b.count; i++ {
		token, err := b.generateOne()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

func (b Builder) generateOne() (string, error) {
	method := b.algorithm.SigningMethod()
	if method == nil {
		return "", unsupportedAlgorithm(b.algorithm)
	}

	now := time.Now()
	claims := &Claims{
		Subject:   b.subject,
		Issuer:    b.issuer,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Duration(b.expiresIn) * time.Second).Unix(),
		TokenID:   uuid.New().String(),
		Extra:     cloneExtra(b.extra),
	}
	if claims.Subject == "" {
		claims.Subject = uuid.New().String()
	}
	if claims.Issuer == "" {
		claims.Issuer = DefaultIssuer
	}
	if b.includeRoles {
		claims.Roles = append([]string(nil), syntheticRoles...)
	}
	if b.includeScope {
		claims.Scope = syntheticScope
	}

	if err := b.decorate(claims); err != nil {
		b.log().Error("Claims decoration failed", "error", err)
		return "", newTokenError(err, TextCodeSignFailed, "claims decoration failed")
	}

	key := b.key
	if key.IsZero() {
		generated, err := GenerateKey(b.algorithm)
		if err != nil {
			return "", err
		}
		key = generated
	}

	signKey, err := key.SigningKey(b.algorithm)
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(method, claims.toMapClaims())
	signed, err := token.SignedString(signKey)
	if err != nil {
		return "", newTokenError(err, TextCodeSignFailed, "failed to encode JWT")
	}
	return signed, nil
}

// decorate runs the configured decorator, then restores the reserved
// fields so hooks can only contribute extension claims.
func (b Builder) decorate(claims *Claims) error {
	if b.decorator == nil {
		return nil
	}
	pinned := *claims
	if err := normalizeClaimsDecorator(b.decorator).Decorate(claims); err != nil {
		return err
	}
	claims.Subject = pinned.Subject
	claims.Issuer = pinned.Issuer
	claims.IssuedAt = pinned.IssuedAt
	claims.ExpiresAt = pinned.ExpiresAt
	claims.TokenID = pinned.TokenID
	claims.Roles = pinned.Roles
	claims.Scope = pinned.Scope
	return nil
}

// Verify decodes the token, checks its signature against the configured
// key and algorithm, and requires an unexpired exp claim. It returns
// the decoded claims, with any non-reserved claims preserved in Extra.
func (b Builder) Verify(tokenString string) (*Claims, error) {
	if b.key.IsZero() {
		return nil, ErrNoVerificationKey
	}

	method := b.algorithm.SigningMethod()
	if method == nil {
		return nil, unsupportedAlgorithm(b.algorithm)
	}

	verifyKey, err := b.key.VerificationKey(b.algorithm)
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenString, jwt.MapClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != method.Alg() {
			return nil, errors.New("unexpected signing method: "+t.Method.Alg(), errors.CategoryAuth)
		}
		return verifyKey, nil
	},
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		b.log().Debug("Token verification failed", "error", err)
		return nil, errors.Wrap(err, ErrTokenMalformed.Category, ErrTokenMalformed.Message).
			WithTextCode(ErrTokenMalformed.TextCode).
			WithCode(errors.CodeUnauthorized)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		b.log().Error("Token verification could not decode claims")
		return nil, ErrTokenMalformed
	}

	return claimsFromMap(mapClaims), nil
}

func (b Builder) log() Logger {
	if b.logger == nil {
		return defLogger{}
	}
	return b.logger
}

func cloneExtra(extra map[string]any) map[string]any {
	if len(extra) == 0 {
		return nil
	}
	clone := make(map[string]any, len(extra))
	for k, v := range extra {
		clone[k] = v
	}
	return clone
}

// Generate mints one token with the default configuration.
func Generate() (string, error) {
	tokens, err := New().Generate()
	if err != nil {
		return "", err
	}
	return tokens[0], nil
}

// GenerateN mints count tokens with the default configuration.
func GenerateN(count int) ([]string, error) {
	b, err := New().Count(count)
	if err != nil {
		return nil, err
	}
	return b.Generate()
}

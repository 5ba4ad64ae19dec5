package tokenmint

import (
	"crypto/rand"
	"crypto/rsa"

	"github.com/goliatone/go-errors"
)

// KeyKind tags the variant of signing material held by a Key.
type KeyKind int

const (
	// KeyKindNone marks the zero Key, which holds no material.
	KeyKindNone KeyKind = iota
	// KeyKindSecret marks a raw HMAC secret.
	KeyKindSecret
	// KeyKindRSA marks an RSA private/public key pair.
	KeyKindRSA
)

// Key holds signing material for one algorithm family: either a raw
// HMAC secret or an RSA key pair. Keys are cheap to copy; RSA material
// is shared by pointer with the public component precomputed, so copies
// and repeated verifications reuse the same pair. Key material must be
// treated as read-only after creation.
type Key struct {
	kind   KeyKind
	secret []byte
	rsaKey *rsa.PrivateKey
}

// GenerateKey creates fresh key material sized for the algorithm: a
// MinKeyBits/8 byte secret from crypto/rand for HMAC tiers, an RSA pair
// with a MinKeyBits modulus for RSA tiers. RSA generation is
// considerably slower than drawing a secret, and more so at higher
// tiers. Failures are never retried.
func GenerateKey(alg Algorithm) (Key, error) {
	switch {
	case alg.IsHMAC():
		secret := make([]byte, alg.MinKeyBits()/8)
		if _, err := rand.Read(secret); err != nil {
			return Key{}, newCryptoError(err, TextCodeKeyGenFailed, "failed to draw HMAC secret")
		}
		return Key{kind: KeyKindSecret, secret: secret}, nil
	case alg.IsRSA():
		private, err := rsa.GenerateKey(rand.Reader, alg.MinKeyBits())
		if err != nil {
			return Key{}, newCryptoError(err, TextCodeKeyGenFailed, "RSA key generation failed")
		}
		private.Precompute()
		return Key{kind: KeyKindRSA, rsaKey: private}, nil
	}
	return Key{}, unsupportedAlgorithm(alg)
}

func unsupportedAlgorithm(alg Algorithm) error {
	return errors.New("unsupported algorithm: "+alg.String(), errors.CategoryInternal).
		WithTextCode(TextCodeKeyGenFailed).
		WithCode(errors.CodeInternal)
}

// KeyFromSecret wraps a caller-supplied HMAC secret. The secret is not
// checked against any algorithm here; a mismatch surfaces when the key
// is used with an RSA algorithm.
func KeyFromSecret(secret []byte) Key {
	buf := make([]byte, len(secret))
	copy(buf, secret)
	return Key{kind: KeyKindSecret, secret: buf}
}

// KeyFromRSAPrivate wraps a caller-supplied RSA private key. The key is
// not validated here; malformed material surfaces when the key is used
// for signing.
func KeyFromRSAPrivate(private *rsa.PrivateKey) Key {
	return Key{kind: KeyKindRSA, rsaKey: private}
}

// Kind returns the variant tag of the key.
func (k Key) Kind() KeyKind {
	return k.kind
}

// IsZero reports whether the key holds no material.
func (k Key) IsZero() bool {
	return k.kind == KeyKindNone
}

// SigningKey returns the opaque handle the signing engine expects for
// the given algorithm. It fails when the key variant does not match the
// algorithm family or the RSA material does not validate.
func (k Key) SigningKey(alg Algorithm) (any, error) {
	switch k.kind {
	case KeyKindSecret:
		if !alg.IsHMAC() {
			return nil, k.mismatchError(alg)
		}
		return k.secret, nil
	case KeyKindRSA:
		if !alg.IsRSA() {
			return nil, k.mismatchError(alg)
		}
		if k.rsaKey == nil {
			return nil, errors.New("RSA key material is nil", errors.CategoryInternal).
				WithTextCode(TextCodeKeyMaterial).
				WithCode(errors.CodeInternal)
		}
		if err := k.rsaKey.Validate(); err != nil {
			return nil, newCryptoError(err, TextCodeKeyMaterial, "RSA private key failed validation")
		}
		return k.rsaKey, nil
	}
	return nil, errors.New("key holds no material", errors.CategoryInternal).
		WithTextCode(TextCodeKeyMaterial).
		WithCode(errors.CodeInternal)
}

// VerificationKey returns the opaque handle the decoding engine expects
// for the given algorithm: the shared secret for HMAC, the public
// component for RSA. The public key is never re-derived; verification
// reuses the pair held by the Key.
func (k Key) VerificationKey(alg Algorithm) (any, error) {
	switch k.kind {
	case KeyKindSecret:
		if !alg.IsHMAC() {
			return nil, k.mismatchError(alg)
		}
		return k.secret, nil
	case KeyKindRSA:
		if !alg.IsRSA() {
			return nil, k.mismatchError(alg)
		}
		if k.rsaKey == nil {
			return nil, errors.New("RSA key material is nil", errors.CategoryInternal).
				WithTextCode(TextCodeKeyMaterial).
				WithCode(errors.CodeInternal)
		}
		return &k.rsaKey.PublicKey, nil
	}
	return nil, errors.New("key holds no material", errors.CategoryInternal).
		WithTextCode(TextCodeKeyMaterial).
		WithCode(errors.CodeInternal)
}

func (k Key) mismatchError(alg Algorithm) error {
	return errors.New("key material does not match algorithm family "+alg.String(), errors.CategoryInternal).
		WithTextCode(TextCodeKeyMismatch).
		WithCode(errors.CodeInternal)
}

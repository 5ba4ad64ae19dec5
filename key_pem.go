package tokenmint

import (
	"crypto/x509"
	"encoding/pem"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// KeyFromRSAPrivatePEM parses a PEM-encoded RSA private key (PKCS#1 or
// PKCS#8) into a Key, so pairs generated elsewhere can sign and verify
// tokens here.
func KeyFromRSAPrivatePEM(data []byte) (Key, error) {
	private, err := jwt.ParseRSAPrivateKeyFromPEM(data)
	if err != nil {
		return Key{}, newCryptoError(err, TextCodeKeyMaterial, "failed to parse RSA private key PEM")
	}
	private.Precompute()
	return Key{kind: KeyKindRSA, rsaKey: private}, nil
}

// RSAPrivatePEM encodes the private half of an RSA key as PKCS#1 PEM.
func (k Key) RSAPrivatePEM() ([]byte, error) {
	if k.kind != KeyKindRSA || k.rsaKey == nil {
		return nil, errors.New("key does not hold an RSA pair", errors.CategoryInternal).
			WithTextCode(TextCodeKeyEncoding).
			WithCode(errors.CodeInternal)
	}
	block := &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(k.rsaKey),
	}
	return pem.EncodeToMemory(block), nil
}

// RSAPublicPEM encodes the public half of an RSA key as PKIX PEM,
// suitable for handing to an external verifier.
func (k Key) RSAPublicPEM() ([]byte, error) {
	if k.kind != KeyKindRSA || k.rsaKey == nil {
		return nil, errors.New("key does not hold an RSA pair", errors.CategoryInternal).
			WithTextCode(TextCodeKeyEncoding).
			WithCode(errors.CodeInternal)
	}
	der, err := x509.MarshalPKIXPublicKey(&k.rsaKey.PublicKey)
	if err != nil {
		return nil, newCryptoError(err, TextCodeKeyEncoding, "failed to encode RSA public key")
	}
	block := &pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: der,
	}
	return pem.EncodeToMemory(block), nil
}

package tokenmint_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	tokenmint "github.com/goliatone/go-tokenmint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiVerifierTriesKeysInOrder(t *testing.T) {
	oldKey, err := tokenmint.GenerateKey(tokenmint.HS256)
	require.NoError(t, err)
	newKey, err := tokenmint.GenerateKey(tokenmint.HS256)
	require.NoError(t, err)

	oldBuilder := tokenmint.New().Key(oldKey).Subject("rotated-user")
	tokens, err := oldBuilder.Generate()
	require.NoError(t, err)

	// The new key is tried first, fails the signature check, and the
	// composite falls through to the old key.
	verifier := tokenmint.NewMultiVerifier(
		tokenmint.New().Key(newKey),
		tokenmint.New().Key(oldKey),
	)

	claims, err := verifier.Verify(tokens[0])
	require.NoError(t, err)
	assert.Equal(t, "rotated-user", claims.Subject)
}

func TestMultiVerifierAllKeysFail(t *testing.T) {
	keyA, err := tokenmint.GenerateKey(tokenmint.HS256)
	require.NoError(t, err)
	keyB, err := tokenmint.GenerateKey(tokenmint.HS256)
	require.NoError(t, err)
	signer, err := tokenmint.GenerateKey(tokenmint.HS256)
	require.NoError(t, err)

	tokens, err := tokenmint.New().Key(signer).Generate()
	require.NoError(t, err)

	verifier := tokenmint.NewMultiVerifier(
		tokenmint.New().Key(keyA),
		tokenmint.New().Key(keyB),
	)

	_, err = verifier.Verify(tokens[0])
	require.Error(t, err)
	assert.True(t, tokenmint.IsMalformedError(err))
}

func TestMultiVerifierStopsOnExpired(t *testing.T) {
	secret := []byte("0123456789abcdef0123456789abcdef")
	past := time.Now().Add(-2 * time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "expired",
		"iat": past.Unix(),
		"exp": past.Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)

	otherKey, err := tokenmint.GenerateKey(tokenmint.HS256)
	require.NoError(t, err)

	// The right key reports expiry; the composite must not mask that by
	// trying the remaining key.
	verifier := tokenmint.NewMultiVerifier(
		tokenmint.New().Key(tokenmint.KeyFromSecret(secret)),
		tokenmint.New().Key(otherKey),
	)

	_, err = verifier.Verify(signed)
	require.Error(t, err)
	assert.True(t, tokenmint.IsTokenExpiredError(err))
}

func TestMultiVerifierEmpty(t *testing.T) {
	verifier := tokenmint.NewMultiVerifier(nil, nil)

	_, err := verifier.Verify("anything")
	require.Error(t, err)
	assert.True(t, tokenmint.IsMalformedError(err))
}

func TestVerifierFunc(t *testing.T) {
	called := false
	fn := tokenmint.VerifierFunc(func(tokenString string) (*tokenmint.Claims, error) {
		called = true
		return &tokenmint.Claims{Subject: tokenString}, nil
	})

	claims, err := fn.Verify("token-string")
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "token-string", claims.Subject)

	var nilFn tokenmint.VerifierFunc
	_, err = nilFn.Verify("token-string")
	assert.Error(t, err)
}

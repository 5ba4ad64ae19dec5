package tokenmint

import "github.com/golang-jwt/jwt/v5"

// Algorithm identifies a supported JWT signing algorithm. The set is
// closed: three HMAC strength tiers and three RSA strength tiers.
type Algorithm string

const (
	HS256 Algorithm = "HS256"
	HS384 Algorithm = "HS384"
	HS512 Algorithm = "HS512"
	RS256 Algorithm = "RS256"
	RS384 Algorithm = "RS384"
	RS512 Algorithm = "RS512"
)

// Algorithms lists every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{HS256, HS384, HS512, RS256, RS384, RS512}
}

// IsHMAC reports whether the algorithm belongs to the symmetric family.
func (a Algorithm) IsHMAC() bool {
	switch a {
	case HS256, HS384, HS512:
		return true
	}
	return false
}

// IsRSA reports whether the algorithm belongs to the asymmetric family.
func (a Algorithm) IsRSA() bool {
	switch a {
	case RS256, RS384, RS512:
		return true
	}
	return false
}

// Valid reports whether the algorithm is a member of the supported set.
func (a Algorithm) Valid() bool {
	return a.IsHMAC() || a.IsRSA()
}

// MinKeyBits returns the minimum key strength in bits: the secret length
// for HMAC tiers, the modulus size for RSA tiers. Unknown algorithms
// report zero.
func (a Algorithm) MinKeyBits() int {
	switch a {
	case HS256:
		return 256
	case HS384:
		return 384
	case HS512:
		return 512
	case RS256:
		return 2048
	case RS384:
		return 3072
	case RS512:
		return 4096
	}
	return 0
}

// SigningMethod returns the golang-jwt method that implements the
// algorithm, or nil for unknown algorithms.
func (a Algorithm) SigningMethod() jwt.SigningMethod {
	switch a {
	case HS256:
		return jwt.SigningMethodHS256
	case HS384:
		return jwt.SigningMethodHS384
	case HS512:
		return jwt.SigningMethodHS512
	case RS256:
		return jwt.SigningMethodRS256
	case RS384:
		return jwt.SigningMethodRS384
	case RS512:
		return jwt.SigningMethodRS512
	}
	return nil
}

// String satisfies fmt.Stringer.
func (a Algorithm) String() string {
	return string(a)
}

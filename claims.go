package tokenmint

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Reserved claim names always present in minted tokens. Roles and scope
// appear only when enabled on the builder.
const (
	ClaimSubject = "sub"
	ClaimIssuer  = "iss"
	ClaimIssued  = "iat"
	ClaimExpires = "exp"
	ClaimTokenID = "jti"
	ClaimRoles   = "roles"
	ClaimScope   = "scope"
)

// Claims is the token payload: the reserved fields plus an open set of
// extension claims. Extensions serialize at the same level as the
// reserved fields, not nested under a sub-object, and unknown claims
// survive a decode round-trip inside Extra.
type Claims struct {
	Subject   string
	Issuer    string
	IssuedAt  int64
	ExpiresAt int64
	Roles     []string
	Scope     string
	TokenID   string
	Extra     map[string]any
}

// IssuedTime returns the iat claim as a time.Time.
func (c *Claims) IssuedTime() time.Time {
	return time.Unix(c.IssuedAt, 0)
}

// ExpiresTime returns the exp claim as a time.Time.
func (c *Claims) ExpiresTime() time.Time {
	return time.Unix(c.ExpiresAt, 0)
}

// HasRole reports whether the roles claim contains the given role.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// toMapClaims merges the extension map and the reserved fields into the
// flat claim set handed to the signing engine. Reserved fields are
// written last, so they win over a colliding extension name.
func (c *Claims) toMapClaims() jwt.MapClaims {
	m := make(jwt.MapClaims, len(c.Extra)+7)
	for name, value := range c.Extra {
		m[name] = value
	}
	m[ClaimSubject] = c.Subject
	m[ClaimIssuer] = c.Issuer
	m[ClaimIssued] = c.IssuedAt
	m[ClaimExpires] = c.ExpiresAt
	m[ClaimTokenID] = c.TokenID
	if c.Roles != nil {
		m[ClaimRoles] = c.Roles
	}
	if c.Scope != "" {
		m[ClaimScope] = c.Scope
	}
	return m
}

// claimsFromMap rebuilds Claims from a decoded claim set. Claims that
// are not reserved land in Extra unchanged.
func claimsFromMap(m jwt.MapClaims) *Claims {
	c := &Claims{}
	for name, value := range m {
		switch name {
		case ClaimSubject:
			c.Subject, _ = value.(string)
		case ClaimIssuer:
			c.Issuer, _ = value.(string)
		case ClaimIssued:
			c.IssuedAt = toUnix(value)
		case ClaimExpires:
			c.ExpiresAt = toUnix(value)
		case ClaimTokenID:
			c.TokenID, _ = value.(string)
		case ClaimScope:
			c.Scope, _ = value.(string)
		case ClaimRoles:
			c.Roles = toStringSlice(value)
		default:
			if c.Extra == nil {
				c.Extra = map[string]any{}
			}
			c.Extra[name] = value
		}
	}
	return c
}

// toUnix normalizes the numeric representations a JSON decode can
// produce for a timestamp claim.
func toUnix(value any) int64 {
	switch v := value.(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	}
	return 0
}

func toStringSlice(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

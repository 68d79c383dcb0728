package jwt

import (
	"encoding/json"
	"math"
)

// Header is the decoded JOSE header. Fields other than alg and typ are ignored.
type Header map[string]any

// Algorithm returns the alg field when it is a string.
func (h Header) Algorithm() string {
	v, _ := h["alg"].(string)
	return v
}

// Type returns the typ field when it is a string.
func (h Header) Type() string {
	v, _ := h["typ"].(string)
	return v
}

// Claims is the decoded token payload.
type Claims map[string]any

// Subject returns the sub claim, the purpose tag of the token.
func (c Claims) Subject() string {
	v, _ := c["sub"].(string)
	return v
}

// Email returns the email claim.
func (c Claims) Email() string {
	v, _ := c["email"].(string)
	return v
}

// IssuedAt returns the iat claim in seconds since epoch.
func (c Claims) IssuedAt() (int64, bool) {
	return numericClaim(c["iat"])
}

// ExpiresAt returns the exp claim in seconds since epoch.
// Fractional values are truncated; use expired for the exact comparison.
func (c Claims) ExpiresAt() (int64, bool) {
	return numericClaim(c["exp"])
}

// expired reports whether exp is present, numeric and not after now.
func (c Claims) expired(now int64) bool {
	switch v := c["exp"].(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return now >= i
		}
		// Out-of-range values come back as ±Inf with an error and still compare correctly.
		f, err := v.Float64()
		if err != nil && !math.IsInf(f, 0) {
			return false
		}
		return float64(now) >= f
	case float64:
		return float64(now) >= v
	case int64:
		return now >= v
	case int:
		return now >= int64(v)
	}
	return false
}

func numericClaim(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return int64(f), true
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	}
	return 0, false
}

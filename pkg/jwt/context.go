package jwt

import (
	"context"
	"encoding/json"
	"fmt"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{ name string }

// String returns the name of the context key.
func (c contextKey) String() string { return c.name }

var (
	tokenContextKey  = &contextKey{name: "jwt"}        // raw token string
	claimsContextKey = &contextKey{name: "jwt_claims"} // verified claims
)

// SetToken stores the raw token string in the context.
func SetToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// GetToken returns the raw token string from the context.
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}

// SetClaims stores verified claims in the context.
// Only claims from a valid Result belong here; DecodeUnsafe output must not be stored.
func SetClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// GetClaims returns the verified claims from the context.
func GetClaims(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(Claims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}

// GetClaimsAs converts the verified claims in the context into the given struct.
func GetClaimsAs[T any](ctx context.Context, dst *T) error {
	if dst == nil {
		return fmt.Errorf("failed to unmarshal claims: %w", ErrMalformedToken)
	}

	claims, ok := GetClaims(ctx)
	if !ok {
		return ErrMissingToken
	}

	data, err := json.Marshal(claims)
	if err != nil {
		return fmt.Errorf("failed to marshal claims: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to unmarshal claims: %w", err)
	}
	return nil
}

package jwt_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/oneclick/pkg/jwt"
)

var defaultHeader = map[string]any{"alg": "HS256", "typ": "JWT"}

// signedToken builds a compact token the way a trusted signer would.
func signedToken(t testing.TB, header, claims map[string]any, secret string) string {
	t.Helper()

	headerJSON, err := json.Marshal(header)
	require.NoError(t, err)
	claimsJSON, err := json.Marshal(claims)
	require.NoError(t, err)

	return signRaw(jwt.EncodeSegment(headerJSON), jwt.EncodeSegment(claimsJSON), secret)
}

// signRaw signs already encoded segments.
func signRaw(headerSeg, payloadSeg, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(headerSeg + "." + payloadSeg))
	return headerSeg + "." + payloadSeg + "." + jwt.EncodeSegment(h.Sum(nil))
}

func unsubscribeClaims(email string, iat, exp int64) map[string]any {
	return map[string]any{
		"sub":   "unsubscribe",
		"email": email,
		"iat":   iat,
		"exp":   exp,
	}
}

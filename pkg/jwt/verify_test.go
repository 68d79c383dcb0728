package jwt_test

import (
	"encoding/json"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/oneclick/pkg/jwt"
)

const testSecret = "test-secret"

func TestVerifyAt_UnsubscribeScenario(t *testing.T) {
	t.Parallel()

	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	T := issued.Unix()
	token := signedToken(t, defaultHeader, unsubscribeClaims("a@example.com", T, T+86400), testSecret)

	t.Run("valid", func(t *testing.T) {
		res := jwt.VerifyAt(token, []byte(testSecret), time.Unix(T+10, 0))
		require.True(t, res.Valid)
		assert.Empty(t, res.Reason)
		assert.NoError(t, res.Err())
		assert.Equal(t, "a@example.com", res.Claims.Email())
		assert.Equal(t, "unsubscribe", res.Claims.Subject())
		assert.Equal(t, "HS256", res.Header.Algorithm())
		assert.Equal(t, "JWT", res.Header.Type())

		iat, ok := res.Claims.IssuedAt()
		require.True(t, ok)
		assert.Equal(t, T, iat)
		exp, ok := res.Claims.ExpiresAt()
		require.True(t, ok)
		assert.Equal(t, T+86400, exp)
	})

	t.Run("wrong secret", func(t *testing.T) {
		res := jwt.VerifyAt(token, []byte("wrong-secret"), time.Unix(T+10, 0))
		assert.False(t, res.Valid)
		assert.Equal(t, jwt.ReasonInvalidSignature, res.Reason)
		assert.ErrorIs(t, res.Err(), jwt.ErrInvalidSignature)
		assert.Nil(t, res.Claims)
	})

	t.Run("expired", func(t *testing.T) {
		res := jwt.VerifyAt(token, []byte(testSecret), time.Unix(T+90000, 0))
		assert.False(t, res.Valid)
		assert.Equal(t, jwt.ReasonExpired, res.Reason)
		assert.ErrorIs(t, res.Err(), jwt.ErrExpiredToken)
	})

	t.Run("expired with wrong secret reports signature", func(t *testing.T) {
		res := jwt.VerifyAt(token, []byte("wrong-secret"), time.Unix(T+90000, 0))
		assert.Equal(t, jwt.ReasonInvalidSignature, res.Reason)
	})
}

func TestVerifyAt_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_800_000_000, 0)

	tests := []struct {
		name   string
		exp    any
		valid  bool
		reason jwt.Reason
	}{
		{name: "one second in the past", exp: now.Unix() - 1, reason: jwt.ReasonExpired},
		{name: "exactly now", exp: now.Unix(), reason: jwt.ReasonExpired},
		{name: "one second in the future", exp: now.Unix() + 1, valid: true},
		{name: "fractional past", exp: float64(now.Unix()) - 0.5, reason: jwt.ReasonExpired},
		{name: "fractional future", exp: float64(now.Unix()) + 0.5, valid: true},
		{name: "non numeric exp ignored", exp: "tomorrow", valid: true},
		{name: "null exp ignored", exp: nil, valid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := map[string]any{"sub": "unsubscribe", "email": "a@example.com", "exp": tt.exp}
			token := signedToken(t, defaultHeader, claims, testSecret)

			res := jwt.VerifyAt(token, []byte(testSecret), now)
			assert.Equal(t, tt.valid, res.Valid)
			assert.Equal(t, tt.reason, res.Reason)
		})
	}

	t.Run("missing exp never expires", func(t *testing.T) {
		token := signedToken(t, defaultHeader, map[string]any{"sub": "unsubscribe"}, testSecret)
		res := jwt.VerifyAt(token, []byte(testSecret), now.Add(100*365*24*time.Hour))
		assert.True(t, res.Valid)
		_, ok := res.Claims.ExpiresAt()
		assert.False(t, ok)
	})

	t.Run("huge exp", func(t *testing.T) {
		token := signRaw(jwt.EncodeSegment([]byte(`{"alg":"HS256","typ":"JWT"}`)),
			jwt.EncodeSegment([]byte(`{"exp":1e400}`)), testSecret)
		assert.True(t, jwt.VerifyAt(token, []byte(testSecret), now).Valid)
	})

	t.Run("iat in the future is not checked", func(t *testing.T) {
		token := signedToken(t, defaultHeader, unsubscribeClaims("a@example.com", now.Unix()+3600, now.Unix()+7200), testSecret)
		assert.True(t, jwt.VerifyAt(token, []byte(testSecret), now).Valid)
	})
}

func TestVerifyAt_AlgorithmAllowList(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_800_000_000, 0)
	claims := unsubscribeClaims("a@example.com", now.Unix(), now.Unix()+60)

	headers := []struct {
		name   string
		header map[string]any
	}{
		{name: "none", header: map[string]any{"alg": "none", "typ": "JWT"}},
		{name: "HS512", header: map[string]any{"alg": "HS512", "typ": "JWT"}},
		{name: "RS256", header: map[string]any{"alg": "RS256", "typ": "JWT"}},
		{name: "lower case alg", header: map[string]any{"alg": "hs256", "typ": "JWT"}},
		{name: "lower case typ", header: map[string]any{"alg": "HS256", "typ": "jwt"}},
		{name: "missing typ", header: map[string]any{"alg": "HS256"}},
		{name: "missing alg", header: map[string]any{"typ": "JWT"}},
		{name: "numeric alg", header: map[string]any{"alg": 256, "typ": "JWT"}},
		{name: "empty", header: map[string]any{}},
	}
	for _, tt := range headers {
		t.Run(tt.name, func(t *testing.T) {
			// Signed with the right secret: rejection must come from the header alone.
			token := signedToken(t, tt.header, claims, testSecret)
			res := jwt.VerifyAt(token, []byte(testSecret), now)
			assert.False(t, res.Valid)
			assert.Equal(t, jwt.ReasonUnsupportedAlgorithm, res.Reason)
			assert.ErrorIs(t, res.Err(), jwt.ErrUnsupportedAlgorithm)
		})
	}

	t.Run("unsupported header wins over bad signature", func(t *testing.T) {
		token := signedToken(t, map[string]any{"alg": "none", "typ": "JWT"}, claims, "other")
		res := jwt.VerifyAt(token, []byte(testSecret), now)
		assert.Equal(t, jwt.ReasonUnsupportedAlgorithm, res.Reason)
	})

	t.Run("extra header fields ignored", func(t *testing.T) {
		token := signedToken(t, map[string]any{"alg": "HS256", "typ": "JWT", "kid": "k1", "cty": "x"}, claims, testSecret)
		res := jwt.VerifyAt(token, []byte(testSecret), now)
		assert.True(t, res.Valid)
	})
}

func TestVerifyAt_Malformed(t *testing.T) {
	t.Parallel()

	tokens := []string{
		"",
		"a.b",
		"a.b.c.d",
		"not-base64!!.not-base64!!.not-base64!!",
		"...",
		"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..sig",
	}
	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			res := jwt.VerifyAt(token, []byte(testSecret), time.Now())
			assert.False(t, res.Valid)
			assert.Equal(t, jwt.ReasonMalformedToken, res.Reason)
			assert.ErrorIs(t, res.Err(), jwt.ErrMalformedToken)
		})
	}

	header := jwt.EncodeSegment([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payloads := map[string][]byte{
		"array payload":   []byte(`["unsubscribe"]`),
		"scalar payload":  []byte(`"unsubscribe"`),
		"invalid json":    []byte(`{"sub":`),
		"invalid utf8":    []byte("{\"email\":\"\xc3\x28\"}"),
		"trailing object": []byte(`{"a":1}{}`),
	}
	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			token := signRaw(header, jwt.EncodeSegment(payload), testSecret)
			res := jwt.VerifyAt(token, []byte(testSecret), time.Now())
			assert.Equal(t, jwt.ReasonMalformedToken, res.Reason)
		})
	}

	t.Run("header not an object", func(t *testing.T) {
		token := signRaw(jwt.EncodeSegment([]byte(`["HS256"]`)), jwt.EncodeSegment([]byte(`{}`)), testSecret)
		res := jwt.VerifyAt(token, []byte(testSecret), time.Now())
		assert.Equal(t, jwt.ReasonMalformedToken, res.Reason)
	})

	t.Run("invalid signature alphabet", func(t *testing.T) {
		token := signRaw(header, jwt.EncodeSegment([]byte(`{}`)), testSecret)
		res := jwt.VerifyAt(token+"=", []byte(testSecret), time.Now())
		assert.Equal(t, jwt.ReasonMalformedToken, res.Reason)
	})
}

func TestVerifyAt_TamperSensitivity(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_800_000_000, 0)
	token := signedToken(t, defaultHeader, unsubscribeClaims("alice@example.com", now.Unix(), now.Unix()+60), testSecret)
	headerSeg, payloadSeg, sigSeg, err := jwt.Split(token)
	require.NoError(t, err)
	payload, err := jwt.DecodeSegment(payloadSeg)
	require.NoError(t, err)

	t.Run("every single bit flip is rejected", func(t *testing.T) {
		for i := range payload {
			for bit := range 8 {
				tampered := append([]byte(nil), payload...)
				tampered[i] ^= 1 << bit
				forged := headerSeg + "." + jwt.EncodeSegment(tampered) + "." + sigSeg

				res := jwt.VerifyAt(forged, []byte(testSecret), now)
				require.False(t, res.Valid, "byte %d bit %d", i, bit)
				assert.Contains(t,
					[]jwt.Reason{jwt.ReasonInvalidSignature, jwt.ReasonMalformedToken},
					res.Reason, "byte %d bit %d", i, bit)
			}
		}
	})

	t.Run("bit flips that keep the payload parseable fail the signature", func(t *testing.T) {
		checked := 0
		for i := range payload {
			for bit := range 7 {
				tampered := append([]byte(nil), payload...)
				tampered[i] ^= 1 << bit
				var probe map[string]any
				if json.Unmarshal(tampered, &probe) != nil {
					continue
				}
				checked++
				forged := headerSeg + "." + jwt.EncodeSegment(tampered) + "." + sigSeg
				res := jwt.VerifyAt(forged, []byte(testSecret), now)
				assert.Equal(t, jwt.ReasonInvalidSignature, res.Reason, "byte %d bit %d", i, bit)
			}
		}
		assert.Positive(t, checked)
	})

	t.Run("non canonical signature encoding", func(t *testing.T) {
		// A 32-byte MAC leaves two unused low bits in the last character.
		last := sigSeg[len(sigSeg)-1]
		alphabet := "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
		idx := 0
		for i := range alphabet {
			if alphabet[i] == last {
				idx = i
			}
		}
		variant := alphabet[idx^1]
		forged := headerSeg + "." + payloadSeg + "." + sigSeg[:len(sigSeg)-1] + string(variant)

		res := jwt.VerifyAt(forged, []byte(testSecret), now)
		assert.Equal(t, jwt.ReasonInvalidSignature, res.Reason)
	})

	t.Run("truncated signature", func(t *testing.T) {
		forged := headerSeg + "." + payloadSeg + "." + sigSeg[:len(sigSeg)-4]
		res := jwt.VerifyAt(forged, []byte(testSecret), now)
		assert.Equal(t, jwt.ReasonInvalidSignature, res.Reason)
	})

	t.Run("re-encoded header", func(t *testing.T) {
		// Same header semantics, different bytes: the signature covers the bytes as received.
		reordered := jwt.EncodeSegment([]byte(`{"typ":"JWT","alg":"HS256"}`))
		require.NotEqual(t, headerSeg, reordered)
		forged := reordered + "." + payloadSeg + "." + sigSeg
		res := jwt.VerifyAt(forged, []byte(testSecret), now)
		assert.Equal(t, jwt.ReasonInvalidSignature, res.Reason)
	})
}

func TestVerifyAt_Secret(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_800_000_000, 0)
	token := signedToken(t, defaultHeader, unsubscribeClaims("a@example.com", now.Unix(), now.Unix()+60), "")

	t.Run("empty secret is a verification error", func(t *testing.T) {
		res := jwt.VerifyAt(token, nil, now)
		assert.False(t, res.Valid)
		assert.Equal(t, jwt.ReasonVerificationError, res.Reason)
		assert.ErrorIs(t, res.Err(), jwt.ErrVerification)

		res = jwt.VerifyAt(token, []byte{}, now)
		assert.Equal(t, jwt.ReasonVerificationError, res.Reason)
	})

	t.Run("binary secret", func(t *testing.T) {
		secret := string([]byte{0x00, 0xff, 0x10, 0x80})
		token := signedToken(t, defaultHeader, map[string]any{"sub": "unsubscribe"}, secret)
		assert.True(t, jwt.VerifyAt(token, []byte(secret), now).Valid)
	})
}

func TestVerify_UsesWallClock(t *testing.T) {
	t.Parallel()

	now := time.Now().Unix()
	valid := signedToken(t, defaultHeader, unsubscribeClaims("a@example.com", now, now+3600), testSecret)
	expired := signedToken(t, defaultHeader, unsubscribeClaims("a@example.com", now-7200, now-3600), testSecret)

	assert.True(t, jwt.Verify(valid, []byte(testSecret)).Valid)
	assert.Equal(t, jwt.ReasonExpired, jwt.Verify(expired, []byte(testSecret)).Reason)
}

func TestVerify_IndependentSigner(t *testing.T) {
	t.Parallel()

	now := time.Now()
	tok := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"sub":   "unsubscribe",
		"email": "interop@example.com",
		"iat":   now.Unix(),
		"exp":   now.Add(24 * time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)

	res := jwt.Verify(signed, []byte(testSecret))
	require.True(t, res.Valid)
	assert.Equal(t, "interop@example.com", res.Claims.Email())

	t.Run("HS512 from the same signer is refused", func(t *testing.T) {
		tok := gojwt.NewWithClaims(gojwt.SigningMethodHS512, gojwt.MapClaims{"sub": "unsubscribe"})
		signed, err := tok.SignedString([]byte(testSecret))
		require.NoError(t, err)
		assert.Equal(t, jwt.ReasonUnsupportedAlgorithm, jwt.Verify(signed, []byte(testSecret)).Reason)
	})
}

func TestResult_Err(t *testing.T) {
	t.Parallel()

	assert.NoError(t, jwt.Result{Valid: true}.Err())
	assert.ErrorIs(t, jwt.Result{}.Err(), jwt.ErrVerification)
	assert.ErrorIs(t, jwt.Result{Reason: "something"}.Err(), jwt.ErrVerification)
	assert.ErrorIs(t, jwt.Result{Reason: jwt.ReasonExpired}.Err(), jwt.ErrExpiredToken)
	assert.Equal(t, "InvalidSignature", jwt.ReasonInvalidSignature.String())
}

package jwt

import (
	"net/http"
	"strings"
)

// TokenExtractorFunc extracts a token from an HTTP request.
type TokenExtractorFunc func(r *http.Request) (string, error)

// SecretFunc returns the signing secret. It is called once per request so a
// rotated secret is picked up without rebuilding the middleware.
type SecretFunc func() []byte

// SkipFunc determines whether to skip verification for a request.
type SkipFunc func(r *http.Request) bool

// RejectFunc is called for every rejected request with the verdict reason.
type RejectFunc func(r *http.Request, reason Reason)

// ErrorHandlerFunc writes the response for a rejected request.
type ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, reason Reason)

// MiddlewareConfig configures the verification middleware.
type MiddlewareConfig struct {
	Secret    SecretFunc         // required
	Extractor TokenExtractorFunc // defaults to BearerTokenExtractor
	Skip      SkipFunc
	OnReject  RejectFunc
	// ErrorHandler replaces the plain-text rejection body.
	ErrorHandler ErrorHandlerFunc
}

// Middleware verifies Bearer tokens and injects verified claims into the request context.
func Middleware(secret SecretFunc) func(next http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig{
		Secret:    secret,
		Extractor: BearerTokenExtractor,
	})
}

// MiddlewareWithConfig creates verification middleware with custom configuration.
func MiddlewareWithConfig(config MiddlewareConfig) func(next http.Handler) http.Handler {
	if config.Extractor == nil {
		config.Extractor = BearerTokenExtractor
	}
	if config.Secret == nil {
		panic("jwt: MiddlewareConfig.Secret is required")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Skip != nil && config.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, err := config.Extractor(r)
			if err != nil {
				config.reject(w, r, ReasonMalformedToken)
				return
			}

			res := Verify(tokenString, config.Secret())
			if !res.Valid {
				config.reject(w, r, res.Reason)
				return
			}

			ctx := r.Context()
			ctx = SetToken(ctx, tokenString)
			ctx = SetClaims(ctx, res.Claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (c MiddlewareConfig) reject(w http.ResponseWriter, r *http.Request, reason Reason) {
	if c.OnReject != nil {
		c.OnReject(r, reason)
	}
	if c.ErrorHandler != nil {
		c.ErrorHandler(w, r, reason)
		return
	}
	status, msg := StatusForReason(reason)
	http.Error(w, msg, status)
}

// StatusForReason maps a rejection reason to an HTTP status and a coarse message.
// Only expiry gets its own message; every other client-side failure reads the same.
func StatusForReason(reason Reason) (int, string) {
	switch reason {
	case ReasonExpired:
		return http.StatusUnauthorized, "token expired"
	case ReasonVerificationError:
		return http.StatusInternalServerError, "verification unavailable"
	default:
		return http.StatusUnauthorized, "invalid token"
	}
}

// BearerTokenExtractor extracts tokens from "Authorization: Bearer <token>" headers.
func BearerTokenExtractor(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrMissingToken
	}

	return parts[1], nil
}

// QueryTokenExtractor extracts a token from a URL query parameter.
// Emailed one-click links carry the token this way.
func QueryTokenExtractor(paramName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.URL.Query().Get(paramName)
		if token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}
}

// FormTokenExtractor extracts a token from a POST form field.
func FormTokenExtractor(fieldName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.PostFormValue(fieldName)
		if token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}
}

// HeaderTokenExtractor extracts a token from a custom header.
func HeaderTokenExtractor(headerName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.Header.Get(headerName)
		if token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}
}

// ChainExtractors returns the first token found by the given extractors, in order.
func ChainExtractors(extractors ...TokenExtractorFunc) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		for _, ex := range extractors {
			if ex == nil {
				continue
			}
			if token, err := ex(r); err == nil && token != "" {
				return token, nil
			}
		}
		return "", ErrMissingToken
	}
}

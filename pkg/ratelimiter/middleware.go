package ratelimiter

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/oneclick/pkg/clientip"
)

const maxKeyLength = 64

// KeyFunc derives the bucket key of a request. An empty key skips limiting.
type KeyFunc func(r *http.Request) string

// ByClientIP keys on the address stored by clientip.Middleware.
func ByClientIP(r *http.Request) string {
	return clientip.FromContext(r.Context())
}

// Composite joins the non-empty keys of fns with ":". Keys longer than 64
// bytes are replaced by their FNV-1a hash.
func Composite(fns ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(fns))
		for _, fn := range fns {
			if k := fn(r); k != "" {
				parts = append(parts, k)
			}
		}
		key := strings.Join(parts, ":")
		if len(key) <= maxKeyLength {
			return key
		}
		h := fnv.New64a()
		_, _ = h.Write([]byte(key))
		return strconv.FormatUint(h.Sum64(), 36)
	}
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareOptions)

type middlewareOptions struct {
	onLimited func(w http.ResponseWriter, r *http.Request, res Result)
	onError   func(w http.ResponseWriter, r *http.Request, err error)
}

// WithLimitedHandler writes the response for a denied request.
// Rate limit headers are already set when it runs.
func WithLimitedHandler(fn func(w http.ResponseWriter, r *http.Request, res Result)) MiddlewareOption {
	return func(o *middlewareOptions) {
		if fn != nil {
			o.onLimited = fn
		}
	}
}

// WithErrorHandler writes the response when the store fails.
func WithErrorHandler(fn func(w http.ResponseWriter, r *http.Request, err error)) MiddlewareOption {
	return func(o *middlewareOptions) {
		if fn != nil {
			o.onError = fn
		}
	}
}

// Middleware consumes one token per request and answers 429 when the bucket
// is empty. It sets X-RateLimit-Limit, X-RateLimit-Remaining,
// X-RateLimit-Reset and, on denial, Retry-After.
func Middleware(limiter *Bucket, keyFn KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	o := &middlewareOptions{
		onLimited: func(w http.ResponseWriter, _ *http.Request, _ Result) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		},
		onError: func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		},
	}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFn(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := limiter.Allow(r.Context(), key)
			if err != nil {
				o.onError(w, r, err)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				if secs := int(res.RetryAfter().Seconds()); secs > 0 {
					h.Set("Retry-After", strconv.Itoa(secs))
				} else {
					h.Set("Retry-After", "1")
				}
				o.onLimited(w, r, res)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

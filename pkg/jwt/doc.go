// Package jwt verifies and decodes compact HS256 tokens such as the ones
// embedded in one-click unsubscribe links.
//
// The package does not issue tokens and supports exactly one header:
// {"alg":"HS256","typ":"JWT"}. Anything else is rejected before any
// cryptographic work is done, so the token can never choose how it is
// verified.
//
// # Architecture
//
//   - codec.go: Split, DecodeSegment, EncodeSegment and ParseJSON convert
//     between the wire form and decoded header/claims maps.
//   - verify.go: Verify and VerifyAt produce a Result for (token, secret, now).
//   - unsafe.go: DecodeUnsafe returns unauthenticated claims for previews.
//   - context.go: helpers to carry the token and verified claims in a context.
//   - middleware.go: HTTP middleware that extracts a token (header, query,
//     form or custom header), verifies it and injects the claims.
//
// # Usage
//
//	import "github.com/dmitrymomot/oneclick/pkg/jwt"
//
//	res := jwt.Verify(token, []byte(secret))
//	if !res.Valid {
//	    // res.Reason is one of MalformedToken, UnsupportedAlgorithm,
//	    // InvalidSignature, Expired or VerificationError.
//	    return
//	}
//	email := res.Claims.Email()
//
//	// Preview only, never authorize with it.
//	if claims := jwt.DecodeUnsafe(token); claims != nil {
//	    showAddress(claims.Email())
//	}
//
// # Error Handling
//
// Verification never returns an error value or panics; the verdict is data.
// Result.Err maps a rejection to a sentinel such as ErrInvalidSignature or
// ErrExpiredToken for use with errors.Is.
//
// Verification order is fixed: structure, header allow-list, payload, signature
// (constant-time), then expiry. An expired verdict therefore implies a valid
// signature. Issued-at and not-before claims are not enforced.
package jwt

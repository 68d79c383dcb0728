package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"time"
)

// JWT header values accepted by the verifier. This is an allow-list, not a
// negotiation: the header never selects the verification routine.
const (
	HeaderType      = "JWT"
	HeaderAlgorithm = "HS256"
)

// Result is the verdict of a verification call.
// Header and Claims are set only when Valid is true; Reason only when it is false.
type Result struct {
	Valid  bool
	Reason Reason
	Header Header
	Claims Claims
}

// Err returns nil for a valid result and the sentinel error matching Reason otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	if r.Reason == "" {
		return ErrVerification
	}
	return r.Reason.Err()
}

func reject(reason Reason) Result {
	return Result{Reason: reason}
}

// Verify checks an HS256 token against secret using the current wall clock.
func Verify(token string, secret []byte) Result {
	return VerifyAt(token, secret, time.Now())
}

// VerifyAt checks an HS256 token against secret as of now.
//
// The signature is checked before expiry, so an expired verdict is only
// reachable with a correctly signed token. The function is total: it never
// panics and never returns raw error text from its internals.
func VerifyAt(token string, secret []byte, now time.Time) (res Result) {
	defer func() {
		if recover() != nil {
			res = reject(ReasonVerificationError)
		}
	}()

	if len(secret) == 0 {
		return reject(ReasonVerificationError)
	}

	headerSeg, payloadSeg, signatureSeg, err := Split(token)
	if err != nil {
		return reject(ReasonMalformedToken)
	}

	headerJSON, err := DecodeSegment(headerSeg)
	if err != nil {
		return reject(ReasonMalformedToken)
	}
	payloadJSON, err := DecodeSegment(payloadSeg)
	if err != nil {
		return reject(ReasonMalformedToken)
	}
	if _, err := DecodeSegment(signatureSeg); err != nil {
		return reject(ReasonMalformedToken)
	}

	rawHeader, err := ParseJSON(headerJSON)
	if err != nil {
		return reject(ReasonMalformedToken)
	}
	header := Header(rawHeader)
	if header.Algorithm() != HeaderAlgorithm || header.Type() != HeaderType {
		return reject(ReasonUnsupportedAlgorithm)
	}

	rawClaims, err := ParseJSON(payloadJSON)
	if err != nil {
		return reject(ReasonMalformedToken)
	}
	claims := Claims(rawClaims)

	expected := sign(headerSeg+"."+payloadSeg, secret)
	if !signatureEqual(expected, signatureSeg) {
		return reject(ReasonInvalidSignature)
	}

	if claims.expired(now.Unix()) {
		return reject(ReasonExpired)
	}

	return Result{Valid: true, Header: header, Claims: claims}
}

// sign creates a base64url HMAC-SHA256 signature over the signing input as received.
func sign(signingInput string, secret []byte) string {
	h := hmac.New(sha256.New, secret)
	h.Write([]byte(signingInput))
	return EncodeSegment(h.Sum(nil))
}

// signatureEqual compares encoded signatures in constant time after a length check.
// Comparing the encoded form rejects non-canonical encodings of the same bytes.
func signatureEqual(expected, got string) bool {
	if len(expected) != len(got) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(got)) == 1
}

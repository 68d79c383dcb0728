package jwt

import "errors"

var (
	ErrMalformedToken       = errors.New("jwt: malformed token")
	ErrUnsupportedAlgorithm = errors.New("jwt: unsupported algorithm")
	ErrInvalidSignature     = errors.New("jwt: invalid signature")
	ErrExpiredToken         = errors.New("jwt: token is expired")
	ErrVerification         = errors.New("jwt: verification failed")
	ErrMissingToken         = errors.New("jwt: missing token")
)

// Reason is a coarse, non-revealing rejection category.
type Reason string

const (
	ReasonMalformedToken       Reason = "MalformedToken"
	ReasonUnsupportedAlgorithm Reason = "UnsupportedAlgorithm"
	ReasonInvalidSignature     Reason = "InvalidSignature"
	ReasonExpired              Reason = "Expired"
	ReasonVerificationError    Reason = "VerificationError"
)

// Err returns the sentinel error for the reason, or nil for an empty reason.
func (r Reason) Err() error {
	switch r {
	case "":
		return nil
	case ReasonMalformedToken:
		return ErrMalformedToken
	case ReasonUnsupportedAlgorithm:
		return ErrUnsupportedAlgorithm
	case ReasonInvalidSignature:
		return ErrInvalidSignature
	case ReasonExpired:
		return ErrExpiredToken
	default:
		return ErrVerification
	}
}

func (r Reason) String() string { return string(r) }

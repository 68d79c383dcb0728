package suppression

import (
	"context"
	"errors"
	"strings"
)

// DefaultRedisKey is the Redis set holding suppressed addresses.
const DefaultRedisKey = "oneclick:suppressed"

var (
	// ErrEmptyEmail is returned for an address that is blank after normalisation.
	ErrEmptyEmail = errors.New("suppression: empty email")
	// ErrStore wraps failures of the backing store.
	ErrStore = errors.New("suppression: store failure")
)

// Store records addresses that asked to stop receiving mail.
// Add is idempotent.
type Store interface {
	Add(ctx context.Context, email string) error
	Contains(ctx context.Context, email string) (bool, error)
}

// Normalize trims surrounding whitespace and lower-cases email.
func Normalize(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", ErrEmptyEmail
	}
	return email, nil
}

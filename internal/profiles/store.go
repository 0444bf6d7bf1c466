package profiles

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no profile is stored for an email
var ErrNotFound = errors.New("profile not found")

// Store is the key-value persistence contract for profiles. Implementations
// must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, email string) (*Profile, error)
	Put(ctx context.Context, email string, profile *Profile) error
}

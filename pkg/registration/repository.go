package registration

import (
	"context"
	"errors"
)

// Common errors used by storage/use cases
var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidData = errors.New("invalid data")
)

// Storage maps logins to users.
// Add never validates; that is the use case's job.
type Storage interface {
	Add(ctx context.Context, user User) error
	Get(ctx context.Context, login string) (User, error)
	Clear(ctx context.Context) error
}

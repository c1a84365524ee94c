package user

import (
	"context"
)

// Repository defines the interface for user repository operations.
// Lookups only ever consider active users; a deactivated account behaves as
// if it does not exist.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

package repository

import (
	"context"

	"nearbuy/internal/errors"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserSummary is one row of the admin user overview.
type UserSummary struct {
	ID             int64
	Name           string
	Email          string
	FavoritesCount int64
}

// UserRepository defines the interface for user-related database operations.
// Account management and authentication live upstream; the service only
// reads identities and removes accounts on admin request.
type UserRepository interface {
	// UserExists reports whether a user with the given ID exists.
	UserExists(ctx context.Context, id int64) (bool, error)

	// DeleteUser removes a user by its ID.
	DeleteUser(ctx context.Context, id int64) error

	// CountUsers returns the total number of registered users.
	CountUsers(ctx context.Context) (int64, error)

	// ListUserSummaries retrieves all users with their favorite counts,
	// ordered by name.
	ListUserSummaries(ctx context.Context) ([]UserSummary, error)
}

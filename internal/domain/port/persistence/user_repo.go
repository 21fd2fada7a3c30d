package persistence

import (
	"context"

	"wallet/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrStorageFailure: If the datastore fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by exact, case-sensitive username
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has the given username
	// - ErrStorageFailure: If the datastore fails
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create creates a new user
	//
	// Possible errors:
	// - ErrDuplicateUsername: If the username is already taken
	// - ErrStorageFailure: If the datastore fails
	Create(ctx context.Context, user *entity.User) error
}

// Package store defines the persistence interfaces and sentinel errors
// shared by all storage backends.
package store

import (
	"context"

	"github.com/cnetwk/user-api/internal/domain"
	"github.com/google/uuid"
)

// UserStore defines the interface for user data persistence.
// Implementations perform no retries; any failure is terminal for the
// current request.
type UserStore interface {
	// Create saves a new user to the store.
	// The user must already carry a credential hash.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetAll retrieves every user in the store.
	// Returns an empty slice when the store is empty.
	GetAll(ctx context.Context) ([]*domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// The match is exact and case-sensitive.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update overwrites an existing user's details, keyed by ID.
	// The caller must provide a complete user object including HashedPassword.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrEmailExists if updating to an email that already exists.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	// This operation is permanent and cannot be undone.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of users in the store.
	Count(ctx context.Context) (int64, error)
}

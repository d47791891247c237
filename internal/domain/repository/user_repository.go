// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"shopsync/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUser is returned when a write collides with the username or
// email uniqueness constraints.
var ErrDuplicateUser = errors.New("username or email already taken")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user entity to the storage. Returns
	// ErrDuplicateUser when the username or email is already taken.
	Create(ctx context.Context, user *entity.User) error
}

package repository

import (
	"context"
	"errors"

	"shopsync/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for list persistence.
var (
	// ErrListNotFound is returned when a list is not found.
	ErrListNotFound = errors.New("list not found")
	// ErrItemNotFound is returned when a list item is not found.
	ErrItemNotFound = errors.New("list item not found")
	// ErrDuplicateGrant is returned when a sharing grant for the same user
	// already exists on the list.
	ErrDuplicateGrant = errors.New("sharing grant already exists")
)

// ListRepository defines the operations for shopping-list persistence,
// including items and sharing grants.
type ListRepository interface {
	// Create persists a new list with no items or grants.
	Create(ctx context.Context, list *entity.List) error

	// FindByID retrieves a single list with its items and grants.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.List, error)

	// FindByUser retrieves all lists the user owns or holds a grant on,
	// ordered by creation time.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.List, error)

	// AddItem appends an item to a list.
	AddItem(ctx context.Context, listID uuid.UUID, item *entity.ListItem) error

	// SetItemBought updates a single item's bought flag.
	SetItemBought(ctx context.Context, listID, itemID uuid.UUID, bought bool) error

	// AddGrant appends a sharing grant to a list. Returns ErrDuplicateGrant
	// when the target user already holds one.
	AddGrant(ctx context.Context, listID uuid.UUID, grant *entity.SharingGrant) error
}

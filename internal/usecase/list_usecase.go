package usecase

import (
	"context"

	"shopsync/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateListInput defines the data required to create a shopping list.
type CreateListInput struct {
	UserID uuid.UUID
	Name   string
}

// AddItemInput defines the data required to append an item to a list.
type AddItemInput struct {
	UserID uuid.UUID
	ListID uuid.UUID
	Text   string
}

// ToggleItemInput identifies the item whose bought flag should flip.
type ToggleItemInput struct {
	UserID uuid.UUID
	ListID uuid.UUID
	ItemID uuid.UUID
}

// ShareListInput defines the data required to grant another user access.
// CustomRelationship is only consulted when Relationship is "other".
type ShareListInput struct {
	UserID             uuid.UUID
	ListID             uuid.UUID
	TargetUsername     string
	Relationship       string
	CustomRelationship string
}

// ShareQRInput identifies the list to encode as a share invite QR code.
type ShareQRInput struct {
	UserID uuid.UUID
	ListID uuid.UUID
}

// ListUsecase defines the interface for shopping-list operations.
// Mutating operations return the full updated list so clients can replace
// their local copy in one step.
type ListUsecase interface {
	CreateList(ctx context.Context, input *CreateListInput) (*entity.List, error)
	GetLists(ctx context.Context, userID uuid.UUID) ([]*entity.List, error)
	AddItem(ctx context.Context, input *AddItemInput) (*entity.List, error)
	ToggleItem(ctx context.Context, input *ToggleItemInput) (*entity.List, error)
	ShareList(ctx context.Context, input *ShareListInput) (*entity.List, error)
	ShareQR(ctx context.Context, input *ShareQRInput) ([]byte, error)
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Relationship labels a sharing grant. "other" must be replaced by the
// sharer's custom label before the grant is stored.
type Relationship string

const (
	RelationshipFamily    Relationship = "family"
	RelationshipFriend    Relationship = "friend"
	RelationshipNeighbour Relationship = "neighbour"
	RelationshipOther     Relationship = "other"
)

// IsValid reports whether the relationship is one of the accepted labels.
func (r Relationship) IsValid() bool {
	switch r {
	case RelationshipFamily, RelationshipFriend, RelationshipNeighbour, RelationshipOther:
		return true
	}

	return false
}

// List is a shopping list owned by one user and optionally shared with others.
type List struct {
	ID         uuid.UUID      // The unique identifier for the list.
	Name       string         // Display name of the list.
	CreatedBy  uuid.UUID      // The owning user's ID.
	SharedWith []SharingGrant // Grants giving other users access to this list.
	Items      []ListItem     // The list's items, in insertion order.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SharingGrant gives one user access to a list under a relationship label.
type SharingGrant struct {
	ID           uuid.UUID // The unique identifier for the grant record.
	UserID       uuid.UUID // The user being granted access.
	Relationship string    // family/friend/neighbour or a custom label.
	CreatedAt    time.Time
}

// ListItem is a single entry on a shopping list.
type ListItem struct {
	ID        uuid.UUID // The unique identifier for the item.
	Text      string    // What to buy.
	Bought    bool      // Whether the item has been checked off.
	CreatedAt time.Time
}

// IsOwnedBy reports whether the given user owns the list.
func (l *List) IsOwnedBy(userID uuid.UUID) bool {
	return l.CreatedBy == userID
}

// IsSharedWith reports whether the given user holds a sharing grant.
func (l *List) IsSharedWith(userID uuid.UUID) bool {
	for _, grant := range l.SharedWith {
		if grant.UserID == userID {
			return true
		}
	}

	return false
}

// CanAccess reports whether the user may read or mutate the list's items.
// Only the owner may share the list; grantees may not.
func (l *List) CanAccess(userID uuid.UUID) bool {
	return l.IsOwnedBy(userID) || l.IsSharedWith(userID)
}

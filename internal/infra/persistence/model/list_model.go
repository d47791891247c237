package model

import (
	"time"

	"github.com/google/uuid"
)

// ListModel mirrors the 'lists' table.
type ListModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items      []ListItemModel     `gorm:"foreignKey:ListID"`
	SharedWith []SharingGrantModel `gorm:"foreignKey:ListID"`
}

// TableName explicitly sets the table name for GORM.
func (ListModel) TableName() string {
	return "lists"
}

// ListItemModel mirrors the 'list_items' table. Insertion order is preserved
// through the created_at timestamp.
type ListItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ListID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Text      string    `gorm:"type:text;not null"`
	Bought    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListItemModel) TableName() string {
	return "list_items"
}

// SharingGrantModel mirrors the 'sharing_grants' table. One grant per
// (list, user) pair, enforced by the composite unique index.
type SharingGrantModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ListID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_grants_list_user"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_grants_list_user"`
	Relationship string    `gorm:"type:varchar(50);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SharingGrantModel) TableName() string {
	return "sharing_grants"
}

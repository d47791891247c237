// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record at the center of the system. Username and email
// are both unique; the password is only ever stored as a bcrypt hash.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // Login identifier, unique, at most 10 characters.
	Email        string    // Contact address, unique.
	PasswordHash string    // bcrypt hash of the password. Never the raw password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"shopsync/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// RefreshInput carries the refresh token presented for a new access token.
type RefreshInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens after a successful registration or login.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshOutput returns the newly minted access token. The refresh token
// itself is never rotated.
type RefreshOutput struct {
	AccessToken string
}

// UserUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}

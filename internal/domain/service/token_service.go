// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verification failures, ordered from "cannot trust the token at all" to
// "trusted but unusable".
var (
	// ErrInvalidToken is returned when the signature or format check fails,
	// or the token is expired. A token expiring exactly now is expired.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMalformedPayload is returned when the signature verifies but the
	// payload lacks a non-empty user identifier.
	ErrMalformedPayload = errors.New("token payload missing user identifier")
)

// TokenUser is the identity object embedded in every token payload.
type TokenUser struct {
	ID string `json:"id"`
}

// Claims is the JWT payload for both token classes: {"user":{"id":...}}
// plus the registered expiry/issued-at claims.
type Claims struct {
	User TokenUser `json:"user"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies signed, time-bounded identity assertions.
// Issuance is pure computation; verification is a signature plus clock check.
type TokenService interface {
	// IssueAccessToken creates a short-lived access token for the user.
	IssueAccessToken(userID uuid.UUID) (string, error)

	// IssueRefreshToken creates a longer-lived refresh token for the user.
	IssueRefreshToken(userID uuid.UUID) (string, error)

	// VerifyAccessToken checks an access token and returns the embedded
	// identity. Fails with ErrInvalidToken or ErrMalformedPayload.
	VerifyAccessToken(tokenString string) (uuid.UUID, error)

	// VerifyRefreshToken checks a refresh token and returns the embedded
	// identity. Fails with ErrInvalidToken or ErrMalformedPayload.
	VerifyRefreshToken(tokenString string) (uuid.UUID, error)

	// RefreshTokenDuration returns the configured refresh token lifetime,
	// used to bound the cookie's max age.
	RefreshTokenDuration() time.Duration
}

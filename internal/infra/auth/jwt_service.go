// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"shopsync/config"
	"shopsync/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// A single shared secret signs both token classes unless an independent
// refresh secret is configured.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	refreshSecret := cfg.SecretKey.Refresh
	if refreshSecret == "" {
		refreshSecret = cfg.SecretKey.Access
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: refreshSecret,
		accessTTL:     time.Minute * 15,
		refreshTTL:    time.Hour * 24 * 7,
	}, nil
}

// IssueAccessToken creates a short-lived access token for the given user.
func (s *jwtService) IssueAccessToken(userID uuid.UUID) (string, error) {
	return s.issueToken(userID, s.accessTTL, s.accessSecret)
}

// IssueRefreshToken creates a longer-lived refresh token for the given user.
func (s *jwtService) IssueRefreshToken(userID uuid.UUID) (string, error) {
	return s.issueToken(userID, s.refreshTTL, s.refreshSecret)
}

// VerifyAccessToken checks an access token and returns the embedded identity.
func (s *jwtService) VerifyAccessToken(tokenString string) (uuid.UUID, error) {
	return s.verifyToken(tokenString, s.accessSecret)
}

// VerifyRefreshToken checks a refresh token and returns the embedded identity.
func (s *jwtService) VerifyRefreshToken(tokenString string) (uuid.UUID, error) {
	return s.verifyToken(tokenString, s.refreshSecret)
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// issueToken is a private helper to create a JWT carrying the {"user":{"id"}} payload.
func (s *jwtService) issueToken(userID uuid.UUID, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		User: service.TokenUser{ID: userID.String()},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// verifyToken checks signature and expiry, then requires a usable identity in
// the payload. Signature/expiry failures and payload failures are distinct so
// callers can tell a forged token from a structurally broken one.
func (s *jwtService) verifyToken(tokenString, secret string) (uuid.UUID, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return uuid.Nil, service.ErrInvalidToken
	}

	if claims.User.ID == "" {
		return uuid.Nil, service.ErrMalformedPayload
	}

	userID, err := uuid.Parse(claims.User.ID)
	if err != nil {
		return uuid.Nil, service.ErrMalformedPayload
	}

	return userID, nil
}

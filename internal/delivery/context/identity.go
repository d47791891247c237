package context

import (
	"context"

	"github.com/google/uuid"
)

// identityKey is unexported so only this package can attach an identity.
// Downstream code cannot forge an authenticated user by writing a raw
// string into the context.
type identityKey struct{}

// Identity is the verified caller attached to a request context after
// successful token verification.
type Identity struct {
	UserID uuid.UUID
}

// WithIdentity returns a new context carrying the verified caller.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity extracts the verified caller from the context.
// The second return value is false for unauthenticated requests.
func GetIdentity(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)

	return identity, ok
}

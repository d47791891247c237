// Package middleware contains the HTTP-specific middleware for the Echo server.
package middleware

import (
	"strings"

	deliverycontext "shopsync/internal/delivery/context"
	"shopsync/internal/delivery/http/response"
	"shopsync/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and attaches the verified
// identity to the request context. Handlers downstream can rely on the
// identity being present and verified.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		userID, err := m.tokenSvc.VerifyAccessToken(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrMalformedPayload) {
				return response.Unauthorized(c, "MALFORMED_PAYLOAD", "Invalid token payload")
			}

			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired token")
		}

		ctx := deliverycontext.WithIdentity(c.Request().Context(), deliverycontext.Identity{UserID: userID})
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

package handler

import (
	"net/http"
	"time"

	deliverycontext "shopsync/internal/delivery/context"
	domainerrors "shopsync/internal/domain/errors"
	"shopsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user profile handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// profileResponse is the public view of a user. The password hash never
// leaves the domain layer.
type profileResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Me returns the profile of the authenticated user.
func (h *UserHandler) Me(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, profileResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
}

// currentUser extracts the verified identity placed on the context by the
// auth middleware.
func currentUser(c echo.Context) (uuid.UUID, error) {
	identity, ok := deliverycontext.GetIdentity(c.Request().Context())
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthenticated
	}

	return identity.UserID, nil
}

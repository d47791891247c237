package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "shopsync/internal/delivery/context"
	"shopsync/internal/domain/entity"
	domainerrors "shopsync/internal/domain/errors"
	mockusecase "shopsync/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Me_Success(t *testing.T) {
	userID := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)
	uc := mockusecase.NewMockUserUsecase(t)

	uc.EXPECT().GetProfile(mock.Anything, userID).Return(&entity.User{
		ID:           userID,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$secret",
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil)

	h := NewUserHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	ctx := deliverycontext.WithIdentity(req.Context(), deliverycontext.Identity{UserID: userID})
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Me(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, userID.String(), body["id"])
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "alice@example.com", body["email"])

	// The hash must never appear in any serialized form.
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestUserHandler_Me_MissingIdentity(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Me(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestUserHandler_Me_UserNotFound(t *testing.T) {
	userID := uuid.New()
	uc := mockusecase.NewMockUserUsecase(t)

	uc.EXPECT().GetProfile(mock.Anything, userID).Return(nil, domainerrors.ErrUserNotFound)

	h := NewUserHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	ctx := deliverycontext.WithIdentity(req.Context(), deliverycontext.Identity{UserID: userID})
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Me(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

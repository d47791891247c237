package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shopsync/config"
	"shopsync/internal/delivery/http/validator"
	"shopsync/internal/domain/entity"
	domainerrors "shopsync/internal/domain/errors"
	mockservice "shopsync/internal/mocks/service"
	mockusecase "shopsync/internal/mocks/usecase"
	"shopsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestAuthHandler_Register_Success(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	tokenSvc := mockservice.NewMockTokenService(t)

	uc.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}).Return(&usecase.AuthOutput{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User:         &entity.User{ID: uuid.New(), Username: "alice"},
	}, nil)
	tokenSvc.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	h := NewAuthHandler(uc, tokenSvc, &config.Config{}, slog.Default())

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"secret123"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "access-token", body["token"])

	cookie := findCookie(t, rec, "refreshToken")
	require.NotNil(t, cookie)
	assert.Equal(t, "refresh-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.False(t, cookie.Secure)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestAuthHandler_Register_UsernameTooLong(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	tokenSvc := mockservice.NewMockTokenService(t)

	h := NewAuthHandler(uc, tokenSvc, &config.Config{}, slog.Default())

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"elevenchars","email":"a@example.com","password":"secret123"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Register_ShortPasswordAccepted(t *testing.T) {
	// Any non-empty password is valid input; there is no strength policy.
	uc := mockusecase.NewMockUserUsecase(t)
	tokenSvc := mockservice.NewMockTokenService(t)

	uc.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "abc",
	}).Return(&usecase.AuthOutput{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User:         &entity.User{ID: uuid.New(), Username: "alice"},
	}, nil)
	tokenSvc.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	h := NewAuthHandler(uc, tokenSvc, &config.Config{}, slog.Default())

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"abc"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Register_EmptyPassword(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	tokenSvc := mockservice.NewMockTokenService(t)

	h := NewAuthHandler(uc, tokenSvc, &config.Config{}, slog.Default())

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":""}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	tokenSvc := mockservice.NewMockTokenService(t)

	uc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrDuplicateUser)

	h := NewAuthHandler(uc, tokenSvc, &config.Config{}, slog.Default())

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"secret123"}`)
	err := h.Register(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUser)
	assert.Nil(t, findCookie(t, rec, "refreshToken"))
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	tokenSvc := mockservice.NewMockTokenService(t)

	uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{
		Username: "alice",
		Password: "secret123",
	}).Return(&usecase.AuthOutput{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User:         &entity.User{ID: uuid.New(), Username: "alice"},
	}, nil)
	tokenSvc.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	h := NewAuthHandler(uc, tokenSvc, &config.Config{}, slog.Default())

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/login",
		`{"username":"alice","password":"secret123"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "access-token", body["token"])
	require.NotNil(t, findCookie(t, rec, "refreshToken"))
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	tokenSvc := mockservice.NewMockTokenService(t)

	uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	h := NewAuthHandler(uc, tokenSvc, &config.Config{}, slog.Default())

	c, _ := newAuthTestContext(t, http.MethodPost, "/auth/login",
		`{"username":"alice","password":"wrong"}`)
	err := h.Login(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	tokenSvc := mockservice.NewMockTokenService(t)

	uc.EXPECT().Refresh(mock.Anything, &usecase.RefreshInput{
		RefreshToken: "refresh-token",
	}).Return(&usecase.RefreshOutput{AccessToken: "new-access"}, nil)

	h := NewAuthHandler(uc, tokenSvc, &config.Config{}, slog.Default())

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/refresh", "")
	c.Request().AddCookie(&http.Cookie{Name: "refreshToken", Value: "refresh-token"})
	require.NoError(t, h.Refresh(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "new-access", body["token"])

	// Refresh never rotates the cookie.
	assert.Nil(t, findCookie(t, rec, "refreshToken"))
}

func TestAuthHandler_Refresh_MissingCookie(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	tokenSvc := mockservice.NewMockTokenService(t)

	h := NewAuthHandler(uc, tokenSvc, &config.Config{}, slog.Default())

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/refresh", "")
	require.NoError(t, h.Refresh(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Refresh_SessionExpired(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	tokenSvc := mockservice.NewMockTokenService(t)

	uc.EXPECT().Refresh(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUnauthenticated)

	h := NewAuthHandler(uc, tokenSvc, &config.Config{}, slog.Default())

	c, _ := newAuthTestContext(t, http.MethodPost, "/auth/refresh", "")
	c.Request().AddCookie(&http.Cookie{Name: "refreshToken", Value: "stale-token"})
	err := h.Refresh(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

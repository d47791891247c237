// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"shopsync/config"
	"shopsync/internal/delivery/http/response"
	"shopsync/internal/domain/service"
	"shopsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// refreshCookieName is the cookie carrying the refresh token. The cookie is
// HttpOnly so page scripts can never read it.
const refreshCookieName = "refreshToken"

// AuthHandler holds dependencies for registration and session handlers.
type AuthHandler struct {
	uc       usecase.UserUsecase
	tokenSvc service.TokenService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		cfg:      cfg,
		logger:   logger,
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,max=10"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// tokenResponse is the success body for register, login and refresh.
type tokenResponse struct {
	Token string `json:"token"`
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.RefreshToken)

	return c.JSON(http.StatusOK, tokenResponse{Token: output.AccessToken})
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.RefreshToken)

	return c.JSON(http.StatusOK, tokenResponse{Token: output.AccessToken})
}

// Refresh exchanges the refresh token cookie for a new access token.
// The cookie is never rotated here.
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Refresh token cookie is missing")
	}

	output, err := h.uc.Refresh(c.Request().Context(), &usecase.RefreshInput{
		RefreshToken: cookie.Value,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: output.AccessToken})
}

// setRefreshCookie attaches the refresh token as an HttpOnly strict-same-site
// cookie. Secure is tied to the environment so local development over plain
// HTTP still works.
func (h *AuthHandler) setRefreshCookie(c echo.Context, refreshToken string) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   int(h.tokenSvc.RefreshTokenDuration().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	})
}

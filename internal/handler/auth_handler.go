package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/service"
)

// AuthHandler handles the owner session endpoints.
type AuthHandler struct {
	authService service.AuthService
	accessTTL   time.Duration
	refreshTTL  time.Duration
	production  bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		accessTTL:   time.Duration(cfg.AccessTokenDays) * 24 * time.Hour,
		refreshTTL:  time.Duration(cfg.RefreshTokenDays) * 24 * time.Hour,
		production:  cfg.IsProduction(),
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest represents a token refresh request. The token may come
// from the refreshToken cookie instead.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordRequest represents a password change request.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (h *AuthHandler) setCookie(c echo.Context, name, value string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteStrictMode,
	})
}

// refreshTokenFrom prefers the httpOnly cookie and falls back to the body.
func refreshTokenFrom(c echo.Context, body string) string {
	if cookie, err := c.Cookie("refreshToken"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return body
}

// Login godoc
// @Summary Authenticate the portfolio owner
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setCookie(c, "token", result.AccessToken, h.accessTTL)
	h.setCookie(c, "refreshToken", result.RefreshToken, h.refreshTTL)

	return respond(c, http.StatusOK, "Login successful", result)
}

// Refresh godoc
// @Summary Exchange a refresh token for a new access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest false "Refresh token (or refreshToken cookie)"
// @Success 200 {object} Response
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/refresh-token [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	_ = c.Bind(&req)

	accessToken, err := h.authService.RefreshToken(c.Request().Context(), refreshTokenFrom(c, req.RefreshToken))
	if err != nil {
		return err
	}

	h.setCookie(c, "token", accessToken, h.accessTTL)

	return respond(c, http.StatusOK, "Token refreshed successfully", echo.Map{
		"accessToken": accessToken,
	})
}

// Logout godoc
// @Summary Revoke the current session tokens
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req RefreshRequest
	_ = c.Bind(&req)

	err := h.authService.Logout(c.Request().Context(), auth.ClaimsFrom(c), refreshTokenFrom(c, req.RefreshToken))
	if err != nil {
		return err
	}

	h.clearCookie(c, "token")
	h.clearCookie(c, "refreshToken")

	return respond(c, http.StatusOK, "Logout successful", nil)
}

// ChangePassword godoc
// @Summary Change the owner password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Old and new passwords"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	identity := auth.IdentityFrom(c)
	if identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.authService.ChangePassword(c.Request().Context(), identity.ID, req.OldPassword, req.NewPassword); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Password changed successfully", nil)
}

// GetProfile godoc
// @Summary Fetch the owner profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/profile [get]
func (h *AuthHandler) GetProfile(c echo.Context) error {
	identity := auth.IdentityFrom(c)
	if identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	profile, err := h.authService.GetProfile(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Profile fetched successfully", profile)
}

// UpdateProfile godoc
// @Summary Update the owner profile
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ProfileUpdate true "Profile fields"
// @Success 200 {object} Response
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/profile [patch]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req service.ProfileUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	identity := auth.IdentityFrom(c)
	if identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	profile, err := h.authService.UpdateProfile(c.Request().Context(), identity.ID, req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Profile updated successfully", profile)
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gymcore/admin-console/internal/api/metrics"
	"github.com/gymcore/admin-console/internal/api/middleware"
	"github.com/gymcore/admin-console/internal/core/domain"
	"github.com/gymcore/admin-console/internal/core/session"
)

// Authenticator exchanges credentials for a bearer token at the upstream API.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// SessionWriter persists and erases console session credentials.
type SessionWriter interface {
	SetToken(ctx context.Context, sessionID, token string) (session.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

type AuthHandler struct {
	upstream   Authenticator
	sessions   SessionWriter
	cookieTTL  time.Duration
	secureOnly bool
}

func NewAuthHandler(upstream Authenticator, sessions SessionWriter, cookieTTL time.Duration, secureOnly bool) *AuthHandler {
	if cookieTTL <= 0 {
		cookieTTL = 24 * time.Hour
	}
	return &AuthHandler{upstream: upstream, sessions: sessions, cookieTTL: cookieTTL, secureOnly: secureOnly}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// Login authenticates against the upstream API and opens a console session.
//
// @Summary      Sign in to the admin console
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.upstream.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return domain.ErrInvalidCredentials
		}
		return err
	}

	sid := uuid.NewString()
	sess, err := h.sessions.SetToken(c.Request().Context(), sid, token)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sid,
		Path:     "/",
		Expires:  time.Now().Add(h.cookieTTL),
		HttpOnly: true,
		Secure:   h.secureOnly,
		SameSite: http.SameSiteLaxMode,
	})

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Username: sess.Username(),
		Roles:    sess.Roles(),
	})
}

// Logout erases the persisted credential and expires the session cookie.
//
// @Summary      Sign out of the admin console
// @Tags         auth
// @Success      204  "session closed"
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil {
		if err := h.sessions.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureOnly,
		SameSite: http.SameSiteLaxMode,
	})
	return c.NoContent(http.StatusNoContent)
}

// LoginPage is the landing target for unauthenticated redirects.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
}

// UnauthorizedPage is the landing target for authenticated sessions lacking
// the required role.
func (h *AuthHandler) UnauthorizedPage(c echo.Context) error {
	return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient role"})
}

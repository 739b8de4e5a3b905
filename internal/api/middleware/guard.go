package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gymcore/admin-console/internal/api/metrics"
	"github.com/gymcore/admin-console/internal/core/domain"
	"github.com/gymcore/admin-console/internal/core/session"
	"github.com/gymcore/admin-console/internal/gymapi"
)

// SessionCookie carries the console session identifier.
const SessionCookie = "gym_admin_sid"

const (
	// SessionContextKey is where guards stash the resolved session for handlers.
	SessionContextKey = "session"

	loginPath        = "/login"
	unauthorizedPath = "/unauthorized"
)

// SessionSource resolves the session (and its raw bearer token) behind a
// session cookie identifier.
type SessionSource interface {
	Resolve(ctx context.Context, sessionID string) (session.Session, string)
}

// resolve rebuilds the session for this request and, when a credential is
// present, threads the token into the request context so the API client
// attaches it upstream.
func resolve(c echo.Context, source SessionSource) session.Session {
	var sid string
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		sid = cookie.Value
	}
	sess, token := source.Resolve(c.Request().Context(), sid)
	if token != "" {
		c.SetRequest(c.Request().WithContext(gymapi.WithToken(c.Request().Context(), token)))
	}
	return sess
}

// AdminOnly admits navigation only for authenticated sessions holding the
// Administrator role. Rejections are redirects, never errors: an
// unauthenticated session goes to the login page, an authenticated session
// without the role goes to the unauthorized page.
func AdminOnly(source SessionSource) echo.MiddlewareFunc {
	return RequireRoles(source, domain.RoleAdministrator)
}

// RequireRoles admits navigation when the session is authenticated and either
// no roles are required or the session's role set intersects the requirement.
func RequireRoles(source SessionSource, required ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := resolve(c, source)

			if !sess.IsAuthenticated() {
				metrics.GuardDecisionsTotal.WithLabelValues("login_redirect").Inc()
				return c.Redirect(http.StatusFound, loginPath)
			}
			if !sess.HasAnyRole(required...) {
				metrics.GuardDecisionsTotal.WithLabelValues("unauthorized_redirect").Inc()
				return c.Redirect(http.StatusFound, unauthorizedPath)
			}

			metrics.GuardDecisionsTotal.WithLabelValues("granted").Inc()
			c.Set(SessionContextKey, sess)
			return next(c)
		}
	}
}

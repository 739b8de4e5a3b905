package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gymcore/admin-console/internal/core/session"
)

// ctxSession extracts the session injected by the route guard and performs a
// fast-fail check before any store call: presence proves the guard ran. A
// missing session means the route was wired without its guard, so reject
// rather than serve unauthenticated.
func ctxSession(c echo.Context) (session.Session, error) {
	sess, ok := c.Get("session").(session.Session)
	if !ok || !sess.IsAuthenticated() {
		return session.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return sess, nil
}

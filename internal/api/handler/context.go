package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a missing user id means the middleware
// did not run on this route, which is a wiring bug surfaced as 401.
func ctxIdentity(c echo.Context) (userID, email, role string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	email, _ = c.Get("email").(string)
	role, _ = c.Get("role").(string)
	return userID, email, role, nil
}

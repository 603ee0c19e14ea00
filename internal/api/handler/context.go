package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crediya/auth-service/internal/api/middleware"
)

// ctxSubject extracts the token subject injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty subject
// proves the middleware ran for this route.
func ctxSubject(c echo.Context) (string, error) {
	subject, _ := c.Get(middleware.CtxSubject).(string)
	if subject == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return subject, nil
}

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/crediya/auth-service/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. The
// correlation id echoes the request id so a failure can be traced from the
// client response back through the logs.
type errorResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	Code          int    `json:"code"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps every domain failure cause to its fixed HTTP status code.
//   - Logs unexpected errors with full cause detail without leaking them
//     to the client.
//   - Renders a consistent JSON envelope carrying message, status and
//     correlation id.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{
			Success:       false,
			Message:       msg,
			Code:          code,
			CorrelationID: correlationID(c),
		})
	}
}

// resolveError is the exhaustive mapping from failure causes to status
// codes. Anything unrecognized collapses to a generic 500.
func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors: bind failures, 404 from the router, 405, etc.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrMissingRole):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrRoleNotFound):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrEmailInUse):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrTokenMissing):
		return http.StatusUnauthorized, "token not provided"
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, "token has expired"
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "you do not have permission to access this resource"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("correlation_id", correlationID(c)).
		Msg("unhandled error")

	return http.StatusInternalServerError, "an unexpected error occurred"
}

// correlationID returns the request id assigned by the RequestID middleware,
// falling back to one supplied by the caller.
func correlationID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

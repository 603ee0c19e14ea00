package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/crediya/auth-service/internal/api/metrics"
	"github.com/crediya/auth-service/internal/core/domain"
	"github.com/crediya/auth-service/internal/core/token"
)

// Context keys under which validated claims are exposed to handlers.
const (
	CtxSubject        = "subject"
	CtxEmail          = "email"
	CtxNumberDocument = "number_document"
	CtxAuthorities    = "authorities"
)

// Auth drives the per-request authorization decision. For every routed
// request it resolves the policy rule, then walks token extraction, token
// validation and authority evaluation, failing terminally at the first
// violated step. Failures surface as domain errors for the central error
// handler to classify; the middleware itself holds no mutable state.
func Auth(verifier *token.Verifier, policy Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rule := policy.Lookup(c.Request().Method, c.Path())
			if rule.Access == Public {
				return next(c)
			}

			raw, err := bearerToken(c)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return err
			}

			claims, err := verifier.Verify(raw)
			if err != nil {
				reason := "invalid"
				if errors.Is(err, domain.ErrTokenExpired) {
					reason = "expired"
				}
				metrics.TokenRejectionsTotal.WithLabelValues(reason).Inc()
				return err
			}

			authorities := claims.Authorities()
			c.Set(CtxSubject, claims.Subject)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxNumberDocument, claims.NumberDocument)
			c.Set(CtxAuthorities, authorities)

			if rule.Access == WithAuthorities && !hasAny(authorities, rule.Authorities) {
				metrics.TokenRejectionsTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}

			return next(c)
		}
	}
}

// bearerToken extracts the raw token from the Authorization header. A header
// that is absent or not in "Bearer <token>" shape counts as no token at all.
func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", domain.ErrTokenMissing
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", domain.ErrTokenMissing
	}
	return parts[1], nil
}

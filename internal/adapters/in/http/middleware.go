package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"logistics/internal/core/domain/model/principal"
	"logistics/internal/core/ports"
)

const principalContextKey = "principal"

// BearerAuth returns middleware that requires a valid bearer token and places
// the verified principal into the request context. A missing credential is
// 401 TOKEN_MISSING; a present but unverifiable one is 403 TOKEN_INVALID.
func BearerAuth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"code": "TOKEN_MISSING"})
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"code": "TOKEN_MISSING"})
			}

			p, err := verifier.Verify(token)
			if err != nil {
				return c.JSON(http.StatusForbidden, echo.Map{"code": "TOKEN_INVALID"})
			}

			c.Set(principalContextKey, p)
			return next(c)
		}
	}
}

// actorFrom extracts the authenticated principal placed by BearerAuth.
func actorFrom(c echo.Context) (principal.Principal, bool) {
	p, ok := c.Get(principalContextKey).(principal.Principal)
	return p, ok
}

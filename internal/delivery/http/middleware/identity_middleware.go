package middleware

import (
	"strconv"

	"nearbuy/internal/delivery/http/response"
	domainerrors "nearbuy/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HeaderXUserID carries the caller identity established by the upstream
// auth gateway. The header is trusted; this service performs no
// authentication of its own.
const HeaderXUserID = "X-User-Id"

const contextKeyUserID = "userID"

// IdentityMiddleware extracts the caller identity from the trusted header.
type IdentityMiddleware struct{}

// NewIdentityMiddleware creates a new identity middleware
func NewIdentityMiddleware() *IdentityMiddleware {
	return &IdentityMiddleware{}
}

// Resolve parses the identity header when present. A missing or malformed
// header leaves the request anonymous; routes that need an identity gate
// on RequireIdentity instead.
func (m *IdentityMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(HeaderXUserID)
		if raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
				c.Set(contextKeyUserID, id)
			}
		}

		return next(c)
	}
}

// RequireIdentity rejects requests that did not resolve to a caller identity.
func (m *IdentityMiddleware) RequireIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := GetUserID(c); !ok {
			return response.HandleAppError(c, domainerrors.ErrIdentityRequired)
		}

		return next(c)
	}
}

// GetUserID returns the resolved caller identity, if any.
func GetUserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(contextKeyUserID).(int64)

	return id, ok
}

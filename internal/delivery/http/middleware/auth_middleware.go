// Package middleware contains HTTP middleware for the delivery layer.
package middleware

import (
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides the request guards. Both strategies resolve a
// caller identity and attach it to the request context; they differ only in
// where the identity comes from and how much it is trusted.
type AuthMiddleware struct {
	issuer service.TokenIssuer
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(issuer service.TokenIssuer) *AuthMiddleware {
	return &AuthMiddleware{issuer: issuer}
}

// TokenIdentity validates the Authorization bearer token and attaches the
// identity recovered from its signed claims. Requests without a valid token
// are rejected.
func (m *AuthMiddleware) TokenIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "IDENTITY_MISSING", "Caller identity is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		identity, err := m.issuer.Decode(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		attachIdentity(c, identity)

		return next(c)
	}
}

// HeaderIdentity reads the caller identity from the X-User-Id header without
// verifying it. It only asserts that some identity was presented; ownership
// checks downstream still hit the database. Suitable for traffic behind a
// gateway that already authenticated the caller.
func (m *AuthMiddleware) HeaderIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		headerValue := c.Request().Header.Get("X-User-Id")
		if headerValue == "" {
			return response.Unauthorized(c, "IDENTITY_MISSING", "Caller identity is missing")
		}

		userID, err := uuid.Parse(headerValue)
		if err != nil {
			return response.Unauthorized(c, "IDENTITY_MISSING", "Caller identity is malformed")
		}

		attachIdentity(c, &entity.Identity{ID: userID})

		return next(c)
	}
}

// attachIdentity stores the identity on both the echo context and the
// request context so usecases can read it without knowing about echo.
func attachIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(deliverycontext.KeyIdentity), identity)

	req := c.Request()
	c.SetRequest(req.WithContext(deliverycontext.WithIdentity(req.Context(), identity)))
}

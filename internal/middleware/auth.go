package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/drink-trail/internal/services"
	"github.com/localnerve/drink-trail/internal/types"
)

const userKey = "user"

// initializer is implemented by validators that need the first request's
// origin before they can validate
type initializer interface {
	Init(requestProtocol, requestHost string) error
}

// AuthUser validates that the request has user role authorization
func AuthUser(validator services.SessionValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, validator, []string{"user"}, "data.authorization.user")
	}
}

// authorize performs the authorization check
func authorize(c *fiber.Ctx, validator services.SessionValidator, roles []string, errorType string) error {
	if v, ok := validator.(initializer); ok {
		if err := v.Init(c.Protocol(), c.Hostname()); err != nil {
			return &types.CustomError{
				Code:    fiber.StatusServiceUnavailable,
				Message: fmt.Sprintf("Authorizer unavailable: %v", err),
				Type:    errorType,
			}
		}
	}

	// Get session cookie
	session := c.Cookies("cookie_session")
	if session == "" {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "Authorizer cookie \"cookie_session\" not found",
			Type:    errorType,
		}
	}

	// Validate session
	user, err := validator.ValidateSession(session, roles)
	if err != nil {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: fmt.Sprintf("Invalid session: %v", err),
			Type:    errorType,
		}
	}

	// Set user data in context
	c.Locals(userKey, user)

	return c.Next()
}

// UserID returns the authenticated user's id, empty when the service runs
// without authentication
func UserID(c *fiber.Ctx) string {
	if user, ok := c.Locals(userKey).(*services.SessionUser); ok && user != nil {
		return user.ID
	}
	return ""
}

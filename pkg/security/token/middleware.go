package token

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/thesanmark/auth-api/pkg/auth"
)

const localsUserKey = "authUser"

// NewAuthMiddleware returns a Fiber middleware that validates the Bearer
// token, loads its owning user and threads the identity to handlers via
// request locals. Guarded handlers read it back with CurrentUser.
func NewAuthMiddleware(issuer *Issuer, users auth.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := bearerToken(c.Get("Authorization"))
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "missing bearer token",
			})
		}
		record, err := issuer.Verify(c.Context(), tokenStr)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "invalid or expired token",
			})
		}
		user, err := users.GetByID(c.Context(), record.UserID)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "invalid or expired token",
			})
		}
		c.Locals(localsUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the identity resolved by the auth middleware.
func CurrentUser(c *fiber.Ctx) (auth.User, bool) {
	user, ok := c.Locals(localsUserKey).(auth.User)
	return user, ok
}

// bearerToken extracts the token from an Authorization header value.
// Supports both "Bearer <token>" and a bare "<token>".
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 {
		if strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return header
}

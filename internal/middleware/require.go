package middleware

import (
	"github.com/collabmatch/backend/internal/rbac"
	"github.com/gofiber/fiber/v2"
)

// RequirePermission gates a route by the caller's user type. Ownership and
// thread-participation checks stay in the services.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rbac.HasPermission(GetUserType(c), permission) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "operation not allowed for this account type"})
		}
		return c.Next()
	}
}

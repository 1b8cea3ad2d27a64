package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/service-marketplace/models"
)

// RequireRole checks if the authenticated user has the required role. The
// role is carried in the JWT claims, so no database lookup is needed.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User role not found in context",
			})
		}

		if models.Role(userRole) != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have the required role to perform this action",
			})
		}

		return c.Next()
	}
}

package middleware

import "github.com/gofiber/fiber/v2"

func Role(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Caller is set by the Auth middleware
		caller, ok := CallerFrom(c)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied: invalid role"})
		}

		for _, role := range allowedRoles {
			if role == caller.Role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied: role " + caller.Role + " is not allowed"})
	}
}

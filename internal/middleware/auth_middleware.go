package middleware

import (
	"strings"

	"punchclock-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

const callerKey = "caller"

// Auth validates the bearer token against the current employee record and
// stores the caller identity in the request context for handlers.
func Auth(auth *usecase.AuthUsecase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization token not found"})
		}

		// Format header: "Bearer <token>"
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		caller, err := auth.Authenticate(c.UserContext(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token is invalid or expired"})
		}

		c.Locals(callerKey, caller)
		c.Locals("employee_id", caller.EmployeeID)
		c.Locals("role", caller.Role)

		return c.Next()
	}
}

// CallerFrom returns the identity set by Auth.
func CallerFrom(c *fiber.Ctx) (usecase.Caller, bool) {
	caller, ok := c.Locals(callerKey).(usecase.Caller)
	return caller, ok
}

package auth

import (
	"github.com/gofiber/fiber/v2"

	"gerejaku_backend/internals/constants"
)

// RequireCapability mengecek tabel capability sekali di boundary route.
// Role diambil dari Locals yang diisi AuthMiddleware.
func RequireCapability(op string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok || role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}
		if !constants.RoleAllowed(op, role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden: you are not authorized to access this resource",
			})
		}
		return c.Next()
	}
}

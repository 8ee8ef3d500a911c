// internals/middlewares/auth/role_middleware.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// OnlyRolesSlice membatasi handler ke daftar role tertentu.
// Dipasang SETELAH AuthMiddleware (butuh locals role).
func OnlyRolesSlice(errMessage string, allowedRoles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(helperAuth.LocRole).(string)
		role = strings.ToLower(strings.TrimSpace(role))
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "role tidak ditemukan di token")
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, errMessage)
	}
}

// file: internals/features/users/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	userController "sekolahku_backend/internals/features/users/controller"
	"sekolahku_backend/internals/middlewares"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// AuthRoutes: endpoint publik (tanpa AuthMiddleware).
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewAuthController(db)

	r.Post("/auth/login", middlewares.LoginRateLimiter(), ctl.Login)
}

// UserAdminRoutes: manajemen akun oleh admin.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewAuthController(db)

	users := r.Group("/users",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("manajemen user"), constants.AdminOnly),
	)
	users.Post("/", ctl.Register)
}

// UserRoutes: endpoint user login.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewAuthController(db)

	r.Get("/users/me", ctl.Me)
}

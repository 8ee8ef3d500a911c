// file: internals/features/school/academics/levels/route/level_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	levelController "sekolahku_backend/internals/features/school/academics/levels/controller"
	"sekolahku_backend/internals/constants"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// Admin: full CRUD. Guru/staff: read-only (dropdown fase dsb).
func LevelAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := levelController.NewLevelController(db)

	levels := r.Group("/levels",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("jenjang"), constants.AdminOnly),
	)
	levels.Post("/", ctl.Create)
	levels.Patch("/:id", ctl.Update)
	levels.Delete("/:id", ctl.Delete)
}

func LevelUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := levelController.NewLevelController(db)

	levels := r.Group("/levels")
	levels.Get("/", ctl.List)
	levels.Get("/:id", ctl.GetByID)
	levels.Get("/:id/phases", ctl.Phases)
}

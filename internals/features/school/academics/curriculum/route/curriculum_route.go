// file: internals/features/school/academics/curriculum/route/curriculum_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	curriculumController "sekolahku_backend/internals/features/school/academics/curriculum/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func CurriculumAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := curriculumController.NewCurriculumController(db)

	guard := authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("kurikulum"), constants.AdminOnly)

	groups := r.Group("/curriculum-groups", guard)
	groups.Post("/", ctl.CreateGroup)
	groups.Delete("/:id", ctl.DeleteGroup)

	objectives := r.Group("/curriculum-objectives", guard)
	objectives.Post("/", ctl.CreateObjective)
	objectives.Patch("/:id", ctl.UpdateObjective)
	objectives.Delete("/:id", ctl.DeleteObjective)
}

func CurriculumUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := curriculumController.NewCurriculumController(db)
	r.Get("/curriculum-groups", ctl.ListGroups)
}

// file: internals/features/school/academics/subjects/route/subject_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	subjectController "sekolahku_backend/internals/features/school/academics/subjects/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := subjectController.NewSubjectController(db)

	subjects := r.Group("/subjects",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("mapel"), constants.AdminOnly),
	)
	subjects.Post("/", ctl.Create)
	subjects.Patch("/:id", ctl.Update)
	subjects.Delete("/:id", ctl.Delete)
}

func SubjectUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := subjectController.NewSubjectController(db)

	subjects := r.Group("/subjects")
	subjects.Get("/", ctl.List)
	subjects.Get("/:id", ctl.GetByID)
}

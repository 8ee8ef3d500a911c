// file: internals/features/school/academics/terms/route/term_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	termController "sekolahku_backend/internals/features/school/academics/terms/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func TermAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := termController.NewAcademicTermController(db)

	terms := r.Group("/academic-terms",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("tahun ajaran"), constants.AdminOnly),
	)
	terms.Post("/", ctl.Create)
	terms.Post("/:id/activate", ctl.SetActive)
	terms.Delete("/:id", ctl.Delete)
}

func TermUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := termController.NewAcademicTermController(db)
	r.Get("/academic-terms", ctl.List)
}

// file: internals/features/school/classes/classrooms/route/classroom_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	classroomController "sekolahku_backend/internals/features/school/classes/classrooms/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func ClassroomAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := classroomController.NewClassroomController(db)

	classrooms := r.Group("/classrooms",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("kelas"), constants.AdminOnly),
	)
	classrooms.Post("/", ctl.Create)
	classrooms.Post("/:id/students", ctl.EnrollStudents)
}

func ClassroomUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := classroomController.NewClassroomController(db)

	classrooms := r.Group("/classrooms")
	classrooms.Get("/", ctl.List)
	classrooms.Get("/:id", ctl.GetByID)
	classrooms.Get("/:id/students", ctl.ListStudents)
}

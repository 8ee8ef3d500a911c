// file: internals/features/school/teachers/assignments/route/teacher_assignment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	assignmentController "sekolahku_backend/internals/features/school/teachers/assignments/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func TeacherAssignmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := assignmentController.NewTeacherAssignmentController(db)

	assignments := r.Group("/teacher-assignments",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("penugasan guru"), constants.AdminOnly),
	)
	assignments.Post("/", ctl.Create)
	assignments.Get("/", ctl.List)
	assignments.Delete("/:id", ctl.Delete)
}

func TeacherAssignmentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := assignmentController.NewTeacherAssignmentController(db)

	r.Get("/teacher-assignments/me",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorTeacher("akses penugasan"), constants.TeacherAndAbove),
		ctl.MyAccess,
	)
}

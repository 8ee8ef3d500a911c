// file: internals/features/school/people/route/people_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	peopleController "sekolahku_backend/internals/features/school/people/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func PeopleAdminRoutes(r fiber.Router, db *gorm.DB) {
	studentCtl := peopleController.NewStudentController(db)
	teacherCtl := peopleController.NewTeacherController(db)

	students := r.Group("/students",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("data siswa"), constants.AdminOnly),
	)
	students.Post("/", studentCtl.Create)
	students.Get("/", studentCtl.List)
	students.Get("/:id", studentCtl.GetByID)
	students.Patch("/:id", studentCtl.Update)
	students.Delete("/:id", studentCtl.Delete)

	teachers := r.Group("/teachers",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("data guru"), constants.AdminOnly),
	)
	teachers.Post("/", teacherCtl.Create)
	teachers.Get("/", teacherCtl.List)
	teachers.Get("/:id", teacherCtl.GetByID)
	teachers.Patch("/:id", teacherCtl.Update)
	teachers.Delete("/:id", teacherCtl.Delete)
}

// PeopleUserRoutes: lookup ringan untuk guru (daftar siswa/guru read-only).
func PeopleUserRoutes(r fiber.Router, db *gorm.DB) {
	studentCtl := peopleController.NewStudentController(db)
	teacherCtl := peopleController.NewTeacherController(db)

	guard := authMiddleware.OnlyRolesSlice(constants.RoleErrorTeacher("data sekolah"), constants.TeacherAndAbove)
	r.Get("/students", guard, studentCtl.List)
	r.Get("/teachers", guard, teacherCtl.List)
}

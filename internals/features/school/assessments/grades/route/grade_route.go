// file: internals/features/school/assessments/grades/route/grade_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	gradeController "sekolahku_backend/internals/features/school/assessments/grades/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// SubjectGradeUserRoutes: penilaian mapel oleh guru (atau admin/staff).
// Otorisasi per-kelas/per-mapel diurus GradeEngine, middleware hanya cek role.
func SubjectGradeUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := gradeController.NewSubjectGradeController(db)

	grades := r.Group("/subject-grades",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorTeacher("penilaian mapel"), constants.TeacherAndAbove),
	)
	grades.Get("/", ctl.Roster)
	grades.Get("/objectives", ctl.CandidateObjectives)
	grades.Put("/", ctl.Save)
}

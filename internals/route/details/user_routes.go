// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	curriculumRoute "sekolahku_backend/internals/features/school/academics/curriculum/route"
	levelRoute "sekolahku_backend/internals/features/school/academics/levels/route"
	subjectRoute "sekolahku_backend/internals/features/school/academics/subjects/route"
	termRoute "sekolahku_backend/internals/features/school/academics/terms/route"
	gradeRoute "sekolahku_backend/internals/features/school/assessments/grades/route"
	reportRoute "sekolahku_backend/internals/features/school/assessments/reports/route"
	sourceRoute "sekolahku_backend/internals/features/school/assessments/sources/route"
	classroomRoute "sekolahku_backend/internals/features/school/classes/classrooms/route"
	peopleRoute "sekolahku_backend/internals/features/school/people/route"
	assignmentRoute "sekolahku_backend/internals/features/school/teachers/assignments/route"
	userRoute "sekolahku_backend/internals/features/users/route"
)

// UserRoutes: endpoint harian guru (dan admin/staff) di bawah /api/u.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	userRoute.UserRoutes(r, db)
	peopleRoute.PeopleUserRoutes(r, db)
	levelRoute.LevelUserRoutes(r, db)
	termRoute.TermUserRoutes(r, db)
	subjectRoute.SubjectUserRoutes(r, db)
	curriculumRoute.CurriculumUserRoutes(r, db)
	classroomRoute.ClassroomUserRoutes(r, db)
	assignmentRoute.TeacherAssignmentUserRoutes(r, db)
	gradeRoute.SubjectGradeUserRoutes(r, db)
	sourceRoute.AssessmentSourceUserRoutes(r, db)
	reportRoute.ReportCardUserRoutes(r, db)
}

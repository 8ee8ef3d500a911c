// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	curriculumRoute "sekolahku_backend/internals/features/school/academics/curriculum/route"
	levelRoute "sekolahku_backend/internals/features/school/academics/levels/route"
	subjectRoute "sekolahku_backend/internals/features/school/academics/subjects/route"
	termRoute "sekolahku_backend/internals/features/school/academics/terms/route"
	sourceRoute "sekolahku_backend/internals/features/school/assessments/sources/route"
	classroomRoute "sekolahku_backend/internals/features/school/classes/classrooms/route"
	peopleRoute "sekolahku_backend/internals/features/school/people/route"
	assignmentRoute "sekolahku_backend/internals/features/school/teachers/assignments/route"
	userRoute "sekolahku_backend/internals/features/users/route"
)

// AdminRoutes: seluruh endpoint master data di bawah /api/a.
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(r, db)
	peopleRoute.PeopleAdminRoutes(r, db)
	levelRoute.LevelAdminRoutes(r, db)
	termRoute.TermAdminRoutes(r, db)
	subjectRoute.SubjectAdminRoutes(r, db)
	curriculumRoute.CurriculumAdminRoutes(r, db)
	classroomRoute.ClassroomAdminRoutes(r, db)
	assignmentRoute.TeacherAssignmentAdminRoutes(r, db)
	sourceRoute.AssessmentSourceAdminRoutes(r, db)
}

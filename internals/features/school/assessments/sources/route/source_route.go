// file: internals/features/school/assessments/sources/route/source_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	sourceController "sekolahku_backend/internals/features/school/assessments/sources/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// AssessmentSourceAdminRoutes: master data yang hanya boleh dikelola admin/staff.
func AssessmentSourceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ekskulCtl := sourceController.NewExtracurricularController(db)

	ekskul := r.Group("/extracurriculars",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("ekstrakurikuler"), constants.AdminOnly),
	)
	ekskul.Post("/", ekskulCtl.Create)
	ekskul.Get("/", ekskulCtl.List)
	ekskul.Delete("/:id", ekskulCtl.Delete)
}

// AssessmentSourceUserRoutes: sumber nilai yang diisi guru sepanjang semester.
// Otorisasi per-kelas dicek di masing-masing controller lewat AccessResolver.
func AssessmentSourceUserRoutes(r fiber.Router, db *gorm.DB) {
	guard := authMiddleware.OnlyRolesSlice(constants.RoleErrorTeacher("sumber penilaian"), constants.TeacherAndAbove)

	kompetensiCtl := sourceController.NewCompetencyAssessmentController(db)
	kompetensi := r.Group("/competency-assessments", guard)
	kompetensi.Put("/", kompetensiCtl.Upsert)
	kompetensi.Get("/", kompetensiCtl.List)
	kompetensi.Delete("/:id", kompetensiCtl.Delete)

	proyekCtl := sourceController.NewProjectController(db)
	proyek := r.Group("/projects", guard)
	proyek.Post("/", proyekCtl.Create)
	proyek.Get("/", proyekCtl.List)
	proyek.Delete("/:id", proyekCtl.Delete)
	proyek.Put("/assessments", proyekCtl.UpsertAssessment)
	proyek.Get("/:id/assessments", proyekCtl.ListAssessments)

	ekskulCtl := sourceController.NewExtracurricularController(db)
	ekskulNilai := r.Group("/extracurricular-assessments", guard)
	ekskulNilai.Put("/", ekskulCtl.UpsertAssessment)
	ekskulNilai.Get("/", ekskulCtl.ListAssessments)

	absensiCtl := sourceController.NewAttendanceSummaryController(db)
	absensi := r.Group("/attendance-summaries", guard)
	absensi.Put("/", absensiCtl.Upsert)
	absensi.Get("/", absensiCtl.List)

	paudCtl := sourceController.NewDevelopmentalAssessmentController(db)
	paud := r.Group("/developmental-assessments", guard)
	paud.Put("/", paudCtl.Upsert)
	paud.Get("/", paudCtl.List)
	paud.Delete("/:id", paudCtl.Delete)
}

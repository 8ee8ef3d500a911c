// file: internals/features/school/assessments/reports/route/report_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	reportController "sekolahku_backend/internals/features/school/assessments/reports/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func ReportCardUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reportController.NewReportCardController(db)

	reports := r.Group("/report-cards",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorTeacher("rapor"), constants.TeacherAndAbove),
	)
	reports.Post("/generate", ctl.Generate)
	reports.Get("/", ctl.List)
	reports.Get("/:id", ctl.GetByID)
	reports.Get("/:id/render-context", ctl.RenderContext)
}

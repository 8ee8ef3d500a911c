// file: internals/features/school/assessments/sources/controller/attendance_summary_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "sekolahku_backend/internals/features/school/assessments/sources/dto"
	model "sekolahku_backend/internals/features/school/assessments/sources/model"
	accessService "sekolahku_backend/internals/features/school/teachers/assignments/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AttendanceSummaryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Resolver *accessService.AccessResolver
}

func NewAttendanceSummaryController(db *gorm.DB) *AttendanceSummaryController {
	return &AttendanceSummaryController{
		DB:       db,
		Validate: validator.New(),
		Resolver: accessService.NewAccessResolver(accessService.NewGormAccessStore(db)),
	}
}

func (ctl *AttendanceSummaryController) requireClassroomAccess(c *fiber.Ctx, actor helperAuth.Actor, classroomID uuid.UUID) error {
	ok, err := ctl.Resolver.HasClassroomAccess(c.Context(), actor, classroomID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek akses kelas")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak punya akses ke kelas ini")
	}
	return nil
}

/* ===============================
   UPSERT
   PUT /attendance-summaries
=================================*/
func (ctl *AttendanceSummaryController) Upsert(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.UpsertAttendanceSummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.requireClassroomAccess(c, actor, req.ClassroomID); err != nil {
		return err
	}

	row := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_summary_student_id"},
				{Name: "attendance_summary_classroom_id"},
				{Name: "attendance_summary_term_id"},
				{Name: "attendance_summary_semester"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_summary_sick",
				"attendance_summary_permission",
				"attendance_summary_absent",
				"attendance_summary_updated_at",
			}),
		}).
		Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan rekap absensi")
	}
	return helper.JsonUpdated(c, "Rekap absensi tersimpan", row)
}

/* ===============================
   LIST
   GET /attendance-summaries?classroom_id=&term_id=&semester=
=================================*/
func (ctl *AttendanceSummaryController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromLocals(c)
	if err != nil {
		return err
	}

	classroomID, err := uuid.Parse(c.Query("classroom_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "classroom_id tidak valid")
	}
	if err := ctl.requireClassroomAccess(c, actor, classroomID); err != nil {
		return err
	}

	q := ctl.DB.WithContext(c.Context()).
		Model(&model.AttendanceSummaryModel{}).
		Where("attendance_summary_classroom_id = ?", classroomID)
	if s := c.Query("term_id"); s != "" {
		q = q.Where("attendance_summary_term_id = ?", s)
	}
	if s := c.QueryInt("semester"); s > 0 {
		q = q.Where("attendance_summary_semester = ?", s)
	}

	var rows []model.AttendanceSummaryModel
	if err := q.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", rows)
}

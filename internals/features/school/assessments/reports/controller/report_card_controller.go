// file: internals/features/school/assessments/reports/controller/report_card_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/assessments/reports/dto"
	model "sekolahku_backend/internals/features/school/assessments/reports/model"
	service "sekolahku_backend/internals/features/school/assessments/reports/service"
	accessService "sekolahku_backend/internals/features/school/teachers/assignments/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type ReportCardController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Engine   *service.AggregationEngine
	Resolver *accessService.AccessResolver
	Store    *service.GormReportStore
}

func NewReportCardController(db *gorm.DB) *ReportCardController {
	resolver := accessService.NewAccessResolver(accessService.NewGormAccessStore(db))
	store := service.NewGormReportStore(db)
	return &ReportCardController{
		DB:       db,
		Validate: validator.New(),
		Engine:   service.NewAggregationEngine(store, resolver),
		Resolver: resolver,
		Store:    store,
	}
}

/* ===============================
   GENERATE / REGENERATE
   POST /report-cards/generate
=================================*/
func (ctl *ReportCardController) Generate(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.GenerateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := ctl.Engine.Generate(c.Context(), actor, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccessDenied):
			return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak punya akses ke kelas ini")
		case errors.Is(err, service.ErrNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat rapor")
		}
	}
	return helper.JsonOK(c, "Rapor berhasil dibuat", dto.GenerateReportResponse{
		Generated:         res.Generated,
		SkippedStudentIDs: res.SkippedStudentIDs,
	})
}

/* ===============================
   LIST
   GET /report-cards?classroom_id=&term_id=&semester=
=================================*/
func (ctl *ReportCardController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromLocals(c)
	if err != nil {
		return err
	}

	classroomID, err := uuid.Parse(c.Query("classroom_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "classroom_id tidak valid")
	}
	if ok, err := ctl.Resolver.HasClassroomAccess(c.Context(), actor, classroomID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek akses kelas")
	} else if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak punya akses ke kelas ini")
	}

	q := ctl.DB.WithContext(c.Context()).
		Model(&model.ReportCardModel{}).
		Where("report_card_classroom_id = ?", classroomID)
	if s := c.Query("term_id"); s != "" {
		q = q.Where("report_card_term_id = ?", s)
	}
	if s := c.QueryInt("semester"); s > 0 {
		q = q.Where("report_card_semester = ?", s)
	}

	var rows []model.ReportCardModel
	if err := q.Order("report_card_updated_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", rows)
}

/* ===============================
   DETAIL
   GET /report-cards/:id
=================================*/
func (ctl *ReportCardController) GetByID(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.ReportCardModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "report_card_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Rapor tidak ditemukan")
	}

	// id di luar cakupan guru tidak boleh bocor ada/tidaknya → 404, bukan 403
	if ok, err := ctl.Resolver.HasClassroomAccess(c.Context(), actor, row.ReportCardClassroomID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek akses kelas")
	} else if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Rapor tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", row)
}

/* ===============================
   KONTEKS CETAK
   GET /report-cards/:id/render-context
=================================*/
// RenderContext: bahan untuk kolaborator pencetak — nama template per tipe
// kurikulum plus nama wali kelas untuk blok tanda tangan.
func (ctl *ReportCardController) RenderContext(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.ReportCardModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "report_card_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Rapor tidak ditemukan")
	}
	if ok, err := ctl.Resolver.HasClassroomAccess(c.Context(), actor, row.ReportCardClassroomID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek akses kelas")
	} else if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Rapor tidak ditemukan")
	}

	homeroom, err := ctl.Store.HomeroomTeacherName(c.Context(), row.ReportCardClassroomID, row.ReportCardTermID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil wali kelas")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"template":              service.TemplateForCurriculum(row.ReportCardCurriculumType),
		"homeroom_teacher_name": homeroom,
		"report_card":           row,
	})
}

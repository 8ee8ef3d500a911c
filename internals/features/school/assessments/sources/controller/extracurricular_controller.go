// file: internals/features/school/assessments/sources/controller/extracurricular_controller.go
package controller

import (
	"errors"

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

type ExtracurricularController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Resolver *accessService.AccessResolver
}

func NewExtracurricularController(db *gorm.DB) *ExtracurricularController {
	return &ExtracurricularController{
		DB:       db,
		Validate: validator.New(),
		Resolver: accessService.NewAccessResolver(accessService.NewGormAccessStore(db)),
	}
}

/* ===============================
   MASTER EKSKUL (admin)
=================================*/

func (ctl *ExtracurricularController) Create(c *fiber.Ctx) error {
	var req dto.CreateExtracurricularRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	row := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat ekskul")
	}
	return helper.JsonCreated(c, "Ekskul berhasil dibuat", row)
}

func (ctl *ExtracurricularController) List(c *fiber.Ctx) error {
	var rows []model.ExtracurricularModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("extracurricular_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", rows)
}

func (ctl *ExtracurricularController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&model.ExtracurricularModel{}, "extracurricular_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus ekskul")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Ekskul tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Ekskul dihapus", fiber.Map{"extracurricular_id": id})
}

/* ===============================
   PENILAIAN EKSKUL (guru)
   PUT /extracurricular-assessments
=================================*/

func (ctl *ExtracurricularController) UpsertAssessment(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.UpsertExtracurricularAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if ok, err := ctl.Resolver.HasClassroomAccess(c.Context(), actor, req.ClassroomID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek akses kelas")
	} else if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak punya akses ke kelas ini")
	}

	if err := ctl.DB.WithContext(c.Context()).
		First(&model.ExtracurricularModel{}, "extracurricular_id = ?", req.ExtracurricularID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Ekskul tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek ekskul")
	}

	row := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "extracurricular_assessment_student_id"},
				{Name: "extracurricular_assessment_extracurricular_id"},
				{Name: "extracurricular_assessment_classroom_id"},
				{Name: "extracurricular_assessment_term_id"},
				{Name: "extracurricular_assessment_semester"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"extracurricular_assessment_level",
				"extracurricular_assessment_desc",
				"extracurricular_assessment_updated_at",
			}),
		}).
		Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan penilaian ekskul")
	}
	return helper.JsonUpdated(c, "Penilaian ekskul tersimpan", row)
}

func (ctl *ExtracurricularController) ListAssessments(c *fiber.Ctx) error {
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
		Model(&model.ExtracurricularAssessmentModel{}).
		Where("extracurricular_assessment_classroom_id = ?", classroomID).
		Preload("Extracurricular")
	if s := c.Query("term_id"); s != "" {
		q = q.Where("extracurricular_assessment_term_id = ?", s)
	}
	if s := c.QueryInt("semester"); s > 0 {
		q = q.Where("extracurricular_assessment_semester = ?", s)
	}

	var rows []model.ExtracurricularAssessmentModel
	if err := q.Order("extracurricular_assessment_created_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", rows)
}

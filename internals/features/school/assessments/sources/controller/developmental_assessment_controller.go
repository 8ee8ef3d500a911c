// file: internals/features/school/assessments/sources/controller/developmental_assessment_controller.go
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

type DevelopmentalAssessmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Resolver *accessService.AccessResolver
}

func NewDevelopmentalAssessmentController(db *gorm.DB) *DevelopmentalAssessmentController {
	return &DevelopmentalAssessmentController{
		DB:       db,
		Validate: validator.New(),
		Resolver: accessService.NewAccessResolver(accessService.NewGormAccessStore(db)),
	}
}

func (ctl *DevelopmentalAssessmentController) requireClassroomAccess(c *fiber.Ctx, actor helperAuth.Actor, classroomID uuid.UUID) error {
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
   PUT /developmental-assessments
=================================*/
func (ctl *DevelopmentalAssessmentController) Upsert(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.UpsertDevelopmentalAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	req.Normalize()
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
				{Name: "developmental_assessment_student_id"},
				{Name: "developmental_assessment_classroom_id"},
				{Name: "developmental_assessment_term_id"},
				{Name: "developmental_assessment_semester"},
				{Name: "developmental_assessment_aspect"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"developmental_assessment_desc",
				"developmental_assessment_updated_at",
			}),
		}).
		Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan capaian perkembangan")
	}
	return helper.JsonUpdated(c, "Capaian perkembangan tersimpan", row)
}

/* ===============================
   LIST
   GET /developmental-assessments?classroom_id=&term_id=&semester=
=================================*/
func (ctl *DevelopmentalAssessmentController) List(c *fiber.Ctx) error {
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
		Model(&model.DevelopmentalAssessmentModel{}).
		Where("developmental_assessment_classroom_id = ?", classroomID)
	if s := c.Query("term_id"); s != "" {
		q = q.Where("developmental_assessment_term_id = ?", s)
	}
	if s := c.QueryInt("semester"); s > 0 {
		q = q.Where("developmental_assessment_semester = ?", s)
	}
	if s := c.Query("student_id"); s != "" {
		q = q.Where("developmental_assessment_student_id = ?", s)
	}

	var rows []model.DevelopmentalAssessmentModel
	if err := q.Order("developmental_assessment_aspect ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", rows)
}

/* ===============================
   DELETE
   DELETE /developmental-assessments/:id
=================================*/
func (ctl *DevelopmentalAssessmentController) Delete(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.DevelopmentalAssessmentModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "developmental_assessment_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	if err := ctl.requireClassroomAccess(c, actor, row.DevelopmentalAssessmentClassroomID); err != nil {
		return err
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	return helper.JsonDeleted(c, "Data dihapus", fiber.Map{"developmental_assessment_id": id})
}

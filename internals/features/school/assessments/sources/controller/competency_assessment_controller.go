// file: internals/features/school/assessments/sources/controller/competency_assessment_controller.go
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

type CompetencyAssessmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Resolver *accessService.AccessResolver
}

func NewCompetencyAssessmentController(db *gorm.DB) *CompetencyAssessmentController {
	return &CompetencyAssessmentController{
		DB:       db,
		Validate: validator.New(),
		Resolver: accessService.NewAccessResolver(accessService.NewGormAccessStore(db)),
	}
}

// guru wajib punya akses kelas DAN mapel; admin/staff lolos otomatis
func (ctl *CompetencyAssessmentController) authorize(c *fiber.Ctx, actor helperAuth.Actor, classroomID, subjectID uuid.UUID) error {
	okClass, err := ctl.Resolver.HasClassroomAccess(c.Context(), actor, classroomID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek akses kelas")
	}
	okSubject, err := ctl.Resolver.HasSubjectAccess(c.Context(), actor, subjectID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek akses mapel")
	}
	if !okClass || !okSubject {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak punya akses ke kelas/mapel ini")
	}
	return nil
}

/* ===============================
   UPSERT
   PUT /competency-assessments
=================================*/
func (ctl *CompetencyAssessmentController) Upsert(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.UpsertCompetencyAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.authorize(c, actor, req.ClassroomID, req.SubjectID); err != nil {
		return err
	}

	row := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "competency_assessment_student_id"},
				{Name: "competency_assessment_subject_id"},
				{Name: "competency_assessment_classroom_id"},
				{Name: "competency_assessment_term_id"},
				{Name: "competency_assessment_semester"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"competency_assessment_level",
				"competency_assessment_desc",
				"competency_assessment_updated_at",
			}),
		}).
		Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan capaian kompetensi")
	}
	return helper.JsonUpdated(c, "Capaian kompetensi tersimpan", row)
}

/* ===============================
   LIST
   GET /competency-assessments?classroom_id=&subject_id=&term_id=&semester=
=================================*/
func (ctl *CompetencyAssessmentController) List(c *fiber.Ctx) error {
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
		Model(&model.CompetencyAssessmentModel{}).
		Where("competency_assessment_classroom_id = ?", classroomID)
	if s := c.Query("subject_id"); s != "" {
		q = q.Where("competency_assessment_subject_id = ?", s)
	}
	if s := c.Query("term_id"); s != "" {
		q = q.Where("competency_assessment_term_id = ?", s)
	}
	if s := c.QueryInt("semester"); s > 0 {
		q = q.Where("competency_assessment_semester = ?", s)
	}

	var rows []model.CompetencyAssessmentModel
	if err := q.Order("competency_assessment_created_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", rows)
}

/* ===============================
   DELETE
   DELETE /competency-assessments/:id
=================================*/
func (ctl *CompetencyAssessmentController) Delete(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.CompetencyAssessmentModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "competency_assessment_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	if err := ctl.authorize(c, actor, row.CompetencyAssessmentClassroomID, row.CompetencyAssessmentSubjectID); err != nil {
		return err
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	return helper.JsonDeleted(c, "Data dihapus", fiber.Map{"competency_assessment_id": id})
}

// file: internals/features/school/assessments/grades/controller/grade_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/assessments/grades/dto"
	service "sekolahku_backend/internals/features/school/assessments/grades/service"
	accessService "sekolahku_backend/internals/features/school/teachers/assignments/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type SubjectGradeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Engine   *service.GradeEngine
}

func NewSubjectGradeController(db *gorm.DB) *SubjectGradeController {
	resolver := accessService.NewAccessResolver(accessService.NewGormAccessStore(db))
	return &SubjectGradeController{
		DB:       db,
		Validate: validator.New(),
		Engine:   service.NewGradeEngine(service.NewGormGradeStore(db), resolver),
	}
}

// engineError → status HTTP. DisjointViolationError dianggap kesalahan
// isi form (422), bukan bad request biasa.
func (ctl *SubjectGradeController) engineError(c *fiber.Ctx, err error) error {
	var violation *service.DisjointViolationError
	switch {
	case errors.As(err, &violation):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, violation.Error())
	case errors.Is(err, service.ErrAccessDenied):
		return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak punya akses ke kelas/mapel ini")
	case errors.Is(err, service.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
}

/* ===============================
   ROSTER
   GET /subject-grades?classroom_id=&subject_id=&term_id=&semester=
=================================*/
func (ctl *SubjectGradeController) Roster(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromLocals(c)
	if err != nil {
		return err
	}

	var q dto.GradeContextQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid: "+err.Error())
	}
	if err := ctl.Validate.Struct(q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	entries, err := ctl.Engine.LoadRoster(c.Context(), actor, q.ToQuery())
	if err != nil {
		return ctl.engineError(c, err)
	}
	return helper.JsonOK(c, "OK", entries)
}

/* ===============================
   KANDIDAT TP
   GET /subject-grades/objectives?classroom_id=&subject_id=&term_id=&semester=
=================================*/
func (ctl *SubjectGradeController) CandidateObjectives(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromLocals(c)
	if err != nil {
		return err
	}

	var q dto.GradeContextQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid: "+err.Error())
	}
	if err := ctl.Validate.Struct(q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	objectives, err := ctl.Engine.CandidateObjectives(c.Context(), actor, q.ToQuery())
	if err != nil {
		return ctl.engineError(c, err)
	}

	out := make([]dto.CandidateObjectiveResponse, 0, len(objectives))
	for _, tp := range objectives {
		out = append(out, dto.CandidateObjectiveResponse{
			ObjectiveID: tp.CurriculumObjectiveID,
			Code:        tp.CurriculumObjectiveCode,
			Description: tp.CurriculumObjectiveDesc,
		})
	}
	return helper.JsonOK(c, "OK", out)
}

/* ===============================
   SAVE (batch)
   PUT /subject-grades
=================================*/
func (ctl *SubjectGradeController) Save(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.SaveGradesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	written, err := ctl.Engine.Save(c.Context(), actor, req.ToQuery(), req.ToEntries())
	if err != nil {
		return ctl.engineError(c, err)
	}
	return helper.JsonUpdated(c, "Nilai berhasil disimpan", dto.SaveGradesResponse{
		Written: written,
		Skipped: len(req.Entries) - written,
	})
}

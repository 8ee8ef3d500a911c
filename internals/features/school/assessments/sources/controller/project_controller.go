// file: internals/features/school/assessments/sources/controller/project_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	classroomModel "sekolahku_backend/internals/features/school/classes/classrooms/model"
	dto "sekolahku_backend/internals/features/school/assessments/sources/dto"
	model "sekolahku_backend/internals/features/school/assessments/sources/model"
	accessService "sekolahku_backend/internals/features/school/teachers/assignments/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type ProjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Resolver *accessService.AccessResolver
}

func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{
		DB:       db,
		Validate: validator.New(),
		Resolver: accessService.NewAccessResolver(accessService.NewGormAccessStore(db)),
	}
}

func (ctl *ProjectController) requireClassroomAccess(c *fiber.Ctx, actor helperAuth.Actor, classroomID uuid.UUID) error {
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
   CREATE PROYEK
   POST /projects
=================================*/
func (ctl *ProjectController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateProjectRequest
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

	return ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&classroomModel.ClassroomModel{}, "classroom_id = ?", req.ClassroomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Kelas tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek kelas")
		}

		row := req.ToModel()
		if err := tx.Create(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat proyek")
		}
		return helper.JsonCreated(c, "Proyek berhasil dibuat", row)
	})
}

/* ===============================
   LIST PROYEK
   GET /projects?classroom_id=&term_id=
=================================*/
func (ctl *ProjectController) List(c *fiber.Ctx) error {
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
		Model(&model.ProjectModel{}).
		Where("project_classroom_id = ?", classroomID)
	if s := c.Query("term_id"); s != "" {
		q = q.Where("project_term_id = ?", s)
	}

	var rows []model.ProjectModel
	if err := q.Order("project_created_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", rows)
}

/* ===============================
   DELETE PROYEK (beserta penilaiannya)
   DELETE /projects/:id
=================================*/
func (ctl *ProjectController) Delete(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.ProjectModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "project_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Proyek tidak ditemukan")
	}
	if err := ctl.requireClassroomAccess(c, actor, row.ProjectClassroomID); err != nil {
		return err
	}

	return ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_assessment_project_id = ?", id).
			Delete(&model.ProjectAssessmentModel{}).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus penilaian proyek")
		}
		if err := tx.Delete(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus proyek")
		}
		return helper.JsonDeleted(c, "Proyek dihapus", fiber.Map{"project_id": id})
	})
}

/* ===============================
   UPSERT PENILAIAN P5
   PUT /projects/assessments
=================================*/
func (ctl *ProjectController) UpsertAssessment(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.UpsertProjectAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var project model.ProjectModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&project, "project_id = ?", req.ProjectID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Proyek tidak ditemukan")
	}
	if err := ctl.requireClassroomAccess(c, actor, project.ProjectClassroomID); err != nil {
		return err
	}

	// dimensi harus terdaftar di proyeknya
	valid := false
	for _, d := range project.ProjectDimensions {
		if d == req.Dimension {
			valid = true
			break
		}
	}
	if !valid {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dimensi tidak terdaftar pada proyek ini")
	}

	row := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "project_assessment_project_id"},
				{Name: "project_assessment_student_id"},
				{Name: "project_assessment_dimension"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"project_assessment_level",
				"project_assessment_desc",
				"project_assessment_updated_at",
			}),
		}).
		Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan penilaian proyek")
	}
	return helper.JsonUpdated(c, "Penilaian proyek tersimpan", row)
}

/* ===============================
   LIST PENILAIAN P5
   GET /projects/:id/assessments
=================================*/
func (ctl *ProjectController) ListAssessments(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var project model.ProjectModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&project, "project_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Proyek tidak ditemukan")
	}
	if err := ctl.requireClassroomAccess(c, actor, project.ProjectClassroomID); err != nil {
		return err
	}

	var rows []model.ProjectAssessmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("project_assessment_project_id = ?", id).
		Order("project_assessment_dimension ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", rows)
}

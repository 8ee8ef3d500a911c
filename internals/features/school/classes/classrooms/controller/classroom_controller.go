// file: internals/features/school/classes/classrooms/controller/classroom_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	levelModel "sekolahku_backend/internals/features/school/academics/levels/model"
	levelService "sekolahku_backend/internals/features/school/academics/levels/service"
	model "sekolahku_backend/internals/features/school/classes/classrooms/model"
	peopleModel "sekolahku_backend/internals/features/school/people/model"
	helper "sekolahku_backend/internals/helpers"
)

type ClassroomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassroomController(db *gorm.DB) *ClassroomController {
	return &ClassroomController{DB: db, Validate: validator.New()}
}

type createClassroomRequest struct {
	Name       string    `json:"classroom_name" validate:"required,min=1,max=120"`
	LevelID    uuid.UUID `json:"classroom_level_id" validate:"required"`
	TermID     uuid.UUID `json:"classroom_term_id" validate:"required"`
	ClassLevel *int      `json:"classroom_class_level" validate:"omitempty,min=0,max=13"`
}

type classroomResponse struct {
	model.ClassroomModel
	// fase hasil resolve dari phase_map jenjang; null kalau tidak terpetakan
	ClassroomPhase *string `json:"classroom_phase,omitempty"`
}

/* ===============================
   CREATE
   POST /classrooms
=================================*/
func (ctl *ClassroomController) Create(c *fiber.Ctx) error {
	var req createClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&levelModel.LevelModel{}, "level_id = ?", req.LevelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Jenjang tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek jenjang")
		}

		now := time.Now()
		row := model.ClassroomModel{
			ClassroomName:       req.Name,
			ClassroomLevelID:    req.LevelID,
			ClassroomTermID:     req.TermID,
			ClassroomClassLevel: req.ClassLevel,
			ClassroomIsActive:   true,
			ClassroomCreatedAt:  now,
			ClassroomUpdatedAt:  now,
		}
		if err := tx.Create(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kelas")
		}
		return helper.JsonCreated(c, "Kelas berhasil dibuat", row)
	})
}

/* ===============================
   LIST (+fase ter-resolve)
   GET /classrooms?term_id=&level_id=
=================================*/
func (ctl *ClassroomController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&model.ClassroomModel{})
	if termID := c.Query("term_id"); termID != "" {
		id, err := uuid.Parse(termID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "term_id tidak valid")
		}
		q = q.Where("classroom_term_id = ?", id)
	}
	if levelID := c.Query("level_id"); levelID != "" {
		id, err := uuid.Parse(levelID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "level_id tidak valid")
		}
		q = q.Where("classroom_level_id = ?", id)
	}

	var rows []model.ClassroomModel
	if err := q.Order("classroom_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}

	// resolve fase per kelas (sekali load semua level terkait)
	levelIDs := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		levelIDs = append(levelIDs, row.ClassroomLevelID)
	}
	phaseByLevel := map[uuid.UUID]levelModel.PhaseMap{}
	if len(levelIDs) > 0 {
		var levels []levelModel.LevelModel
		if err := ctl.DB.WithContext(c.Context()).
			Where("level_id IN ?", levelIDs).
			Find(&levels).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jenjang")
		}
		for _, lv := range levels {
			phaseByLevel[lv.LevelID] = lv.LevelPhaseMap
		}
	}

	out := make([]classroomResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, classroomResponse{
			ClassroomModel: row,
			ClassroomPhase: levelService.ResolvePhase(row.ClassroomClassLevel, phaseByLevel[row.ClassroomLevelID]),
		})
	}
	return helper.JsonOK(c, "", out)
}

/* ===============================
   DETAIL
   GET /classrooms/:id
=================================*/
func (ctl *ClassroomController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var row model.ClassroomModel
	if err := ctl.DB.WithContext(c.Context()).First(&row, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}

	var lv levelModel.LevelModel
	if err := ctl.DB.WithContext(c.Context()).First(&lv, "level_id = ?", row.ClassroomLevelID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jenjang")
	}
	return helper.JsonOK(c, "", classroomResponse{
		ClassroomModel: row,
		ClassroomPhase: levelService.ResolvePhase(row.ClassroomClassLevel, lv.LevelPhaseMap),
	})
}

/* ===============================
   ENROLL siswa (batch, idempotent)
   POST /classrooms/:id/students
=================================*/
func (ctl *ClassroomController) EnrollStudents(c *fiber.Ctx) error {
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var req struct {
		StudentIDs []uuid.UUID `json:"student_ids" validate:"required,min=1"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.ClassroomModel{}, "classroom_id = ?", classroomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek kelas")
		}

		var found int64
		if err := tx.Model(&peopleModel.StudentModel{}).
			Where("student_id IN ?", req.StudentIDs).
			Count(&found).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek siswa")
		}
		if found != int64(len(req.StudentIDs)) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Ada siswa yang tidak terdaftar")
		}

		now := time.Now()
		rows := make([]model.ClassroomStudentModel, 0, len(req.StudentIDs))
		for _, sid := range req.StudentIDs {
			rows = append(rows, model.ClassroomStudentModel{
				ClassroomStudentClassroomID: classroomID,
				ClassroomStudentStudentID:   sid,
				ClassroomStudentCreatedAt:   now,
			})
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan siswa")
		}
		return helper.JsonCreated(c, "Siswa berhasil didaftarkan ke kelas", fiber.Map{
			"classroom_id": classroomID,
			"student_ids":  req.StudentIDs,
		})
	})
}

/* ===============================
   ROSTER
   GET /classrooms/:id/students
=================================*/
func (ctl *ClassroomController) ListStudents(c *fiber.Ctx) error {
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var rows []peopleModel.StudentModel
	if err := ctl.DB.WithContext(c.Context()).
		Joins("JOIN classroom_students cs ON cs.classroom_student_student_id = students.student_id AND cs.classroom_student_deleted_at IS NULL").
		Where("cs.classroom_student_classroom_id = ?", classroomID).
		Order("students.student_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar siswa")
	}
	return helper.JsonOK(c, "", rows)
}

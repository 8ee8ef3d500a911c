// file: internals/features/school/teachers/assignments/controller/teacher_assignment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectModel "sekolahku_backend/internals/features/school/academics/subjects/model"
	classroomModel "sekolahku_backend/internals/features/school/classes/classrooms/model"
	peopleModel "sekolahku_backend/internals/features/school/people/model"
	dto "sekolahku_backend/internals/features/school/teachers/assignments/dto"
	model "sekolahku_backend/internals/features/school/teachers/assignments/model"
	service "sekolahku_backend/internals/features/school/teachers/assignments/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type TeacherAssignmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Resolver *service.AccessResolver
}

func NewTeacherAssignmentController(db *gorm.DB) *TeacherAssignmentController {
	return &TeacherAssignmentController{
		DB:       db,
		Validate: validator.New(),
		Resolver: service.NewAccessResolver(service.NewGormAccessStore(db)),
	}
}

/* ===============================
   CREATE (admin)
   POST /teacher-assignments
=================================*/
func (ctl *TeacherAssignmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	// subject wajib untuk subject_teacher; wali kelas/homeroom tanpa subject = semua mapel
	if req.Type == model.AssignmentTypeSubjectTeacher && req.SubjectID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "subject_teacher butuh teacher_assignment_subject_id")
	}

	return ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&peopleModel.TeacherModel{}, "teacher_id = ?", req.TeacherID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Guru tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek guru")
		}
		if err := tx.First(&classroomModel.ClassroomModel{}, "classroom_id = ?", req.ClassroomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Kelas tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek kelas")
		}
		if req.SubjectID != nil {
			if err := tx.First(&subjectModel.SubjectModel{}, "subject_id = ?", *req.SubjectID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return helper.JsonError(c, fiber.StatusBadRequest, "Mapel tidak ditemukan")
				}
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek mapel")
			}
		}

		row := req.ToModel()
		if err := tx.Create(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusConflict, "Penugasan sudah ada / gagal dibuat")
		}
		return helper.JsonCreated(c, "Penugasan berhasil dibuat", row)
	})
}

/* ===============================
   LIST (admin; filter teacher/classroom/term)
   GET /teacher-assignments
=================================*/
func (ctl *TeacherAssignmentController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&model.TeacherAssignmentModel{})
	for param, col := range map[string]string{
		"teacher_id":   "teacher_assignment_teacher_id",
		"classroom_id": "teacher_assignment_classroom_id",
		"term_id":      "teacher_assignment_term_id",
	} {
		if v := c.Query(param); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, param+" tidak valid")
			}
			q = q.Where(col+" = ?", id)
		}
	}

	var rows []model.TeacherAssignmentModel
	if err := q.Order("teacher_assignment_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil penugasan")
	}
	return helper.JsonOK(c, "", rows)
}

/* ===============================
   DELETE (admin)
   DELETE /teacher-assignments/:id
=================================*/
func (ctl *TeacherAssignmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID penugasan tidak valid")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&model.TeacherAssignmentModel{}, "teacher_assignment_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus penugasan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Penugasan tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Penugasan berhasil dihapus", fiber.Map{"teacher_assignment_id": id})
}

/* ===============================
   AKSES EFEKTIF SAYA (guru)
   GET /teacher-assignments/me
=================================*/
func (ctl *TeacherAssignmentController) MyAccess(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromLocals(c)
	if err != nil {
		return err
	}

	classroomIDs, err := ctl.Resolver.AssignedClassroomIDs(c.UserContext(), actor)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal resolve akses kelas")
	}
	subjectIDs, err := ctl.Resolver.AssignedSubjectIDs(c.UserContext(), actor)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal resolve akses mapel")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"classroom_ids": classroomIDs,
		"subject_ids":   subjectIDs,
	})
}

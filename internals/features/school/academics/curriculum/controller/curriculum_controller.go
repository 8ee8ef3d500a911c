// file: internals/features/school/academics/curriculum/controller/curriculum_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/academics/curriculum/dto"
	model "sekolahku_backend/internals/features/school/academics/curriculum/model"
	subjectModel "sekolahku_backend/internals/features/school/academics/subjects/model"
	helper "sekolahku_backend/internals/helpers"
)

type CurriculumController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCurriculumController(db *gorm.DB) *CurriculumController {
	return &CurriculumController{DB: db, Validate: validator.New()}
}

/* ===============================
   CP — CREATE
   POST /curriculum-groups
=================================*/
func (ctl *CurriculumController) CreateGroup(c *fiber.Ctx) error {
	var req dto.CreateCurriculumGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// mapel harus ada
		if err := tx.First(&subjectModel.SubjectModel{}, "subject_id = ?", req.SubjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Mapel tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek mapel")
		}

		row := req.ToModel()
		if err := tx.Create(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat CP")
		}
		return helper.JsonCreated(c, "CP berhasil dibuat", row)
	})
}

/* ===============================
   CP — LIST (per mapel, opsional fase)
   GET /curriculum-groups?subject_id=&phase=
=================================*/
func (ctl *CurriculumController) ListGroups(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&model.CurriculumGroupModel{}).Preload("Objectives")

	if subjectID := c.Query("subject_id"); subjectID != "" {
		id, err := uuid.Parse(subjectID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "subject_id tidak valid")
		}
		q = q.Where("curriculum_group_subject_id = ?", id)
	}
	if phase := c.Query("phase"); phase != "" {
		q = q.Where("curriculum_group_phase = ?", phase)
	}

	var rows []model.CurriculumGroupModel
	if err := q.Order("curriculum_group_phase ASC, curriculum_group_title ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil CP")
	}
	return helper.JsonOK(c, "", rows)
}

/* ===============================
   CP — DELETE (soft, ikut TP-nya)
   DELETE /curriculum-groups/:id
=================================*/
func (ctl *CurriculumController) DeleteGroup(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID CP tidak valid")
	}

	return ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.CurriculumGroupModel{}, "curriculum_group_id = ?", id)
		if res.Error != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus CP")
		}
		if res.RowsAffected == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "CP tidak ditemukan")
		}
		if err := tx.Delete(&model.CurriculumObjectiveModel{}, "curriculum_objective_group_id = ?", id).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus TP di bawah CP")
		}
		return helper.JsonDeleted(c, "CP berhasil dihapus", fiber.Map{"curriculum_group_id": id})
	})
}

/* ===============================
   TP — CREATE
   POST /curriculum-objectives
=================================*/
func (ctl *CurriculumController) CreateObjective(c *fiber.Ctx) error {
	var req dto.CreateCurriculumObjectiveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.CurriculumGroupModel{}, "curriculum_group_id = ?", req.GroupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusBadRequest, "CP tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek CP")
		}

		row := req.ToModel()
		if err := tx.Create(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat TP")
		}
		return helper.JsonCreated(c, "TP berhasil dibuat", row)
	})
}

/* ===============================
   TP — UPDATE (partial)
   PATCH /curriculum-objectives/:id
=================================*/
func (ctl *CurriculumController) UpdateObjective(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID TP tidak valid")
	}

	var req dto.UpdateCurriculumObjectiveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var row model.CurriculumObjectiveModel
		if err := tx.First(&row, "curriculum_objective_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "TP tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil TP")
		}
		req.Apply(&row)
		if err := tx.Save(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui TP")
		}
		return helper.JsonUpdated(c, "TP berhasil diperbarui", row)
	})
}

/* ===============================
   TP — DELETE (soft)
   DELETE /curriculum-objectives/:id
=================================*/
func (ctl *CurriculumController) DeleteObjective(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID TP tidak valid")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&model.CurriculumObjectiveModel{}, "curriculum_objective_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus TP")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "TP tidak ditemukan")
	}
	return helper.JsonDeleted(c, "TP berhasil dihapus", fiber.Map{"curriculum_objective_id": id})
}

// file: internals/features/school/academics/subjects/controller/subject_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/academics/subjects/dto"
	model "sekolahku_backend/internals/features/school/academics/subjects/model"
	helper "sekolahku_backend/internals/helpers"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db, Validate: validator.New()}
}

/* ===============================
   CREATE
   POST /subjects
=================================*/
func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	row := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat mapel")
	}
	return helper.JsonCreated(c, "Mapel berhasil dibuat", row)
}

/* ===============================
   LIST (filter level/phase)
   GET /subjects?level_id=&phase=
=================================*/
func (ctl *SubjectController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.SubjectModel{})
	if levelID := c.Query("level_id"); levelID != "" {
		id, err := uuid.Parse(levelID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "level_id tidak valid")
		}
		q = q.Where("subject_level_id = ?", id)
	}
	if phase := c.Query("phase"); phase != "" {
		// subjects tanpa fase berlaku umum
		q = q.Where("(subject_phase = ? OR subject_phase IS NULL)", phase)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung mapel")
	}

	var rows []model.SubjectModel
	if err := q.Order("subject_name ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil mapel")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(paging, total))
}

/* ===============================
   DETAIL
   GET /subjects/:id
=================================*/
func (ctl *SubjectController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID mapel tidak valid")
	}
	var row model.SubjectModel
	if err := ctl.DB.WithContext(c.Context()).First(&row, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil mapel")
	}
	return helper.JsonOK(c, "", row)
}

/* ===============================
   UPDATE (partial)
   PATCH /subjects/:id
=================================*/
func (ctl *SubjectController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID mapel tidak valid")
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var row model.SubjectModel
		if err := tx.First(&row, "subject_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil mapel")
		}
		req.Apply(&row)
		if err := tx.Save(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui mapel")
		}
		return helper.JsonUpdated(c, "Mapel berhasil diperbarui", row)
	})
}

/* ===============================
   DELETE (soft)
   DELETE /subjects/:id
=================================*/
func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID mapel tidak valid")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&model.SubjectModel{}, "subject_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus mapel")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Mapel berhasil dihapus", fiber.Map{"subject_id": id})
}

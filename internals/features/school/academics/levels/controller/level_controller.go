// file: internals/features/school/academics/levels/controller/level_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/academics/levels/dto"
	model "sekolahku_backend/internals/features/school/academics/levels/model"
	service "sekolahku_backend/internals/features/school/academics/levels/service"
	helper "sekolahku_backend/internals/helpers"
)

type LevelController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLevelController(db *gorm.DB) *LevelController {
	return &LevelController{DB: db, Validate: validator.New()}
}

/* ===============================
   CREATE
   POST /levels
=================================*/
func (ctl *LevelController) Create(c *fiber.Ctx) error {
	var req dto.CreateLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	row := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat jenjang")
	}
	return helper.JsonCreated(c, "Jenjang berhasil dibuat", row)
}

/* ===============================
   LIST
   GET /levels
=================================*/
func (ctl *LevelController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.LevelModel{})
	if active := c.Query("is_active"); active != "" {
		q = q.Where("level_is_active = ?", active == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung jenjang")
	}

	var rows []model.LevelModel
	if err := q.Order("level_name ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jenjang")
	}

	out := make([]dto.LevelResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.LevelResponse{
			LevelModel:      row,
			AvailablePhases: service.AvailablePhases(row.LevelPhaseMap),
		})
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(paging, total))
}

/* ===============================
   DETAIL + fase tersedia
   GET /levels/:id
=================================*/
func (ctl *LevelController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jenjang tidak valid")
	}

	var row model.LevelModel
	if err := ctl.DB.WithContext(c.Context()).First(&row, "level_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jenjang tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jenjang")
	}

	return helper.JsonOK(c, "", dto.LevelResponse{
		LevelModel:      row,
		AvailablePhases: service.AvailablePhases(row.LevelPhaseMap),
	})
}

/* ===============================
   FASE TERSEDIA
   GET /levels/:id/phases
=================================*/
// Phases: huruf fase yang muncul di phase_map jenjang, untuk dropdown pemilihan.
func (ctl *LevelController) Phases(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jenjang tidak valid")
	}

	var row model.LevelModel
	if err := ctl.DB.WithContext(c.Context()).First(&row, "level_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jenjang tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jenjang")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"level_id": row.LevelID,
		"phases":   service.AvailablePhases(row.LevelPhaseMap),
	})
}

/* ===============================
   UPDATE (partial)
   PATCH /levels/:id
=================================*/
func (ctl *LevelController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jenjang tidak valid")
	}

	var req dto.UpdateLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var row model.LevelModel
		if err := tx.First(&row, "level_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Jenjang tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jenjang")
		}

		req.Apply(&row)
		if err := tx.Save(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui jenjang")
		}
		return helper.JsonUpdated(c, "Jenjang berhasil diperbarui", row)
	})
}

/* ===============================
   DELETE (soft)
   DELETE /levels/:id
=================================*/
func (ctl *LevelController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jenjang tidak valid")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&model.LevelModel{}, "level_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jenjang")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jenjang tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Jenjang berhasil dihapus", fiber.Map{"level_id": id})
}

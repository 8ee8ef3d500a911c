// file: internals/features/school/academics/terms/controller/academic_term_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "sekolahku_backend/internals/features/school/academics/terms/model"
	helper "sekolahku_backend/internals/helpers"
)

type AcademicTermController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAcademicTermController(db *gorm.DB) *AcademicTermController {
	return &AcademicTermController{DB: db, Validate: validator.New()}
}

type upsertTermRequest struct {
	Year      string     `json:"academic_term_year" validate:"required,min=4,max=9"`
	Name      string     `json:"academic_term_name" validate:"required,min=1,max=60"`
	IsActive  *bool      `json:"academic_term_is_active"`
	StartDate *time.Time `json:"academic_term_start_date"`
	EndDate   *time.Time `json:"academic_term_end_date"`
}

func (ctl *AcademicTermController) Create(c *fiber.Ctx) error {
	var req upsertTermRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	req.Year = strings.TrimSpace(req.Year)
	req.Name = strings.TrimSpace(req.Name)
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	row := model.AcademicTermModel{
		AcademicTermYear:      req.Year,
		AcademicTermName:      req.Name,
		AcademicTermStartDate: req.StartDate,
		AcademicTermEndDate:   req.EndDate,
	}
	if req.IsActive != nil {
		row.AcademicTermIsActive = *req.IsActive
	}

	return ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// hanya satu term aktif
		if row.AcademicTermIsActive {
			if err := tx.Model(&model.AcademicTermModel{}).
				Where("academic_term_is_active = TRUE").
				Update("academic_term_is_active", false).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menonaktifkan term lama")
			}
		}
		if err := tx.Create(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat tahun ajaran")
		}
		return helper.JsonCreated(c, "Tahun ajaran berhasil dibuat", row)
	})
}

func (ctl *AcademicTermController) List(c *fiber.Ctx) error {
	var rows []model.AcademicTermModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("academic_term_year DESC, academic_term_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tahun ajaran")
	}
	return helper.JsonOK(c, "", rows)
}

func (ctl *AcademicTermController) SetActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tahun ajaran tidak valid")
	}

	return ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var row model.AcademicTermModel
		if err := tx.First(&row, "academic_term_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tahun ajaran")
		}
		if err := tx.Model(&model.AcademicTermModel{}).
			Where("academic_term_is_active = TRUE").
			Update("academic_term_is_active", false).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menonaktifkan term lama")
		}
		if err := tx.Model(&row).Update("academic_term_is_active", true).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengaktifkan tahun ajaran")
		}
		row.AcademicTermIsActive = true
		return helper.JsonUpdated(c, "Tahun ajaran diaktifkan", row)
	})
}

func (ctl *AcademicTermController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tahun ajaran tidak valid")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&model.AcademicTermModel{}, "academic_term_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus tahun ajaran")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Tahun ajaran berhasil dihapus", fiber.Map{"academic_term_id": id})
}

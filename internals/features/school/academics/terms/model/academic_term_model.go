// file: internals/features/school/academics/terms/model/academic_term_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AcademicTermModel struct {
	AcademicTermID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_term_id" json:"academic_term_id"`

	// contoh: "2025/2026"
	AcademicTermYear string `gorm:"type:varchar(9);not null;column:academic_term_year" json:"academic_term_year"`
	AcademicTermName string `gorm:"type:varchar(60);not null;column:academic_term_name" json:"academic_term_name"`

	// hanya satu term aktif pada satu waktu (dijaga di controller)
	AcademicTermIsActive bool `gorm:"not null;default:false;column:academic_term_is_active" json:"academic_term_is_active"`

	AcademicTermStartDate *time.Time `gorm:"type:date;column:academic_term_start_date" json:"academic_term_start_date,omitempty"`
	AcademicTermEndDate   *time.Time `gorm:"type:date;column:academic_term_end_date" json:"academic_term_end_date,omitempty"`

	AcademicTermCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:academic_term_created_at" json:"academic_term_created_at"`
	AcademicTermUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:academic_term_updated_at" json:"academic_term_updated_at"`
	AcademicTermDeletedAt gorm.DeletedAt `gorm:"column:academic_term_deleted_at;index" json:"academic_term_deleted_at,omitempty"`
}

func (AcademicTermModel) TableName() string { return "academic_terms" }

// Semester dalam satu tahun ajaran
const (
	SemesterGanjil = 1
	SemesterGenap  = 2
)

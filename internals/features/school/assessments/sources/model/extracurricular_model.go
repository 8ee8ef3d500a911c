// file: internals/features/school/assessments/sources/model/extracurricular_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExtracurricularModel: master kegiatan ekstrakurikuler (Pramuka, Futsal, dst).
type ExtracurricularModel struct {
	ExtracurricularID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:extracurricular_id" json:"extracurricular_id"`

	ExtracurricularName string `gorm:"type:varchar(120);not null;column:extracurricular_name" json:"extracurricular_name"`
	ExtracurricularDesc string `gorm:"type:text;column:extracurricular_desc" json:"extracurricular_desc,omitempty"`

	ExtracurricularCreatedAt time.Time      `gorm:"column:extracurricular_created_at;autoCreateTime" json:"extracurricular_created_at"`
	ExtracurricularUpdatedAt time.Time      `gorm:"column:extracurricular_updated_at;autoUpdateTime" json:"extracurricular_updated_at"`
	ExtracurricularDeletedAt gorm.DeletedAt `gorm:"column:extracurricular_deleted_at;index" json:"-"`
}

func (ExtracurricularModel) TableName() string { return "extracurriculars" }

// ExtracurricularAssessmentModel: penilaian ekskul per (siswa, kegiatan, kelas, periode, semester).
type ExtracurricularAssessmentModel struct {
	ExtracurricularAssessmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:extracurricular_assessment_id" json:"extracurricular_assessment_id"`

	ExtracurricularAssessmentStudentID         uuid.UUID `gorm:"type:uuid;not null;column:extracurricular_assessment_student_id;uniqueIndex:uq_extracurricular_assessment,priority:1" json:"extracurricular_assessment_student_id"`
	ExtracurricularAssessmentExtracurricularID uuid.UUID `gorm:"type:uuid;not null;column:extracurricular_assessment_extracurricular_id;uniqueIndex:uq_extracurricular_assessment,priority:2" json:"extracurricular_assessment_extracurricular_id"`
	ExtracurricularAssessmentClassroomID       uuid.UUID `gorm:"type:uuid;not null;column:extracurricular_assessment_classroom_id;uniqueIndex:uq_extracurricular_assessment,priority:3;index" json:"extracurricular_assessment_classroom_id"`
	ExtracurricularAssessmentTermID            uuid.UUID `gorm:"type:uuid;not null;column:extracurricular_assessment_term_id;uniqueIndex:uq_extracurricular_assessment,priority:4" json:"extracurricular_assessment_term_id"`
	ExtracurricularAssessmentSemester          int       `gorm:"not null;column:extracurricular_assessment_semester;uniqueIndex:uq_extracurricular_assessment,priority:5" json:"extracurricular_assessment_semester"`

	ExtracurricularAssessmentLevel string `gorm:"type:varchar(30);not null;column:extracurricular_assessment_level" json:"extracurricular_assessment_level"`
	ExtracurricularAssessmentDesc  string `gorm:"type:text;column:extracurricular_assessment_desc" json:"extracurricular_assessment_desc,omitempty"`

	Extracurricular *ExtracurricularModel `gorm:"foreignKey:ExtracurricularAssessmentExtracurricularID;references:ExtracurricularID" json:"extracurricular,omitempty"`

	ExtracurricularAssessmentCreatedAt time.Time      `gorm:"column:extracurricular_assessment_created_at;autoCreateTime" json:"extracurricular_assessment_created_at"`
	ExtracurricularAssessmentUpdatedAt time.Time      `gorm:"column:extracurricular_assessment_updated_at;autoUpdateTime" json:"extracurricular_assessment_updated_at"`
	ExtracurricularAssessmentDeletedAt gorm.DeletedAt `gorm:"column:extracurricular_assessment_deleted_at;index" json:"-"`
}

func (ExtracurricularAssessmentModel) TableName() string { return "extracurricular_assessments" }

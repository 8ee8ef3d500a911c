// file: internals/features/school/assessments/sources/model/developmental_assessment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Aspek perkembangan PAUD yang lazim dipakai.
const (
	DevelopmentalAspectReligious = "nilai_agama_dan_moral"
	DevelopmentalAspectPhysical  = "fisik_motorik"
	DevelopmentalAspectCognitive = "kognitif"
	DevelopmentalAspectLanguage  = "bahasa"
	DevelopmentalAspectSocial    = "sosial_emosional"
	DevelopmentalAspectArt       = "seni"
)

// DevelopmentalAssessmentModel: capaian perkembangan PAUD per aspek.
// Hanya diisi untuk kelas jenjang PAUD; kelas lain tidak punya baris sama sekali.
type DevelopmentalAssessmentModel struct {
	DevelopmentalAssessmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:developmental_assessment_id" json:"developmental_assessment_id"`

	DevelopmentalAssessmentStudentID   uuid.UUID `gorm:"type:uuid;not null;column:developmental_assessment_student_id;uniqueIndex:uq_developmental_assessment,priority:1" json:"developmental_assessment_student_id"`
	DevelopmentalAssessmentClassroomID uuid.UUID `gorm:"type:uuid;not null;column:developmental_assessment_classroom_id;uniqueIndex:uq_developmental_assessment,priority:2;index" json:"developmental_assessment_classroom_id"`
	DevelopmentalAssessmentTermID      uuid.UUID `gorm:"type:uuid;not null;column:developmental_assessment_term_id;uniqueIndex:uq_developmental_assessment,priority:3" json:"developmental_assessment_term_id"`
	DevelopmentalAssessmentSemester    int       `gorm:"not null;column:developmental_assessment_semester;uniqueIndex:uq_developmental_assessment,priority:4" json:"developmental_assessment_semester"`
	DevelopmentalAssessmentAspect      string    `gorm:"type:varchar(40);not null;column:developmental_assessment_aspect;uniqueIndex:uq_developmental_assessment,priority:5" json:"developmental_assessment_aspect"`

	DevelopmentalAssessmentDesc string `gorm:"type:text;not null;column:developmental_assessment_desc" json:"developmental_assessment_desc"`

	DevelopmentalAssessmentCreatedAt time.Time      `gorm:"column:developmental_assessment_created_at;autoCreateTime" json:"developmental_assessment_created_at"`
	DevelopmentalAssessmentUpdatedAt time.Time      `gorm:"column:developmental_assessment_updated_at;autoUpdateTime" json:"developmental_assessment_updated_at"`
	DevelopmentalAssessmentDeletedAt gorm.DeletedAt `gorm:"column:developmental_assessment_deleted_at;index" json:"-"`
}

func (DevelopmentalAssessmentModel) TableName() string { return "developmental_assessments" }

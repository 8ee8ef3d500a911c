// file: internals/features/school/assessments/sources/model/competency_assessment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompetencyAssessmentModel: capaian kompetensi per (siswa, mapel, kelas, periode, semester).
// Level ordinal 1..4 (perlu bimbingan → sangat baik).
type CompetencyAssessmentModel struct {
	CompetencyAssessmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:competency_assessment_id" json:"competency_assessment_id"`

	CompetencyAssessmentStudentID   uuid.UUID `gorm:"type:uuid;not null;column:competency_assessment_student_id;uniqueIndex:uq_competency_assessment,priority:1" json:"competency_assessment_student_id"`
	CompetencyAssessmentSubjectID   uuid.UUID `gorm:"type:uuid;not null;column:competency_assessment_subject_id;uniqueIndex:uq_competency_assessment,priority:2" json:"competency_assessment_subject_id"`
	CompetencyAssessmentClassroomID uuid.UUID `gorm:"type:uuid;not null;column:competency_assessment_classroom_id;uniqueIndex:uq_competency_assessment,priority:3;index" json:"competency_assessment_classroom_id"`
	CompetencyAssessmentTermID      uuid.UUID `gorm:"type:uuid;not null;column:competency_assessment_term_id;uniqueIndex:uq_competency_assessment,priority:4" json:"competency_assessment_term_id"`
	CompetencyAssessmentSemester    int       `gorm:"not null;column:competency_assessment_semester;uniqueIndex:uq_competency_assessment,priority:5" json:"competency_assessment_semester"`

	CompetencyAssessmentLevel int    `gorm:"not null;column:competency_assessment_level" json:"competency_assessment_level"`
	CompetencyAssessmentDesc  string `gorm:"type:text;not null;column:competency_assessment_desc" json:"competency_assessment_desc"`

	CompetencyAssessmentCreatedAt time.Time      `gorm:"column:competency_assessment_created_at;autoCreateTime" json:"competency_assessment_created_at"`
	CompetencyAssessmentUpdatedAt time.Time      `gorm:"column:competency_assessment_updated_at;autoUpdateTime" json:"competency_assessment_updated_at"`
	CompetencyAssessmentDeletedAt gorm.DeletedAt `gorm:"column:competency_assessment_deleted_at;index" json:"-"`
}

func (CompetencyAssessmentModel) TableName() string { return "competency_assessments" }

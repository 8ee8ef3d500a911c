// file: internals/features/school/assessments/sources/model/project_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ProjectModel: proyek P5 (Projek Penguatan Profil Pelajar Pancasila) milik
// satu kelas dalam satu periode. Dimensi profil disimpan sebagai text[].
type ProjectModel struct {
	ProjectID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:project_id" json:"project_id"`

	ProjectClassroomID uuid.UUID `gorm:"type:uuid;not null;column:project_classroom_id;index" json:"project_classroom_id"`
	ProjectTermID      uuid.UUID `gorm:"type:uuid;not null;column:project_term_id;index" json:"project_term_id"`

	ProjectTitle      string         `gorm:"type:varchar(160);not null;column:project_title" json:"project_title"`
	ProjectDesc       string         `gorm:"type:text;column:project_desc" json:"project_desc,omitempty"`
	ProjectDimensions pq.StringArray `gorm:"type:text[];column:project_dimensions" json:"project_dimensions,omitempty"`

	ProjectCreatedAt time.Time      `gorm:"column:project_created_at;autoCreateTime" json:"project_created_at"`
	ProjectUpdatedAt time.Time      `gorm:"column:project_updated_at;autoUpdateTime" json:"project_updated_at"`
	ProjectDeletedAt gorm.DeletedAt `gorm:"column:project_deleted_at;index" json:"-"`
}

func (ProjectModel) TableName() string { return "projects" }

// ProjectAssessmentModel: capaian satu siswa untuk satu dimensi proyek.
// Level pakai skala P5: BB / MB / BSH / SB.
type ProjectAssessmentModel struct {
	ProjectAssessmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:project_assessment_id" json:"project_assessment_id"`

	ProjectAssessmentProjectID uuid.UUID `gorm:"type:uuid;not null;column:project_assessment_project_id;uniqueIndex:uq_project_assessment,priority:1;index" json:"project_assessment_project_id"`
	ProjectAssessmentStudentID uuid.UUID `gorm:"type:uuid;not null;column:project_assessment_student_id;uniqueIndex:uq_project_assessment,priority:2" json:"project_assessment_student_id"`
	ProjectAssessmentDimension string    `gorm:"type:varchar(120);not null;column:project_assessment_dimension;uniqueIndex:uq_project_assessment,priority:3" json:"project_assessment_dimension"`

	ProjectAssessmentLevel string `gorm:"type:varchar(10);not null;column:project_assessment_level" json:"project_assessment_level"`
	ProjectAssessmentDesc  string `gorm:"type:text;column:project_assessment_desc" json:"project_assessment_desc,omitempty"`

	Project *ProjectModel `gorm:"foreignKey:ProjectAssessmentProjectID;references:ProjectID" json:"project,omitempty"`

	ProjectAssessmentCreatedAt time.Time      `gorm:"column:project_assessment_created_at;autoCreateTime" json:"project_assessment_created_at"`
	ProjectAssessmentUpdatedAt time.Time      `gorm:"column:project_assessment_updated_at;autoUpdateTime" json:"project_assessment_updated_at"`
	ProjectAssessmentDeletedAt gorm.DeletedAt `gorm:"column:project_assessment_deleted_at;index" json:"-"`
}

func (ProjectAssessmentModel) TableName() string { return "project_assessments" }

// file: internals/features/school/academics/curriculum/model/curriculum_objective_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CurriculumObjectiveModel = TP (tujuan pembelajaran): butir target halus di bawah satu CP.
type CurriculumObjectiveModel struct {
	CurriculumObjectiveID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:curriculum_objective_id" json:"curriculum_objective_id"`

	CurriculumObjectiveGroupID uuid.UUID `gorm:"type:uuid;not null;column:curriculum_objective_group_id;index" json:"curriculum_objective_group_id"`

	// kode pendek, mis. "TP-3.1"
	CurriculumObjectiveCode string `gorm:"type:varchar(30);not null;column:curriculum_objective_code" json:"curriculum_objective_code"`
	CurriculumObjectiveDesc string `gorm:"type:text;not null;column:curriculum_objective_desc" json:"curriculum_objective_desc"`

	CurriculumObjectiveCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:curriculum_objective_created_at" json:"curriculum_objective_created_at"`
	CurriculumObjectiveUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:curriculum_objective_updated_at" json:"curriculum_objective_updated_at"`
	CurriculumObjectiveDeletedAt gorm.DeletedAt `gorm:"column:curriculum_objective_deleted_at;index" json:"curriculum_objective_deleted_at,omitempty"`
}

func (CurriculumObjectiveModel) TableName() string { return "curriculum_objectives" }

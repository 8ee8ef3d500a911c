// file: internals/features/school/academics/curriculum/model/curriculum_group_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CurriculumGroupModel = CP (capaian pembelajaran): memayungi sekumpulan TP
// untuk satu mapel pada satu fase. Satu group selalu bertag tepat satu fase.
type CurriculumGroupModel struct {
	CurriculumGroupID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:curriculum_group_id" json:"curriculum_group_id"`

	CurriculumGroupSubjectID uuid.UUID `gorm:"type:uuid;not null;column:curriculum_group_subject_id;index" json:"curriculum_group_subject_id"`
	CurriculumGroupPhase     string    `gorm:"type:varchar(1);not null;column:curriculum_group_phase" json:"curriculum_group_phase"`

	CurriculumGroupTitle string  `gorm:"type:varchar(200);not null;column:curriculum_group_title" json:"curriculum_group_title"`
	CurriculumGroupDesc  *string `gorm:"type:text;column:curriculum_group_desc" json:"curriculum_group_desc,omitempty"`

	CurriculumGroupCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:curriculum_group_created_at" json:"curriculum_group_created_at"`
	CurriculumGroupUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:curriculum_group_updated_at" json:"curriculum_group_updated_at"`
	CurriculumGroupDeletedAt gorm.DeletedAt `gorm:"column:curriculum_group_deleted_at;index" json:"curriculum_group_deleted_at,omitempty"`

	// relasi TP
	Objectives []CurriculumObjectiveModel `gorm:"foreignKey:CurriculumObjectiveGroupID;references:CurriculumGroupID" json:"objectives,omitempty"`
}

func (CurriculumGroupModel) TableName() string { return "curriculum_groups" }

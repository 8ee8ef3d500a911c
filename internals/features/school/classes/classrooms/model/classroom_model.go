// file: internals/features/school/classes/classrooms/model/classroom_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassroomModel struct {
	ClassroomID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:classroom_id" json:"classroom_id"`

	ClassroomName    string    `gorm:"type:varchar(120);not null;column:classroom_name" json:"classroom_name"`
	ClassroomLevelID uuid.UUID `gorm:"type:uuid;not null;column:classroom_level_id;index" json:"classroom_level_id"`
	ClassroomTermID  uuid.UUID `gorm:"type:uuid;not null;column:classroom_term_id;index" json:"classroom_term_id"`

	// nomor tingkat (1..12); nullable → fase tidak bisa di-resolve
	ClassroomClassLevel *int `gorm:"column:classroom_class_level" json:"classroom_class_level,omitempty"`

	ClassroomIsActive  bool           `gorm:"not null;default:true;column:classroom_is_active" json:"classroom_is_active"`
	ClassroomCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:classroom_created_at" json:"classroom_created_at"`
	ClassroomUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:classroom_updated_at" json:"classroom_updated_at"`
	ClassroomDeletedAt gorm.DeletedAt `gorm:"column:classroom_deleted_at;index" json:"classroom_deleted_at,omitempty"`
}

func (ClassroomModel) TableName() string { return "classrooms" }

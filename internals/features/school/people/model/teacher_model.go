// file: internals/features/school/people/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID     uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_id" json:"teacher_id"`
	TeacherUserID *uuid.UUID `gorm:"type:uuid;column:teacher_user_id" json:"teacher_user_id,omitempty"`

	TeacherNIP   string  `gorm:"type:varchar(30);not null;column:teacher_nip"    json:"teacher_nip"`
	TeacherName  string  `gorm:"type:varchar(120);not null;column:teacher_name"  json:"teacher_name"`
	TeacherTitle *string `gorm:"type:varchar(60);column:teacher_title"           json:"teacher_title,omitempty"`

	TeacherIsActive  bool           `gorm:"not null;default:true;column:teacher_is_active" json:"teacher_is_active"`
	TeacherCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:teacher_created_at" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:teacher_updated_at" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }

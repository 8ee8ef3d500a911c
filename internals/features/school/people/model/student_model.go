// file: internals/features/school/people/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentUserID *uuid.UUID `gorm:"type:uuid;column:student_user_id" json:"student_user_id,omitempty"`

	// Identitas
	StudentNIS  string  `gorm:"type:varchar(30);not null;column:student_nis"   json:"student_nis"`
	StudentName string  `gorm:"type:varchar(120);not null;column:student_name" json:"student_name"`
	StudentSex  *string `gorm:"type:varchar(1);column:student_sex"             json:"student_sex,omitempty"`

	// Wali
	StudentGuardianName  *string `gorm:"type:varchar(120);column:student_guardian_name"  json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string `gorm:"type:varchar(30);column:student_guardian_phone"  json:"student_guardian_phone,omitempty"`

	// Status & audit
	StudentIsActive  bool           `gorm:"not null;default:true;column:student_is_active" json:"student_is_active"`
	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

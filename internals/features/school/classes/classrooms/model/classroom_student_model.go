// file: internals/features/school/classes/classrooms/model/classroom_student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrolment siswa ke satu kelas. Unik per (classroom, student).
type ClassroomStudentModel struct {
	ClassroomStudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:classroom_student_id" json:"classroom_student_id"`

	ClassroomStudentClassroomID uuid.UUID `gorm:"type:uuid;not null;column:classroom_student_classroom_id;uniqueIndex:uq_classroom_student" json:"classroom_student_classroom_id"`
	ClassroomStudentStudentID   uuid.UUID `gorm:"type:uuid;not null;column:classroom_student_student_id;uniqueIndex:uq_classroom_student" json:"classroom_student_student_id"`

	ClassroomStudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:classroom_student_created_at" json:"classroom_student_created_at"`
	ClassroomStudentDeletedAt gorm.DeletedAt `gorm:"column:classroom_student_deleted_at;index" json:"classroom_student_deleted_at,omitempty"`
}

func (ClassroomStudentModel) TableName() string { return "classroom_students" }

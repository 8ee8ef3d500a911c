// file: internals/features/school/teachers/assignments/model/teacher_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Jenis penugasan guru ke kelas
const (
	AssignmentTypeClassTeacher   = "class_teacher"
	AssignmentTypeSubjectTeacher = "subject_teacher"
	AssignmentTypeHomeroom       = "homeroom"
)

// TeacherAssignmentModel: satu baris = satu penugasan guru.
// Subject NULL + type class_teacher/homeroom = bertanggung jawab seluruh mapel kelas itu.
type TeacherAssignmentModel struct {
	TeacherAssignmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_assignment_id" json:"teacher_assignment_id"`

	TeacherAssignmentTeacherID   uuid.UUID  `gorm:"type:uuid;not null;column:teacher_assignment_teacher_id;index;uniqueIndex:uq_teacher_assignment" json:"teacher_assignment_teacher_id"`
	TeacherAssignmentClassroomID uuid.UUID  `gorm:"type:uuid;not null;column:teacher_assignment_classroom_id;uniqueIndex:uq_teacher_assignment" json:"teacher_assignment_classroom_id"`
	TeacherAssignmentSubjectID   *uuid.UUID `gorm:"type:uuid;column:teacher_assignment_subject_id;uniqueIndex:uq_teacher_assignment" json:"teacher_assignment_subject_id,omitempty"`

	// class_teacher | subject_teacher | homeroom
	TeacherAssignmentType   string    `gorm:"type:varchar(20);not null;column:teacher_assignment_type;uniqueIndex:uq_teacher_assignment" json:"teacher_assignment_type"`
	TeacherAssignmentTermID uuid.UUID `gorm:"type:uuid;not null;column:teacher_assignment_term_id;index;uniqueIndex:uq_teacher_assignment" json:"teacher_assignment_term_id"`

	TeacherAssignmentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:teacher_assignment_created_at" json:"teacher_assignment_created_at"`
	TeacherAssignmentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:teacher_assignment_updated_at" json:"teacher_assignment_updated_at"`
	TeacherAssignmentDeletedAt gorm.DeletedAt `gorm:"column:teacher_assignment_deleted_at;index" json:"teacher_assignment_deleted_at,omitempty"`
}

func (TeacherAssignmentModel) TableName() string { return "teacher_assignments" }

// IsWholeClass: penugasan yang mencakup semua mapel di kelas tersebut
func (m TeacherAssignmentModel) IsWholeClass() bool {
	return m.TeacherAssignmentType == AssignmentTypeClassTeacher ||
		m.TeacherAssignmentType == AssignmentTypeHomeroom
}

// file: internals/features/school/teachers/assignments/dto/teacher_assignment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/teachers/assignments/model"
)

type CreateTeacherAssignmentRequest struct {
	TeacherID   uuid.UUID  `json:"teacher_assignment_teacher_id" validate:"required"`
	ClassroomID uuid.UUID  `json:"teacher_assignment_classroom_id" validate:"required"`
	SubjectID   *uuid.UUID `json:"teacher_assignment_subject_id"`
	Type        string     `json:"teacher_assignment_type" validate:"required,oneof=class_teacher subject_teacher homeroom"`
	TermID      uuid.UUID  `json:"teacher_assignment_term_id" validate:"required"`
}

func (r *CreateTeacherAssignmentRequest) Normalize() {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
}

func (r CreateTeacherAssignmentRequest) ToModel() m.TeacherAssignmentModel {
	now := time.Now()
	return m.TeacherAssignmentModel{
		TeacherAssignmentTeacherID:   r.TeacherID,
		TeacherAssignmentClassroomID: r.ClassroomID,
		TeacherAssignmentSubjectID:   r.SubjectID,
		TeacherAssignmentType:        r.Type,
		TeacherAssignmentTermID:      r.TermID,
		TeacherAssignmentCreatedAt:   now,
		TeacherAssignmentUpdatedAt:   now,
	}
}

// file: internals/features/school/academics/subjects/dto/subject_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/academics/subjects/model"
)

type CreateSubjectRequest struct {
	Code string  `json:"subject_code" validate:"required,min=1,max=40"`
	Name string  `json:"subject_name" validate:"required,min=1,max=120"`
	Desc *string `json:"subject_desc"`

	Phase   *string    `json:"subject_phase" validate:"omitempty,oneof=A B C D E F"`
	LevelID *uuid.UUID `json:"subject_level_id"`

	IsActive *bool `json:"subject_is_active"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
	r.Name = strings.TrimSpace(r.Name)
	if r.Desc != nil {
		d := strings.TrimSpace(*r.Desc)
		if d == "" {
			r.Desc = nil
		} else {
			r.Desc = &d
		}
	}
	if r.Phase != nil {
		p := strings.ToUpper(strings.TrimSpace(*r.Phase))
		if p == "" {
			r.Phase = nil
		} else {
			r.Phase = &p
		}
	}
}

func (r CreateSubjectRequest) ToModel() m.SubjectModel {
	now := time.Now()
	mm := m.SubjectModel{
		SubjectCode:      r.Code,
		SubjectName:      r.Name,
		SubjectDesc:      r.Desc,
		SubjectPhase:     r.Phase,
		SubjectLevelID:   r.LevelID,
		SubjectIsActive:  true,
		SubjectCreatedAt: now,
		SubjectUpdatedAt: now,
	}
	if r.IsActive != nil {
		mm.SubjectIsActive = *r.IsActive
	}
	return mm
}

type UpdateSubjectRequest struct {
	Code     *string    `json:"subject_code" validate:"omitempty,min=1,max=40"`
	Name     *string    `json:"subject_name" validate:"omitempty,min=1,max=120"`
	Desc     *string    `json:"subject_desc"`
	Phase    *string    `json:"subject_phase" validate:"omitempty,oneof=A B C D E F"`
	LevelID  *uuid.UUID `json:"subject_level_id"`
	IsActive *bool      `json:"subject_is_active"`
}

func (r UpdateSubjectRequest) Apply(mm *m.SubjectModel) {
	if r.Code != nil {
		mm.SubjectCode = strings.TrimSpace(*r.Code)
	}
	if r.Name != nil {
		mm.SubjectName = strings.TrimSpace(*r.Name)
	}
	if r.Desc != nil {
		mm.SubjectDesc = r.Desc
	}
	if r.Phase != nil {
		p := strings.ToUpper(strings.TrimSpace(*r.Phase))
		mm.SubjectPhase = &p
	}
	if r.LevelID != nil {
		mm.SubjectLevelID = r.LevelID
	}
	if r.IsActive != nil {
		mm.SubjectIsActive = *r.IsActive
	}
	mm.SubjectUpdatedAt = time.Now()
}

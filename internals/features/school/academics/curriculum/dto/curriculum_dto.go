// file: internals/features/school/academics/curriculum/dto/curriculum_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/academics/curriculum/model"
)

/* ===== CP ===== */

type CreateCurriculumGroupRequest struct {
	SubjectID uuid.UUID `json:"curriculum_group_subject_id" validate:"required"`
	Phase     string    `json:"curriculum_group_phase" validate:"required,oneof=A B C D E F"`
	Title     string    `json:"curriculum_group_title" validate:"required,min=1,max=200"`
	Desc      *string   `json:"curriculum_group_desc"`
}

func (r *CreateCurriculumGroupRequest) Normalize() {
	r.Phase = strings.ToUpper(strings.TrimSpace(r.Phase))
	r.Title = strings.TrimSpace(r.Title)
	if r.Desc != nil {
		d := strings.TrimSpace(*r.Desc)
		if d == "" {
			r.Desc = nil
		} else {
			r.Desc = &d
		}
	}
}

func (r CreateCurriculumGroupRequest) ToModel() m.CurriculumGroupModel {
	now := time.Now()
	return m.CurriculumGroupModel{
		CurriculumGroupSubjectID: r.SubjectID,
		CurriculumGroupPhase:     r.Phase,
		CurriculumGroupTitle:     r.Title,
		CurriculumGroupDesc:      r.Desc,
		CurriculumGroupCreatedAt: now,
		CurriculumGroupUpdatedAt: now,
	}
}

/* ===== TP ===== */

type CreateCurriculumObjectiveRequest struct {
	GroupID uuid.UUID `json:"curriculum_objective_group_id" validate:"required"`
	Code    string    `json:"curriculum_objective_code" validate:"required,min=1,max=30"`
	Desc    string    `json:"curriculum_objective_desc" validate:"required,min=1"`
}

func (r *CreateCurriculumObjectiveRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
	r.Desc = strings.TrimSpace(r.Desc)
}

func (r CreateCurriculumObjectiveRequest) ToModel() m.CurriculumObjectiveModel {
	now := time.Now()
	return m.CurriculumObjectiveModel{
		CurriculumObjectiveGroupID:   r.GroupID,
		CurriculumObjectiveCode:      r.Code,
		CurriculumObjectiveDesc:      r.Desc,
		CurriculumObjectiveCreatedAt: now,
		CurriculumObjectiveUpdatedAt: now,
	}
}

type UpdateCurriculumObjectiveRequest struct {
	Code *string `json:"curriculum_objective_code" validate:"omitempty,min=1,max=30"`
	Desc *string `json:"curriculum_objective_desc" validate:"omitempty,min=1"`
}

func (r UpdateCurriculumObjectiveRequest) Apply(mm *m.CurriculumObjectiveModel) {
	if r.Code != nil {
		mm.CurriculumObjectiveCode = strings.TrimSpace(*r.Code)
	}
	if r.Desc != nil {
		mm.CurriculumObjectiveDesc = strings.TrimSpace(*r.Desc)
	}
	mm.CurriculumObjectiveUpdatedAt = time.Now()
}

// file: internals/features/school/people/dto/people_dto.go
package dto

import (
	"strings"

	model "sekolahku_backend/internals/features/school/people/model"
)

/* ===== Siswa ===== */

type CreateStudentRequest struct {
	NIS           string  `json:"nis"            validate:"required,max=30"`
	Name          string  `json:"name"           validate:"required,min=2,max=120"`
	Sex           *string `json:"sex"            validate:"omitempty,oneof=L P"`
	GuardianName  *string `json:"guardian_name"  validate:"omitempty,max=120"`
	GuardianPhone *string `json:"guardian_phone" validate:"omitempty,max=30"`
}

func (r *CreateStudentRequest) Normalize() {
	r.NIS = strings.TrimSpace(r.NIS)
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateStudentRequest) ToModel() model.StudentModel {
	return model.StudentModel{
		StudentNIS:           r.NIS,
		StudentName:          r.Name,
		StudentSex:           r.Sex,
		StudentGuardianName:  r.GuardianName,
		StudentGuardianPhone: r.GuardianPhone,
		StudentIsActive:      true,
	}
}

type UpdateStudentRequest struct {
	Name          *string `json:"name"           validate:"omitempty,min=2,max=120"`
	Sex           *string `json:"sex"            validate:"omitempty,oneof=L P"`
	GuardianName  *string `json:"guardian_name"  validate:"omitempty,max=120"`
	GuardianPhone *string `json:"guardian_phone" validate:"omitempty,max=30"`
	IsActive      *bool   `json:"is_active"`
}

func (r UpdateStudentRequest) Apply(m *model.StudentModel) {
	if r.Name != nil {
		m.StudentName = strings.TrimSpace(*r.Name)
	}
	if r.Sex != nil {
		m.StudentSex = r.Sex
	}
	if r.GuardianName != nil {
		m.StudentGuardianName = r.GuardianName
	}
	if r.GuardianPhone != nil {
		m.StudentGuardianPhone = r.GuardianPhone
	}
	if r.IsActive != nil {
		m.StudentIsActive = *r.IsActive
	}
}

/* ===== Guru ===== */

type CreateTeacherRequest struct {
	NIP   string  `json:"nip"   validate:"required,max=30"`
	Name  string  `json:"name"  validate:"required,min=2,max=120"`
	Title *string `json:"title" validate:"omitempty,max=60"`
}

func (r *CreateTeacherRequest) Normalize() {
	r.NIP = strings.TrimSpace(r.NIP)
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateTeacherRequest) ToModel() model.TeacherModel {
	return model.TeacherModel{
		TeacherNIP:      r.NIP,
		TeacherName:     r.Name,
		TeacherTitle:    r.Title,
		TeacherIsActive: true,
	}
}

type UpdateTeacherRequest struct {
	Name     *string `json:"name"  validate:"omitempty,min=2,max=120"`
	Title    *string `json:"title" validate:"omitempty,max=60"`
	IsActive *bool   `json:"is_active"`
}

func (r UpdateTeacherRequest) Apply(m *model.TeacherModel) {
	if r.Name != nil {
		m.TeacherName = strings.TrimSpace(*r.Name)
	}
	if r.Title != nil {
		m.TeacherTitle = r.Title
	}
	if r.IsActive != nil {
		m.TeacherIsActive = *r.IsActive
	}
}

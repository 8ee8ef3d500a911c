// file: internals/features/school/assessments/sources/dto/source_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "sekolahku_backend/internals/features/school/assessments/sources/model"
)

/* ===== Kompetensi ===== */

type UpsertCompetencyAssessmentRequest struct {
	StudentID   uuid.UUID `json:"student_id"   validate:"required"`
	SubjectID   uuid.UUID `json:"subject_id"   validate:"required"`
	ClassroomID uuid.UUID `json:"classroom_id" validate:"required"`
	TermID      uuid.UUID `json:"term_id"      validate:"required"`
	Semester    int       `json:"semester"     validate:"required,oneof=1 2"`
	Level       int       `json:"level"        validate:"required,min=1,max=4"`
	Description string    `json:"description"  validate:"required"`
}

func (r *UpsertCompetencyAssessmentRequest) Normalize() {
	r.Description = strings.TrimSpace(r.Description)
}

func (r UpsertCompetencyAssessmentRequest) ToModel() model.CompetencyAssessmentModel {
	return model.CompetencyAssessmentModel{
		CompetencyAssessmentStudentID:   r.StudentID,
		CompetencyAssessmentSubjectID:   r.SubjectID,
		CompetencyAssessmentClassroomID: r.ClassroomID,
		CompetencyAssessmentTermID:      r.TermID,
		CompetencyAssessmentSemester:    r.Semester,
		CompetencyAssessmentLevel:       r.Level,
		CompetencyAssessmentDesc:        r.Description,
	}
}

/* ===== Proyek P5 ===== */

type CreateProjectRequest struct {
	ClassroomID uuid.UUID `json:"classroom_id" validate:"required"`
	TermID      uuid.UUID `json:"term_id"      validate:"required"`
	Title       string    `json:"title"        validate:"required,min=3,max=160"`
	Description string    `json:"description"`
	Dimensions  []string  `json:"dimensions"   validate:"required,min=1,dive,required"`
}

func (r *CreateProjectRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	for i := range r.Dimensions {
		r.Dimensions[i] = strings.TrimSpace(r.Dimensions[i])
	}
}

func (r CreateProjectRequest) ToModel() model.ProjectModel {
	return model.ProjectModel{
		ProjectClassroomID: r.ClassroomID,
		ProjectTermID:      r.TermID,
		ProjectTitle:       r.Title,
		ProjectDesc:        r.Description,
		ProjectDimensions:  pq.StringArray(r.Dimensions),
	}
}

type UpsertProjectAssessmentRequest struct {
	ProjectID   uuid.UUID `json:"project_id" validate:"required"`
	StudentID   uuid.UUID `json:"student_id" validate:"required"`
	Dimension   string    `json:"dimension"  validate:"required,max=120"`
	Level       string    `json:"level"      validate:"required,oneof=BB MB BSH SB"`
	Description string    `json:"description"`
}

func (r *UpsertProjectAssessmentRequest) Normalize() {
	r.Dimension = strings.TrimSpace(r.Dimension)
	r.Level = strings.ToUpper(strings.TrimSpace(r.Level))
	r.Description = strings.TrimSpace(r.Description)
}

func (r UpsertProjectAssessmentRequest) ToModel() model.ProjectAssessmentModel {
	return model.ProjectAssessmentModel{
		ProjectAssessmentProjectID: r.ProjectID,
		ProjectAssessmentStudentID: r.StudentID,
		ProjectAssessmentDimension: r.Dimension,
		ProjectAssessmentLevel:     r.Level,
		ProjectAssessmentDesc:      r.Description,
	}
}

/* ===== Ekstrakurikuler ===== */

type CreateExtracurricularRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Description string `json:"description"`
}

func (r *CreateExtracurricularRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
}

func (r CreateExtracurricularRequest) ToModel() model.ExtracurricularModel {
	return model.ExtracurricularModel{
		ExtracurricularName: r.Name,
		ExtracurricularDesc: r.Description,
	}
}

type UpsertExtracurricularAssessmentRequest struct {
	StudentID         uuid.UUID `json:"student_id"          validate:"required"`
	ExtracurricularID uuid.UUID `json:"extracurricular_id"  validate:"required"`
	ClassroomID       uuid.UUID `json:"classroom_id"        validate:"required"`
	TermID            uuid.UUID `json:"term_id"             validate:"required"`
	Semester          int       `json:"semester"            validate:"required,oneof=1 2"`
	Level             string    `json:"level"               validate:"required,max=30"`
	Description       string    `json:"description"`
}

func (r *UpsertExtracurricularAssessmentRequest) Normalize() {
	r.Level = strings.TrimSpace(r.Level)
	r.Description = strings.TrimSpace(r.Description)
}

func (r UpsertExtracurricularAssessmentRequest) ToModel() model.ExtracurricularAssessmentModel {
	return model.ExtracurricularAssessmentModel{
		ExtracurricularAssessmentStudentID:         r.StudentID,
		ExtracurricularAssessmentExtracurricularID: r.ExtracurricularID,
		ExtracurricularAssessmentClassroomID:       r.ClassroomID,
		ExtracurricularAssessmentTermID:            r.TermID,
		ExtracurricularAssessmentSemester:          r.Semester,
		ExtracurricularAssessmentLevel:             r.Level,
		ExtracurricularAssessmentDesc:              r.Description,
	}
}

/* ===== Absensi ===== */

type UpsertAttendanceSummaryRequest struct {
	StudentID   uuid.UUID `json:"student_id"   validate:"required"`
	ClassroomID uuid.UUID `json:"classroom_id" validate:"required"`
	TermID      uuid.UUID `json:"term_id"      validate:"required"`
	Semester    int       `json:"semester"     validate:"required,oneof=1 2"`
	Sick        int       `json:"sick"         validate:"min=0"`
	Permission  int       `json:"permission"   validate:"min=0"`
	Absent      int       `json:"absent"       validate:"min=0"`
}

func (r UpsertAttendanceSummaryRequest) ToModel() model.AttendanceSummaryModel {
	return model.AttendanceSummaryModel{
		AttendanceSummaryStudentID:   r.StudentID,
		AttendanceSummaryClassroomID: r.ClassroomID,
		AttendanceSummaryTermID:      r.TermID,
		AttendanceSummarySemester:    r.Semester,
		AttendanceSummarySick:        r.Sick,
		AttendanceSummaryPermission:  r.Permission,
		AttendanceSummaryAbsent:      r.Absent,
	}
}

/* ===== Perkembangan PAUD ===== */

type UpsertDevelopmentalAssessmentRequest struct {
	StudentID   uuid.UUID `json:"student_id"   validate:"required"`
	ClassroomID uuid.UUID `json:"classroom_id" validate:"required"`
	TermID      uuid.UUID `json:"term_id"      validate:"required"`
	Semester    int       `json:"semester"     validate:"required,oneof=1 2"`
	Aspect      string    `json:"aspect"       validate:"required,max=40"`
	Description string    `json:"description"  validate:"required"`
}

func (r *UpsertDevelopmentalAssessmentRequest) Normalize() {
	r.Aspect = strings.ToLower(strings.TrimSpace(r.Aspect))
	r.Description = strings.TrimSpace(r.Description)
}

func (r UpsertDevelopmentalAssessmentRequest) ToModel() model.DevelopmentalAssessmentModel {
	return model.DevelopmentalAssessmentModel{
		DevelopmentalAssessmentStudentID:   r.StudentID,
		DevelopmentalAssessmentClassroomID: r.ClassroomID,
		DevelopmentalAssessmentTermID:      r.TermID,
		DevelopmentalAssessmentSemester:    r.Semester,
		DevelopmentalAssessmentAspect:      r.Aspect,
		DevelopmentalAssessmentDesc:        r.Description,
	}
}

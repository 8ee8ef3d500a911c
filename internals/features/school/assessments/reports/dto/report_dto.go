// file: internals/features/school/assessments/reports/dto/report_dto.go
package dto

import (
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/assessments/reports/service"
)

type StudentNoteRequest struct {
	StudentID    uuid.UUID `json:"student_id" validate:"required"`
	HomeroomNote string    `json:"homeroom_note"`
	Achievements string    `json:"achievements"`
}

// GenerateReportRequest: daftar siswa EKSPLISIT — tidak ada "semua siswa"
// implisit; keanggotaan kelas divalidasi ulang di engine.
type GenerateReportRequest struct {
	ClassroomID    uuid.UUID            `json:"classroom_id"    validate:"required"`
	TermID         uuid.UUID            `json:"term_id"         validate:"required"`
	Semester       int                  `json:"semester"        validate:"required,oneof=1 2"`
	CurriculumType string               `json:"curriculum_type" validate:"required,oneof=merdeka paud konvensional"`
	StudentIDs     []uuid.UUID          `json:"student_ids"     validate:"required,min=1"`
	Notes          []StudentNoteRequest `json:"notes"           validate:"omitempty,dive"`
}

func (r GenerateReportRequest) ToInput() service.GenerateInput {
	in := service.GenerateInput{
		Cohort: service.CohortQuery{
			ClassroomID: r.ClassroomID,
			TermID:      r.TermID,
			Semester:    r.Semester,
		},
		StudentIDs:     r.StudentIDs,
		CurriculumType: r.CurriculumType,
	}
	if len(r.Notes) > 0 {
		in.Notes = make(map[uuid.UUID]service.ReportNotes, len(r.Notes))
		for _, n := range r.Notes {
			in.Notes[n.StudentID] = service.ReportNotes{
				HomeroomNote: n.HomeroomNote,
				Achievements: n.Achievements,
			}
		}
	}
	return in
}

type GenerateReportResponse struct {
	Generated         int         `json:"generated"`
	SkippedStudentIDs []uuid.UUID `json:"skipped_student_ids,omitempty"`
}

package dto

import (
	"github.com/google/uuid"

	gradeModel "sekolahku_backend/internals/features/school/assessments/grades/model"
	"sekolahku_backend/internals/features/school/assessments/grades/service"
)

/* ===== Request ===== */

// GradeContextQuery: konteks penilaian dari query string (roster & kandidat TP)
type GradeContextQuery struct {
	ClassroomID uuid.UUID `query:"classroom_id" validate:"required"`
	SubjectID   uuid.UUID `query:"subject_id"   validate:"required"`
	TermID      uuid.UUID `query:"term_id"      validate:"required"`
	Semester    int       `query:"semester"     validate:"required,oneof=1 2"`
}

func (q GradeContextQuery) ToQuery() service.GradeQuery {
	return service.GradeQuery{
		ClassroomID: q.ClassroomID,
		SubjectID:   q.SubjectID,
		TermID:      q.TermID,
		Semester:    q.Semester,
	}
}

type StudentGradeEntryRequest struct {
	StudentID           uuid.UUID          `json:"student_id" validate:"required"`
	StudentName         string             `json:"student_name"`
	Score               *float64           `json:"score" validate:"omitempty,gte=0,lte=100"`
	StrongestIDs        gradeModel.UUIDSet `json:"strongest_ids"`
	NeedsImprovementIDs gradeModel.UUIDSet `json:"needs_improvement_ids"`
}

// SaveGradesRequest: satu batch roster untuk (kelas, mapel, periode, semester)
type SaveGradesRequest struct {
	ClassroomID uuid.UUID                  `json:"classroom_id" validate:"required"`
	SubjectID   uuid.UUID                  `json:"subject_id"   validate:"required"`
	TermID      uuid.UUID                  `json:"term_id"      validate:"required"`
	Semester    int                        `json:"semester"     validate:"required,oneof=1 2"`
	Entries     []StudentGradeEntryRequest `json:"entries"      validate:"required,min=1,dive"`
}

func (r SaveGradesRequest) ToQuery() service.GradeQuery {
	return service.GradeQuery{
		ClassroomID: r.ClassroomID,
		SubjectID:   r.SubjectID,
		TermID:      r.TermID,
		Semester:    r.Semester,
	}
}

func (r SaveGradesRequest) ToEntries() []service.StudentGradeEntry {
	out := make([]service.StudentGradeEntry, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, service.StudentGradeEntry{
			StudentID:           e.StudentID,
			StudentName:         e.StudentName,
			Score:               e.Score,
			StrongestIDs:        e.StrongestIDs,
			NeedsImprovementIDs: e.NeedsImprovementIDs,
		})
	}
	return out
}

/* ===== Response ===== */

type CandidateObjectiveResponse struct {
	ObjectiveID uuid.UUID `json:"objective_id"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
}

type SaveGradesResponse struct {
	Written int `json:"written"`
	Skipped int `json:"skipped"`
}

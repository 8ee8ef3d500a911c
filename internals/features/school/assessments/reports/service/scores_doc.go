// file: internals/features/school/assessments/reports/service/scores_doc.go
package service

// ScoresDoc: dokumen agregasi yang dipersist ke report_cards.report_card_scores.
// Bentuknya TETAP (struct, bukan map) supaya serialisasi json deterministik:
// regenerasi dengan data sumber sama menghasilkan byte yang sama.
//
// Aturan kehadiran key:
//   - subjects, competencies, extracurriculars: selalu ada (boleh list kosong)
//   - attendance: selalu ada, default nol bila tidak ada baris rekap
//   - projects (P5): omit bila kosong — kohort tanpa P5 tidak punya key ini
//   - paud: omit bila kosong — absennya key berarti "bukan jenjang PAUD",
//     bukan "belum diisi"
type ScoresDoc struct {
	Subjects         []SubjectScore         `json:"subjects"`
	Competencies     []CompetencyScore      `json:"competencies"`
	Projects         []ProjectScore         `json:"projects,omitempty"`
	Extracurriculars []ExtracurricularScore `json:"extracurriculars"`
	Attendance       AttendanceBlock        `json:"attendance"`
	Paud             []DevelopmentalScore   `json:"paud,omitempty"`
}

// SubjectScore: nilai mapel + deskripsi TP yang diresolve SAAT agregasi,
// bukan saat entri, supaya teks selalu mengikuti redaksi TP terkini.
type SubjectScore struct {
	SubjectName      string   `json:"subject_name"`
	Score            *float64 `json:"score"`
	Strongest        []string `json:"strongest"`
	NeedsImprovement []string `json:"needs_improvement"`
}

type CompetencyScore struct {
	SubjectName string `json:"subject_name"`
	Level       int    `json:"level"`
	Description string `json:"description"`
}

type ProjectScore struct {
	ProjectTitle string `json:"project_title"`
	Dimension    string `json:"dimension"`
	Level        string `json:"level"`
	Description  string `json:"description"`
}

type ExtracurricularScore struct {
	ActivityName string `json:"activity_name"`
	Level        string `json:"level"`
	Description  string `json:"description"`
}

type AttendanceBlock struct {
	Sick       int `json:"sick"`
	Permission int `json:"permission"`
	Absent     int `json:"absent"`
}

type DevelopmentalScore struct {
	Aspect      string `json:"aspect"`
	Description string `json:"description"`
}

// file: internals/features/school/assessments/reports/service/aggregation_engine.go
package service

import (
	"context"
	"errors"
	"sort"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	gradeModel "sekolahku_backend/internals/features/school/assessments/grades/model"
	reportModel "sekolahku_backend/internals/features/school/assessments/reports/model"
	sourceModel "sekolahku_backend/internals/features/school/assessments/sources/model"
	peopleModel "sekolahku_backend/internals/features/school/people/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

var (
	ErrAccessDenied = errors.New("akses ditolak")
	ErrNotFound     = errors.New("data tidak ditemukan")
)

// CohortQuery: satu kohort regenerasi rapor.
type CohortQuery struct {
	ClassroomID uuid.UUID
	TermID      uuid.UUID
	Semester    int
}

// SubjectGradeSource: baris subject_grades yang sudah di-join nama mapelnya.
type SubjectGradeSource struct {
	SubjectName         string
	Score               *float64
	StrongestIDs        gradeModel.UUIDSet
	NeedsImprovementIDs gradeModel.UUIDSet
}

// CompetencySource: capaian kompetensi + nama mapel.
type CompetencySource struct {
	SubjectName string
	Level       int
	Description string
}

// ReportNotes: catatan yang DIBERIKAN caller. Kalau siswa tidak punya entri
// di map notes, kolom catatan lama di rapor dibiarkan utuh saat regenerasi.
type ReportNotes struct {
	HomeroomNote string
	Achievements string
}

type GenerateInput struct {
	Cohort         CohortQuery
	StudentIDs     []uuid.UUID
	CurriculumType string
	Notes          map[uuid.UUID]ReportNotes
}

type GenerateResult struct {
	Generated         int
	SkippedStudentIDs []uuid.UUID
}

// ReportUpsert: satu baris rapor siap tulis. WithNotes menandai apakah kolom
// catatan ikut di-update pada konflik.
type ReportUpsert struct {
	Row       reportModel.ReportCardModel
	WithNotes bool
}

type ClassroomAccessChecker interface {
	HasClassroomAccess(ctx context.Context, actor helperAuth.Actor, classroomID uuid.UUID) (bool, error)
}

// ReportStore: akses data engine agregasi; implementasi GORM di report_store_gorm.go.
// Enam sumber di-query per siswa, independen satu sama lain.
type ReportStore interface {
	// siswa yang benar-benar terdaftar di kelas; dipakai memvalidasi ulang
	// daftar id dari caller (state klien bisa basi)
	EnrolledStudentSet(ctx context.Context, classroomID uuid.UUID) (map[uuid.UUID]peopleModel.StudentModel, error)

	SubjectGrades(ctx context.Context, studentID uuid.UUID, q CohortQuery) ([]SubjectGradeSource, error)
	// redaksi TP terkini untuk resolve id-set → teks
	ObjectiveTexts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
	Competencies(ctx context.Context, studentID uuid.UUID, q CohortQuery) ([]CompetencySource, error)
	ProjectAssessments(ctx context.Context, studentID uuid.UUID, q CohortQuery) ([]sourceModel.ProjectAssessmentModel, error)
	ExtracurricularAssessments(ctx context.Context, studentID uuid.UUID, q CohortQuery) ([]sourceModel.ExtracurricularAssessmentModel, error)
	// nil bila siswa belum punya rekap absensi
	AttendanceSummary(ctx context.Context, studentID uuid.UUID, q CohortQuery) (*sourceModel.AttendanceSummaryModel, error)
	DevelopmentalAssessments(ctx context.Context, studentID uuid.UUID, q CohortQuery) ([]sourceModel.DevelopmentalAssessmentModel, error)

	// untuk blok tanda tangan rapor
	HomeroomTeacherName(ctx context.Context, classroomID uuid.UUID, termID uuid.UUID) (string, error)

	// seluruh batch dalam SATU transaksi, keyed (student, classroom, term, semester)
	UpsertReportCards(ctx context.Context, rows []ReportUpsert) error
}

type AggregationEngine struct {
	Store  ReportStore
	Access ClassroomAccessChecker
}

func NewAggregationEngine(store ReportStore, access ClassroomAccessChecker) *AggregationEngine {
	return &AggregationEngine{Store: store, Access: access}
}

// Generate: regenerasi rapor untuk daftar siswa EKSPLISIT dalam satu kohort.
// Siswa yang ternyata bukan anggota kelas dilewati diam-diam (id basi tidak
// boleh menggagalkan sisa batch). Status selalu di-reset ke draft; ini operasi
// hitung-ulang-dan-timpa, bukan append.
func (e *AggregationEngine) Generate(ctx context.Context, actor helperAuth.Actor, in GenerateInput) (GenerateResult, error) {
	var res GenerateResult

	ok, err := e.Access.HasClassroomAccess(ctx, actor, in.Cohort.ClassroomID)
	if err != nil {
		return res, err
	}
	if !ok {
		return res, ErrAccessDenied
	}

	members, err := e.Store.EnrolledStudentSet(ctx, in.Cohort.ClassroomID)
	if err != nil {
		return res, err
	}

	rows := make([]ReportUpsert, 0, len(in.StudentIDs))
	for _, studentID := range in.StudentIDs {
		if _, member := members[studentID]; !member {
			res.SkippedStudentIDs = append(res.SkippedStudentIDs, studentID)
			continue
		}

		doc, err := e.buildScoresDoc(ctx, studentID, in.Cohort)
		if err != nil {
			return GenerateResult{}, err
		}
		raw, err := sonic.Marshal(doc)
		if err != nil {
			return GenerateResult{}, err
		}

		row := reportModel.ReportCardModel{
			ReportCardStudentID:      studentID,
			ReportCardClassroomID:    in.Cohort.ClassroomID,
			ReportCardTermID:         in.Cohort.TermID,
			ReportCardSemester:       in.Cohort.Semester,
			ReportCardScores:         datatypes.JSON(raw),
			ReportCardCurriculumType: in.CurriculumType,
			ReportCardStatus:         reportModel.ReportStatusDraft,
			// jalur kompetensi tidak memakai GPA; selalu nol di sini
			ReportCardGPA: 0,
		}

		notes, withNotes := in.Notes[studentID]
		if withNotes {
			row.ReportCardHomeroomNote = notes.HomeroomNote
			row.ReportCardAchievements = notes.Achievements
		}
		rows = append(rows, ReportUpsert{Row: row, WithNotes: withNotes})
	}

	if len(rows) > 0 {
		if err := e.Store.UpsertReportCards(ctx, rows); err != nil {
			return GenerateResult{}, err
		}
	}
	res.Generated = len(rows)
	return res, nil
}

// buildScoresDoc: query dan bentuk keenam sumber untuk satu siswa.
// Baris terkait yang tidak ada BUKAN error: tiap sumber punya aturan
// default/omisinya sendiri (lihat ScoresDoc).
func (e *AggregationEngine) buildScoresDoc(ctx context.Context, studentID uuid.UUID, q CohortQuery) (ScoresDoc, error) {
	var doc ScoresDoc

	grades, err := e.Store.SubjectGrades(ctx, studentID, q)
	if err != nil {
		return doc, err
	}
	subjects, err := e.shapeSubjects(ctx, grades)
	if err != nil {
		return doc, err
	}
	doc.Subjects = subjects

	competencies, err := e.Store.Competencies(ctx, studentID, q)
	if err != nil {
		return doc, err
	}
	doc.Competencies = make([]CompetencyScore, 0, len(competencies))
	for _, row := range competencies {
		doc.Competencies = append(doc.Competencies, CompetencyScore{
			SubjectName: row.SubjectName,
			Level:       row.Level,
			Description: row.Description,
		})
	}
	sort.Slice(doc.Competencies, func(i, j int) bool {
		return doc.Competencies[i].SubjectName < doc.Competencies[j].SubjectName
	})

	projects, err := e.Store.ProjectAssessments(ctx, studentID, q)
	if err != nil {
		return doc, err
	}
	for _, row := range projects {
		title := ""
		if row.Project != nil {
			title = row.Project.ProjectTitle
		}
		doc.Projects = append(doc.Projects, ProjectScore{
			ProjectTitle: title,
			Dimension:    row.ProjectAssessmentDimension,
			Level:        row.ProjectAssessmentLevel,
			Description:  row.ProjectAssessmentDesc,
		})
	}
	sort.Slice(doc.Projects, func(i, j int) bool {
		if doc.Projects[i].ProjectTitle != doc.Projects[j].ProjectTitle {
			return doc.Projects[i].ProjectTitle < doc.Projects[j].ProjectTitle
		}
		return doc.Projects[i].Dimension < doc.Projects[j].Dimension
	})

	extras, err := e.Store.ExtracurricularAssessments(ctx, studentID, q)
	if err != nil {
		return doc, err
	}
	doc.Extracurriculars = make([]ExtracurricularScore, 0, len(extras))
	for _, row := range extras {
		name := ""
		if row.Extracurricular != nil {
			name = row.Extracurricular.ExtracurricularName
		}
		doc.Extracurriculars = append(doc.Extracurriculars, ExtracurricularScore{
			ActivityName: name,
			Level:        row.ExtracurricularAssessmentLevel,
			Description:  row.ExtracurricularAssessmentDesc,
		})
	}
	sort.Slice(doc.Extracurriculars, func(i, j int) bool {
		return doc.Extracurriculars[i].ActivityName < doc.Extracurriculars[j].ActivityName
	})

	attendance, err := e.Store.AttendanceSummary(ctx, studentID, q)
	if err != nil {
		return doc, err
	}
	if attendance != nil {
		doc.Attendance = AttendanceBlock{
			Sick:       attendance.AttendanceSummarySick,
			Permission: attendance.AttendanceSummaryPermission,
			Absent:     attendance.AttendanceSummaryAbsent,
		}
	}

	paud, err := e.Store.DevelopmentalAssessments(ctx, studentID, q)
	if err != nil {
		return doc, err
	}
	for _, row := range paud {
		doc.Paud = append(doc.Paud, DevelopmentalScore{
			Aspect:      row.DevelopmentalAssessmentAspect,
			Description: row.DevelopmentalAssessmentDesc,
		})
	}
	sort.Slice(doc.Paud, func(i, j int) bool { return doc.Paud[i].Aspect < doc.Paud[j].Aspect })

	return doc, nil
}

// shapeSubjects: resolve id-set TP → teks dengan SATU lookup untuk seluruh
// mapel siswa itu. TP yang sudah dihapus dilewati tanpa placeholder.
func (e *AggregationEngine) shapeSubjects(ctx context.Context, grades []SubjectGradeSource) ([]SubjectScore, error) {
	ids := make([]uuid.UUID, 0)
	for _, g := range grades {
		ids = append(ids, g.StrongestIDs...)
		ids = append(ids, g.NeedsImprovementIDs...)
	}

	texts := map[uuid.UUID]string{}
	if len(ids) > 0 {
		var err error
		texts, err = e.Store.ObjectiveTexts(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	resolve := func(set gradeModel.UUIDSet) []string {
		out := make([]string, 0, len(set))
		for _, id := range set {
			if text, ok := texts[id]; ok {
				out = append(out, text)
			}
		}
		sort.Strings(out)
		return out
	}

	out := make([]SubjectScore, 0, len(grades))
	for _, g := range grades {
		out = append(out, SubjectScore{
			SubjectName:      g.SubjectName,
			Score:            g.Score,
			Strongest:        resolve(g.StrongestIDs),
			NeedsImprovement: resolve(g.NeedsImprovementIDs),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubjectName < out[j].SubjectName })
	return out, nil
}

package service

import (
	"context"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
	gradeModel "sekolahku_backend/internals/features/school/assessments/grades/model"
	reportModel "sekolahku_backend/internals/features/school/assessments/reports/model"
	sourceModel "sekolahku_backend/internals/features/school/assessments/sources/model"
	peopleModel "sekolahku_backend/internals/features/school/people/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* ===== fakes ===== */

type allowClassroom struct{}

func (allowClassroom) HasClassroomAccess(context.Context, helperAuth.Actor, uuid.UUID) (bool, error) {
	return true, nil
}

type fakeReportStore struct {
	members        map[uuid.UUID]peopleModel.StudentModel
	grades         map[uuid.UUID][]SubjectGradeSource
	objectiveTexts map[uuid.UUID]string
	competencies   map[uuid.UUID][]CompetencySource
	projects       map[uuid.UUID][]sourceModel.ProjectAssessmentModel
	extras         map[uuid.UUID][]sourceModel.ExtracurricularAssessmentModel
	attendance     map[uuid.UUID]*sourceModel.AttendanceSummaryModel
	paud           map[uuid.UUID][]sourceModel.DevelopmentalAssessmentModel

	upserted [][]ReportUpsert
}

func (f *fakeReportStore) EnrolledStudentSet(context.Context, uuid.UUID) (map[uuid.UUID]peopleModel.StudentModel, error) {
	return f.members, nil
}

func (f *fakeReportStore) SubjectGrades(_ context.Context, id uuid.UUID, _ CohortQuery) ([]SubjectGradeSource, error) {
	return f.grades[id], nil
}

func (f *fakeReportStore) ObjectiveTexts(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := map[uuid.UUID]string{}
	for _, id := range ids {
		if text, ok := f.objectiveTexts[id]; ok {
			out[id] = text
		}
	}
	return out, nil
}

func (f *fakeReportStore) Competencies(_ context.Context, id uuid.UUID, _ CohortQuery) ([]CompetencySource, error) {
	return f.competencies[id], nil
}

func (f *fakeReportStore) ProjectAssessments(_ context.Context, id uuid.UUID, _ CohortQuery) ([]sourceModel.ProjectAssessmentModel, error) {
	return f.projects[id], nil
}

func (f *fakeReportStore) ExtracurricularAssessments(_ context.Context, id uuid.UUID, _ CohortQuery) ([]sourceModel.ExtracurricularAssessmentModel, error) {
	return f.extras[id], nil
}

func (f *fakeReportStore) AttendanceSummary(_ context.Context, id uuid.UUID, _ CohortQuery) (*sourceModel.AttendanceSummaryModel, error) {
	return f.attendance[id], nil
}

func (f *fakeReportStore) DevelopmentalAssessments(_ context.Context, id uuid.UUID, _ CohortQuery) ([]sourceModel.DevelopmentalAssessmentModel, error) {
	return f.paud[id], nil
}

func (f *fakeReportStore) HomeroomTeacherName(context.Context, uuid.UUID, uuid.UUID) (string, error) {
	return "Ibu Ratna", nil
}

func (f *fakeReportStore) UpsertReportCards(_ context.Context, rows []ReportUpsert) error {
	f.upserted = append(f.upserted, rows)
	return nil
}

func emptyStore(members ...peopleModel.StudentModel) *fakeReportStore {
	set := map[uuid.UUID]peopleModel.StudentModel{}
	for _, st := range members {
		set[st.StudentID] = st
	}
	return &fakeReportStore{
		members:        set,
		grades:         map[uuid.UUID][]SubjectGradeSource{},
		objectiveTexts: map[uuid.UUID]string{},
		competencies:   map[uuid.UUID][]CompetencySource{},
		projects:       map[uuid.UUID][]sourceModel.ProjectAssessmentModel{},
		extras:         map[uuid.UUID][]sourceModel.ExtracurricularAssessmentModel{},
		attendance:     map[uuid.UUID]*sourceModel.AttendanceSummaryModel{},
		paud:           map[uuid.UUID][]sourceModel.DevelopmentalAssessmentModel{},
	}
}

func cohort() CohortQuery {
	return CohortQuery{ClassroomID: uuid.New(), TermID: uuid.New(), Semester: 1}
}

func scoresOf(t *testing.T, row reportModel.ReportCardModel) ScoresDoc {
	t.Helper()
	var doc ScoresDoc
	require.NoError(t, sonic.Unmarshal(row.ReportCardScores, &doc))
	return doc
}

/* ===== tests ===== */

func TestGenerate_CohortIsolation(t *testing.T) {
	budi := peopleModel.StudentModel{StudentID: uuid.New(), StudentName: "Budi"}
	outsider := uuid.New() // terdaftar di kelas lain

	store := emptyStore(budi)
	engine := NewAggregationEngine(store, allowClassroom{})

	res, err := engine.Generate(context.Background(), helperAuth.Actor{Role: constants.RoleAdmin}, GenerateInput{
		Cohort:         cohort(),
		StudentIDs:     []uuid.UUID{budi.StudentID, outsider},
		CurriculumType: reportModel.CurriculumMerdeka,
	})
	require.NoError(t, err)

	// id basi dilewati tanpa menggagalkan siswa yang sah
	assert.Equal(t, 1, res.Generated)
	assert.Equal(t, []uuid.UUID{outsider}, res.SkippedStudentIDs)
	require.Len(t, store.upserted, 1)
	require.Len(t, store.upserted[0], 1)
	assert.Equal(t, budi.StudentID, store.upserted[0][0].Row.ReportCardStudentID)
}

func TestGenerate_DefaultDegradation(t *testing.T) {
	budi := peopleModel.StudentModel{StudentID: uuid.New(), StudentName: "Budi"}
	store := emptyStore(budi)
	engine := NewAggregationEngine(store, allowClassroom{})

	_, err := engine.Generate(context.Background(), helperAuth.Actor{Role: constants.RoleAdmin}, GenerateInput{
		Cohort:         cohort(),
		StudentIDs:     []uuid.UUID{budi.StudentID},
		CurriculumType: reportModel.CurriculumMerdeka,
	})
	require.NoError(t, err)

	doc := scoresOf(t, store.upserted[0][0].Row)

	// tanpa baris rekap absensi → counter nol, BUKAN error
	assert.Equal(t, AttendanceBlock{Sick: 0, Permission: 0, Absent: 0}, doc.Attendance)
	// tanpa baris PAUD → key paud hilang sama sekali
	assert.Nil(t, doc.Paud)
	// tanpa P5 → key projects hilang
	assert.Nil(t, doc.Projects)

	var raw map[string]interface{}
	require.NoError(t, sonic.Unmarshal(store.upserted[0][0].Row.ReportCardScores, &raw))
	assert.NotContains(t, raw, "paud")
	assert.NotContains(t, raw, "projects")
	assert.Contains(t, raw, "attendance")
}

func TestGenerate_Idempotent(t *testing.T) {
	budi := peopleModel.StudentModel{StudentID: uuid.New(), StudentName: "Budi"}
	tp1 := uuid.New()
	tp2 := uuid.New()
	score := 85.0

	store := emptyStore(budi)
	store.grades[budi.StudentID] = []SubjectGradeSource{
		{
			SubjectName:         "Matematika",
			Score:               &score,
			StrongestIDs:        gradeModel.UUIDSet{tp1},
			NeedsImprovementIDs: gradeModel.UUIDSet{tp2},
		},
	}
	store.objectiveTexts[tp1] = "Mengenal bilangan cacah"
	store.objectiveTexts[tp2] = "Operasi hitung campuran"
	store.competencies[budi.StudentID] = []CompetencySource{
		{SubjectName: "Matematika", Level: 3, Description: "Baik"},
	}
	store.attendance[budi.StudentID] = &sourceModel.AttendanceSummaryModel{
		AttendanceSummarySick: 2, AttendanceSummaryPermission: 1, AttendanceSummaryAbsent: 0,
	}

	engine := NewAggregationEngine(store, allowClassroom{})
	in := GenerateInput{
		Cohort:         cohort(),
		StudentIDs:     []uuid.UUID{budi.StudentID},
		CurriculumType: reportModel.CurriculumMerdeka,
	}

	_, err := engine.Generate(context.Background(), helperAuth.Actor{Role: constants.RoleAdmin}, in)
	require.NoError(t, err)
	_, err = engine.Generate(context.Background(), helperAuth.Actor{Role: constants.RoleAdmin}, in)
	require.NoError(t, err)

	require.Len(t, store.upserted, 2)
	first := store.upserted[0][0].Row
	second := store.upserted[1][0].Row

	// data sumber tidak berubah → dokumen scores identik byte-per-byte
	assert.Equal(t, []byte(first.ReportCardScores), []byte(second.ReportCardScores))
	assert.Equal(t, reportModel.ReportStatusDraft, second.ReportCardStatus)
	assert.Zero(t, second.ReportCardGPA)
}

func TestGenerate_ObjectiveTextsResolvedAtAggregationTime(t *testing.T) {
	budi := peopleModel.StudentModel{StudentID: uuid.New(), StudentName: "Budi"}
	tp1 := uuid.New()
	tpDeleted := uuid.New()

	store := emptyStore(budi)
	store.grades[budi.StudentID] = []SubjectGradeSource{
		{SubjectName: "IPA", StrongestIDs: gradeModel.UUIDSet{tp1, tpDeleted}},
	}
	store.objectiveTexts[tp1] = "Redaksi lama"

	engine := NewAggregationEngine(store, allowClassroom{})
	in := GenerateInput{
		Cohort:         cohort(),
		StudentIDs:     []uuid.UUID{budi.StudentID},
		CurriculumType: reportModel.CurriculumMerdeka,
	}

	_, err := engine.Generate(context.Background(), helperAuth.Actor{Role: constants.RoleAdmin}, in)
	require.NoError(t, err)

	doc := scoresOf(t, store.upserted[0][0].Row)
	require.Len(t, doc.Subjects, 1)
	// TP yang sudah dihapus tidak dapat placeholder
	assert.Equal(t, []string{"Redaksi lama"}, doc.Subjects[0].Strongest)

	// teks TP diedit → regenerasi memakai redaksi terbaru
	store.objectiveTexts[tp1] = "Redaksi baru"
	_, err = engine.Generate(context.Background(), helperAuth.Actor{Role: constants.RoleAdmin}, in)
	require.NoError(t, err)

	doc = scoresOf(t, store.upserted[1][0].Row)
	assert.Equal(t, []string{"Redaksi baru"}, doc.Subjects[0].Strongest)
}

func TestGenerate_NotesOnlyWhenSupplied(t *testing.T) {
	budi := peopleModel.StudentModel{StudentID: uuid.New(), StudentName: "Budi"}
	sari := peopleModel.StudentModel{StudentID: uuid.New(), StudentName: "Sari"}
	store := emptyStore(budi, sari)
	engine := NewAggregationEngine(store, allowClassroom{})

	_, err := engine.Generate(context.Background(), helperAuth.Actor{Role: constants.RoleAdmin}, GenerateInput{
		Cohort:         cohort(),
		StudentIDs:     []uuid.UUID{budi.StudentID, sari.StudentID},
		CurriculumType: reportModel.CurriculumMerdeka,
		Notes: map[uuid.UUID]ReportNotes{
			budi.StudentID: {HomeroomNote: "Semangat belajarnya meningkat"},
		},
	})
	require.NoError(t, err)

	require.Len(t, store.upserted, 1)
	byStudent := map[uuid.UUID]ReportUpsert{}
	for _, up := range store.upserted[0] {
		byStudent[up.Row.ReportCardStudentID] = up
	}

	assert.True(t, byStudent[budi.StudentID].WithNotes)
	assert.Equal(t, "Semangat belajarnya meningkat", byStudent[budi.StudentID].Row.ReportCardHomeroomNote)
	// tanpa notes → catatan lama di DB tidak boleh tertimpa
	assert.False(t, byStudent[sari.StudentID].WithNotes)
}

func TestGenerate_AccessDenied(t *testing.T) {
	store := emptyStore()
	engine := NewAggregationEngine(store, denyClassroom{})

	_, err := engine.Generate(context.Background(), helperAuth.Actor{Role: constants.RoleTeacher}, GenerateInput{
		Cohort:     cohort(),
		StudentIDs: []uuid.UUID{uuid.New()},
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, store.upserted)
}

type denyClassroom struct{}

func (denyClassroom) HasClassroomAccess(context.Context, helperAuth.Actor, uuid.UUID) (bool, error) {
	return false, nil
}

func TestTemplateForCurriculum(t *testing.T) {
	assert.Equal(t, TemplatePaud, TemplateForCurriculum(reportModel.CurriculumPaud))
	assert.Equal(t, TemplateConventional, TemplateForCurriculum(reportModel.CurriculumConventional))
	assert.Equal(t, TemplateMerdeka, TemplateForCurriculum(reportModel.CurriculumMerdeka))
	assert.Equal(t, TemplateMerdeka, TemplateForCurriculum("tidak_dikenal"))
}

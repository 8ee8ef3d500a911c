package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
	curriculumModel "sekolahku_backend/internals/features/school/academics/curriculum/model"
	levelModel "sekolahku_backend/internals/features/school/academics/levels/model"
	subjectModel "sekolahku_backend/internals/features/school/academics/subjects/model"
	classroomModel "sekolahku_backend/internals/features/school/classes/classrooms/model"
	gradeModel "sekolahku_backend/internals/features/school/assessments/grades/model"
	peopleModel "sekolahku_backend/internals/features/school/people/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* ===== fakes ===== */

type allowAllAccess struct{}

func (allowAllAccess) HasClassroomAccess(context.Context, helperAuth.Actor, uuid.UUID) (bool, error) {
	return true, nil
}
func (allowAllAccess) HasSubjectAccess(context.Context, helperAuth.Actor, uuid.UUID) (bool, error) {
	return true, nil
}

type denyAccess struct {
	classroomOK bool
	subjectOK   bool
}

func (d denyAccess) HasClassroomAccess(context.Context, helperAuth.Actor, uuid.UUID) (bool, error) {
	return d.classroomOK, nil
}
func (d denyAccess) HasSubjectAccess(context.Context, helperAuth.Actor, uuid.UUID) (bool, error) {
	return d.subjectOK, nil
}

type fakeGradeStore struct {
	classroom       *classroomModel.ClassroomModel
	phaseMap        levelModel.PhaseMap
	subject         *subjectModel.SubjectModel
	students        []peopleModel.StudentModel
	grades          []gradeModel.SubjectGradeModel
	phaseObjectives map[string][]curriculumModel.CurriculumObjectiveModel // phase → TP
	allObjectives   []curriculumModel.CurriculumObjectiveModel

	upserted [][]gradeModel.SubjectGradeModel
}

func (f *fakeGradeStore) ClassroomWithPhaseMap(context.Context, uuid.UUID) (*classroomModel.ClassroomModel, levelModel.PhaseMap, error) {
	return f.classroom, f.phaseMap, nil
}

func (f *fakeGradeStore) Subject(context.Context, uuid.UUID) (*subjectModel.SubjectModel, error) {
	return f.subject, nil
}

func (f *fakeGradeStore) EnrolledStudents(context.Context, uuid.UUID) ([]peopleModel.StudentModel, error) {
	return f.students, nil
}

func (f *fakeGradeStore) SubjectGrades(context.Context, GradeQuery) ([]gradeModel.SubjectGradeModel, error) {
	return f.grades, nil
}

func (f *fakeGradeStore) ObjectivesForSubjectPhase(_ context.Context, _ uuid.UUID, phase string) ([]curriculumModel.CurriculumObjectiveModel, bool, error) {
	objectives, ok := f.phaseObjectives[phase]
	return objectives, ok, nil
}

func (f *fakeGradeStore) AllObjectivesForSubject(context.Context, uuid.UUID) ([]curriculumModel.CurriculumObjectiveModel, error) {
	return f.allObjectives, nil
}

func (f *fakeGradeStore) UpsertSubjectGrades(_ context.Context, rows []gradeModel.SubjectGradeModel) error {
	f.upserted = append(f.upserted, rows)
	return nil
}

/* ===== helpers ===== */

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func adminActor() helperAuth.Actor {
	return helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleAdmin}
}

func testQuery() GradeQuery {
	return GradeQuery{
		ClassroomID: uuid.New(),
		SubjectID:   uuid.New(),
		TermID:      uuid.New(),
		Semester:    1,
	}
}

func classroomWithLevel(level *int) *classroomModel.ClassroomModel {
	return &classroomModel.ClassroomModel{
		ClassroomID:         uuid.New(),
		ClassroomName:       "Kelas 3A",
		ClassroomLevelID:    uuid.New(),
		ClassroomTermID:     uuid.New(),
		ClassroomClassLevel: level,
	}
}

func objective(code string) curriculumModel.CurriculumObjectiveModel {
	return curriculumModel.CurriculumObjectiveModel{
		CurriculumObjectiveID:   uuid.New(),
		CurriculumObjectiveCode: code,
		CurriculumObjectiveDesc: "deskripsi " + code,
	}
}

/* ===== tests ===== */

func TestLoadRoster_SynthesizesEmptyEntries(t *testing.T) {
	budi := peopleModel.StudentModel{StudentID: uuid.New(), StudentName: "Budi"}
	sari := peopleModel.StudentModel{StudentID: uuid.New(), StudentName: "Sari"}

	store := &fakeGradeStore{
		classroom: classroomWithLevel(intPtr(3)),
		students:  []peopleModel.StudentModel{budi, sari},
		grades: []gradeModel.SubjectGradeModel{
			{
				SubjectGradeStudentID: budi.StudentID,
				SubjectGradeScore:     floatPtr(85),
			},
		},
	}
	engine := NewGradeEngine(store, allowAllAccess{})

	entries, err := engine.LoadRoster(context.Background(), adminActor(), testQuery())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Budi", entries[0].StudentName)
	require.NotNil(t, entries[0].Score)
	assert.Equal(t, 85.0, *entries[0].Score)

	// Sari belum punya baris → entry kosong tersintesis
	assert.Equal(t, "Sari", entries[1].StudentName)
	assert.Nil(t, entries[1].Score)
	assert.Empty(t, entries[1].StrongestIDs)
	assert.Empty(t, entries[1].NeedsImprovementIDs)
}

func TestLoadRoster_AccessDenied(t *testing.T) {
	store := &fakeGradeStore{classroom: classroomWithLevel(intPtr(3))}

	t.Run("kelas ditolak", func(t *testing.T) {
		engine := NewGradeEngine(store, denyAccess{classroomOK: false, subjectOK: true})
		_, err := engine.LoadRoster(context.Background(), adminActor(), testQuery())
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("mapel ditolak", func(t *testing.T) {
		engine := NewGradeEngine(store, denyAccess{classroomOK: true, subjectOK: false})
		_, err := engine.LoadRoster(context.Background(), adminActor(), testQuery())
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestCandidateObjectives(t *testing.T) {
	tp1 := objective("TP-1")
	tp2 := objective("TP-2")
	tpOther := objective("TP-X")

	t.Run("fase diketahui, CP ada", func(t *testing.T) {
		store := &fakeGradeStore{
			classroom: classroomWithLevel(intPtr(3)),
			phaseMap:  levelModel.PhaseMap{"1": "A", "2": "A", "3": "B"},
			subject:   &subjectModel.SubjectModel{SubjectID: uuid.New()},
			phaseObjectives: map[string][]curriculumModel.CurriculumObjectiveModel{
				"B": {tp1, tp2},
			},
			allObjectives: []curriculumModel.CurriculumObjectiveModel{tp1, tp2, tpOther},
		}
		engine := NewGradeEngine(store, allowAllAccess{})

		got, err := engine.CandidateObjectives(context.Background(), adminActor(), testQuery())
		require.NoError(t, err)
		assert.Equal(t, []curriculumModel.CurriculumObjectiveModel{tp1, tp2}, got)
	})

	t.Run("fase diketahui, CP tidak ada → kosong", func(t *testing.T) {
		store := &fakeGradeStore{
			classroom:       classroomWithLevel(intPtr(3)),
			phaseMap:        levelModel.PhaseMap{"3": "B"},
			subject:         &subjectModel.SubjectModel{SubjectID: uuid.New()},
			phaseObjectives: map[string][]curriculumModel.CurriculumObjectiveModel{},
			allObjectives:   []curriculumModel.CurriculumObjectiveModel{tp1, tp2},
		}
		engine := NewGradeEngine(store, allowAllAccess{})

		got, err := engine.CandidateObjectives(context.Background(), adminActor(), testQuery())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("fase tidak diketahui → semua TP mapel", func(t *testing.T) {
		store := &fakeGradeStore{
			classroom:     classroomWithLevel(nil),
			subject:       &subjectModel.SubjectModel{SubjectID: uuid.New()},
			allObjectives: []curriculumModel.CurriculumObjectiveModel{tp1, tp2, tpOther},
		}
		engine := NewGradeEngine(store, allowAllAccess{})

		got, err := engine.CandidateObjectives(context.Background(), adminActor(), testQuery())
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}

func TestSave_DisjointViolationAbortsWholeBatch(t *testing.T) {
	shared := uuid.New()
	store := &fakeGradeStore{classroom: classroomWithLevel(intPtr(3))}
	engine := NewGradeEngine(store, allowAllAccess{})

	entries := []StudentGradeEntry{
		{
			StudentID:    uuid.New(),
			StudentName:  "Budi",
			Score:        floatPtr(90),
			StrongestIDs: gradeModel.UUIDSet{uuid.New()},
		},
		{
			StudentID:           uuid.New(),
			StudentName:         "Sari",
			StrongestIDs:        gradeModel.UUIDSet{shared},
			NeedsImprovementIDs: gradeModel.UUIDSet{shared},
		},
	}

	written, err := engine.Save(context.Background(), adminActor(), testQuery(), entries)
	assert.Zero(t, written)

	var violation *DisjointViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "Sari", violation.StudentName)

	// batch dibatalkan seluruhnya, termasuk entry Budi yang valid
	assert.Empty(t, store.upserted)
}

func TestSave_SkipsEmptyEntries(t *testing.T) {
	store := &fakeGradeStore{classroom: classroomWithLevel(intPtr(3))}
	engine := NewGradeEngine(store, allowAllAccess{})
	q := testQuery()

	filled := StudentGradeEntry{
		StudentID:    uuid.New(),
		StudentName:  "Budi",
		Score:        floatPtr(75),
		StrongestIDs: gradeModel.UUIDSet{uuid.New()},
	}
	empty := StudentGradeEntry{StudentID: uuid.New(), StudentName: "Sari"}

	written, err := engine.Save(context.Background(), adminActor(), q, []StudentGradeEntry{filled, empty})
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	require.Len(t, store.upserted, 1)
	require.Len(t, store.upserted[0], 1)
	assert.Equal(t, filled.StudentID, store.upserted[0][0].SubjectGradeStudentID)
}

func TestSave_AllEmptyWritesNothing(t *testing.T) {
	store := &fakeGradeStore{classroom: classroomWithLevel(intPtr(3))}
	engine := NewGradeEngine(store, allowAllAccess{})

	written, err := engine.Save(context.Background(), adminActor(), testQuery(), []StudentGradeEntry{
		{StudentID: uuid.New(), StudentName: "Budi"},
	})
	require.NoError(t, err)
	assert.Zero(t, written)
	assert.Empty(t, store.upserted)
}

func TestSave_ZeroScoreIsPersisted(t *testing.T) {
	// skenario nilai 0 eksplisit: tiga keadaan (belum dinilai / nol / positif) dibedakan
	store := &fakeGradeStore{classroom: classroomWithLevel(intPtr(3))}
	engine := NewGradeEngine(store, allowAllAccess{})

	written, err := engine.Save(context.Background(), adminActor(), testQuery(), []StudentGradeEntry{
		{StudentID: uuid.New(), StudentName: "Budi", Score: floatPtr(0)},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	require.Len(t, store.upserted, 1)
	require.NotNil(t, store.upserted[0][0].SubjectGradeScore)
	assert.Zero(t, *store.upserted[0][0].SubjectGradeScore)
}

func TestSelectionBuffer_TwoPhaseCommit(t *testing.T) {
	student := uuid.New()
	tp1 := uuid.New()
	tp2 := uuid.New()

	entries := []StudentGradeEntry{
		{StudentID: student, StudentName: "Budi", StrongestIDs: gradeModel.UUIDSet{tp1}},
	}
	buf := NewSelectionBuffer(entries)

	t.Run("cancel tidak menyentuh entry", func(t *testing.T) {
		buf.Begin(student, SelectionStrongest)
		buf.Toggle(student, SelectionStrongest, tp2)
		buf.Cancel(student, SelectionStrongest)

		entry, ok := buf.Entry(student)
		require.True(t, ok)
		assert.Equal(t, gradeModel.UUIDSet{tp1}, entry.StrongestIDs)
	})

	t.Run("commit menulis kembali ke entry", func(t *testing.T) {
		buf.Begin(student, SelectionStrongest)
		buf.Toggle(student, SelectionStrongest, tp2)
		buf.Commit(student, SelectionStrongest)

		entry, ok := buf.Entry(student)
		require.True(t, ok)
		assert.ElementsMatch(t, gradeModel.UUIDSet{tp1, tp2}, entry.StrongestIDs)
	})

	t.Run("toggle kedua kali menghapus pilihan", func(t *testing.T) {
		buf.Begin(student, SelectionNeedsImprovement)
		buf.Toggle(student, SelectionNeedsImprovement, tp1)
		buf.Toggle(student, SelectionNeedsImprovement, tp1)
		buf.Commit(student, SelectionNeedsImprovement)

		entry, ok := buf.Entry(student)
		require.True(t, ok)
		assert.Empty(t, entry.NeedsImprovementIDs)
	})
}

func TestUUIDSet(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	t.Run("set kosong dipersist NULL", func(t *testing.T) {
		v, err := gradeModel.UUIDSet(nil).Value()
		require.NoError(t, err)
		assert.Nil(t, v)

		v, err = gradeModel.UUIDSet{}.Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("intersect", func(t *testing.T) {
		left := gradeModel.UUIDSet{a, b}
		right := gradeModel.UUIDSet{b}
		assert.Equal(t, gradeModel.UUIDSet{b}, left.Intersect(right))
		assert.Empty(t, left.Intersect(gradeModel.UUIDSet{uuid.New()}))
	})

	t.Run("dedup", func(t *testing.T) {
		assert.Equal(t, gradeModel.UUIDSet{a, b}, gradeModel.UUIDSet{a, b, a}.Dedup())
	})
}

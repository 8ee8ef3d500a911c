package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
	assignmentModel "sekolahku_backend/internals/features/school/teachers/assignments/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* ===== fake store ===== */

type fakeAccessStore struct {
	assignments     []assignmentModel.TeacherAssignmentModel
	subjectLevels   map[uuid.UUID]*uuid.UUID // subject → level (nil = mapel umum)
	classroomLevels map[uuid.UUID]uuid.UUID
	subjectsByLevel map[uuid.UUID][]uuid.UUID
}

func (f *fakeAccessStore) ListAssignmentsByTeacher(_ context.Context, teacherID uuid.UUID) ([]assignmentModel.TeacherAssignmentModel, error) {
	var out []assignmentModel.TeacherAssignmentModel
	for _, a := range f.assignments {
		if a.TeacherAssignmentTeacherID == teacherID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAccessStore) SubjectLevelID(_ context.Context, subjectID uuid.UUID) (*uuid.UUID, bool, error) {
	lvl, ok := f.subjectLevels[subjectID]
	if !ok {
		return nil, false, nil
	}
	return lvl, true, nil
}

func (f *fakeAccessStore) ClassroomLevelIDs(_ context.Context, classroomIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	out := map[uuid.UUID]uuid.UUID{}
	for _, id := range classroomIDs {
		if lvl, ok := f.classroomLevels[id]; ok {
			out[id] = lvl
		}
	}
	return out, nil
}

func (f *fakeAccessStore) SubjectIDsByLevels(_ context.Context, levelIDs []uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, lvl := range levelIDs {
		out = append(out, f.subjectsByLevel[lvl]...)
	}
	return out, nil
}

func teacherActor(teacherID uuid.UUID) helperAuth.Actor {
	return helperAuth.Actor{
		UserID:    uuid.New(),
		Role:      constants.RoleTeacher,
		TeacherID: &teacherID,
	}
}

/* ===== tests ===== */

func TestHasClassroomAccess(t *testing.T) {
	teacherID := uuid.New()
	classroomA := uuid.New()
	classroomB := uuid.New()
	termID := uuid.New()

	store := &fakeAccessStore{
		assignments: []assignmentModel.TeacherAssignmentModel{
			{
				TeacherAssignmentTeacherID:   teacherID,
				TeacherAssignmentClassroomID: classroomA,
				TeacherAssignmentType:        assignmentModel.AssignmentTypeSubjectTeacher,
				TeacherAssignmentTermID:      termID,
			},
		},
	}
	r := NewAccessResolver(store)
	ctx := context.Background()

	t.Run("admin selalu punya akses", func(t *testing.T) {
		ok, err := r.HasClassroomAccess(ctx, helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleAdmin}, classroomB)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("guru dengan penugasan apa pun di kelas", func(t *testing.T) {
		ok, err := r.HasClassroomAccess(ctx, teacherActor(teacherID), classroomA)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("guru tanpa penugasan di kelas", func(t *testing.T) {
		ok, err := r.HasClassroomAccess(ctx, teacherActor(teacherID), classroomB)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestHasSubjectAccess_HomeroomTransitivity(t *testing.T) {
	teacherID := uuid.New()
	classroomC := uuid.New()
	levelX := uuid.New()
	levelY := uuid.New()
	termID := uuid.New()

	mathX := uuid.New()    // mapel jenjang X
	scienceX := uuid.New() // mapel jenjang X
	mathY := uuid.New()    // mapel jenjang Y

	store := &fakeAccessStore{
		assignments: []assignmentModel.TeacherAssignmentModel{
			{
				// hanya homeroom, tanpa mapel eksplisit
				TeacherAssignmentTeacherID:   teacherID,
				TeacherAssignmentClassroomID: classroomC,
				TeacherAssignmentType:        assignmentModel.AssignmentTypeHomeroom,
				TeacherAssignmentTermID:      termID,
			},
		},
		subjectLevels: map[uuid.UUID]*uuid.UUID{
			mathX:    &levelX,
			scienceX: &levelX,
			mathY:    &levelY,
		},
		classroomLevels: map[uuid.UUID]uuid.UUID{classroomC: levelX},
		subjectsByLevel: map[uuid.UUID][]uuid.UUID{levelX: {mathX, scienceX}, levelY: {mathY}},
	}
	r := NewAccessResolver(store)
	ctx := context.Background()
	actor := teacherActor(teacherID)

	t.Run("semua mapel jenjang kelas homeroom dapat diakses", func(t *testing.T) {
		for _, sid := range []uuid.UUID{mathX, scienceX} {
			ok, err := r.HasSubjectAccess(ctx, actor, sid)
			require.NoError(t, err)
			assert.True(t, ok)
		}
	})

	t.Run("mapel jenjang lain ditolak", func(t *testing.T) {
		ok, err := r.HasSubjectAccess(ctx, actor, mathY)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("mapel tak dikenal ditolak", func(t *testing.T) {
		ok, err := r.HasSubjectAccess(ctx, actor, uuid.New())
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestHasSubjectAccess_Direct(t *testing.T) {
	teacherID := uuid.New()
	classroomA := uuid.New()
	subjectID := uuid.New()
	termID := uuid.New()

	store := &fakeAccessStore{
		assignments: []assignmentModel.TeacherAssignmentModel{
			{
				TeacherAssignmentTeacherID:   teacherID,
				TeacherAssignmentClassroomID: classroomA,
				TeacherAssignmentSubjectID:   &subjectID,
				TeacherAssignmentType:        assignmentModel.AssignmentTypeSubjectTeacher,
				TeacherAssignmentTermID:      termID,
			},
		},
		subjectLevels: map[uuid.UUID]*uuid.UUID{subjectID: nil},
	}
	r := NewAccessResolver(store)

	ok, err := r.HasSubjectAccess(context.Background(), teacherActor(teacherID), subjectID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAssignedSets(t *testing.T) {
	teacherID := uuid.New()
	classroomA := uuid.New() // subject teacher di sini
	classroomC := uuid.New() // homeroom di sini
	levelX := uuid.New()
	termID := uuid.New()

	directSubject := uuid.New()
	levelSubjectA := uuid.New()
	levelSubjectB := uuid.New()

	store := &fakeAccessStore{
		assignments: []assignmentModel.TeacherAssignmentModel{
			{
				TeacherAssignmentTeacherID:   teacherID,
				TeacherAssignmentClassroomID: classroomA,
				TeacherAssignmentSubjectID:   &directSubject,
				TeacherAssignmentType:        assignmentModel.AssignmentTypeSubjectTeacher,
				TeacherAssignmentTermID:      termID,
			},
			{
				TeacherAssignmentTeacherID:   teacherID,
				TeacherAssignmentClassroomID: classroomC,
				TeacherAssignmentType:        assignmentModel.AssignmentTypeClassTeacher,
				TeacherAssignmentTermID:      termID,
			},
			{
				// baris duplikat kelas yang sama, tipe beda — tidak boleh dobel
				TeacherAssignmentTeacherID:   teacherID,
				TeacherAssignmentClassroomID: classroomC,
				TeacherAssignmentType:        assignmentModel.AssignmentTypeHomeroom,
				TeacherAssignmentTermID:      termID,
			},
		},
		classroomLevels: map[uuid.UUID]uuid.UUID{classroomC: levelX},
		// directSubject juga mapel jenjang X: union tidak boleh menggandakan
		subjectsByLevel: map[uuid.UUID][]uuid.UUID{levelX: {levelSubjectA, levelSubjectB, directSubject}},
	}
	r := NewAccessResolver(store)
	ctx := context.Background()
	actor := teacherActor(teacherID)

	classrooms, err := r.AssignedClassroomIDs(ctx, actor)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{classroomA, classroomC}, classrooms)

	subjects, err := r.AssignedSubjectIDs(ctx, actor)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{directSubject, levelSubjectA, levelSubjectB}, subjects)
}

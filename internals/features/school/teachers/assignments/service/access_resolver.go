// file: internals/features/school/teachers/assignments/service/access_resolver.go
package service

import (
	"context"

	"github.com/google/uuid"

	assignmentModel "sekolahku_backend/internals/features/school/teachers/assignments/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// AccessStore: data minimum yang dibutuhkan resolver. Implementasi GORM ada di
// access_store_gorm.go; test memakai fake in-memory.
type AccessStore interface {
	// semua penugasan aktif milik satu guru (semua term)
	ListAssignmentsByTeacher(ctx context.Context, teacherID uuid.UUID) ([]assignmentModel.TeacherAssignmentModel, error)
	// jenjang sebuah mapel; nil kalau mapel tak terikat jenjang
	SubjectLevelID(ctx context.Context, subjectID uuid.UUID) (*uuid.UUID, bool, error)
	// jenjang per kelas, untuk sekumpulan kelas sekaligus
	ClassroomLevelIDs(ctx context.Context, classroomIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error)
	// semua mapel pada sekumpulan jenjang
	SubjectIDsByLevels(ctx context.Context, levelIDs []uuid.UUID) ([]uuid.UUID, error)
}

// AccessResolver menurunkan hak akses efektif guru dari baris penugasan:
// akses mapel bisa langsung (subject_teacher) atau transitif lewat
// wali kelas/homeroom (semua mapel di jenjang kelas itu).
// Semua query murni boolean/set — caller yang mengubah false/kosong jadi error 403.
type AccessResolver struct {
	Store AccessStore
}

func NewAccessResolver(store AccessStore) *AccessResolver {
	return &AccessResolver{Store: store}
}

// HasClassroomAccess: role non-guru selalu lolos; guru harus punya baris
// penugasan apa pun untuk kelas itu (mapel tidak diperhitungkan).
func (r *AccessResolver) HasClassroomAccess(ctx context.Context, actor helperAuth.Actor, classroomID uuid.UUID) (bool, error) {
	if !actor.IsTeacher() {
		return true, nil
	}
	if actor.TeacherID == nil {
		return false, nil
	}
	rows, err := r.Store.ListAssignmentsByTeacher(ctx, *actor.TeacherID)
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		if row.TeacherAssignmentClassroomID == classroomID {
			return true, nil
		}
	}
	return false, nil
}

// HasSubjectAccess: langsung (baris dengan subject itu) ATAU transitif
// (wali kelas/homeroom di kelas yang jenjangnya = jenjang mapel).
func (r *AccessResolver) HasSubjectAccess(ctx context.Context, actor helperAuth.Actor, subjectID uuid.UUID) (bool, error) {
	if !actor.IsTeacher() {
		return true, nil
	}
	if actor.TeacherID == nil {
		return false, nil
	}
	rows, err := r.Store.ListAssignmentsByTeacher(ctx, *actor.TeacherID)
	if err != nil {
		return false, err
	}

	homeroomClassrooms := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		if row.TeacherAssignmentSubjectID != nil && *row.TeacherAssignmentSubjectID == subjectID {
			return true, nil
		}
		if row.IsWholeClass() {
			homeroomClassrooms = append(homeroomClassrooms, row.TeacherAssignmentClassroomID)
		}
	}
	if len(homeroomClassrooms) == 0 {
		return false, nil
	}

	subjectLevel, ok, err := r.Store.SubjectLevelID(ctx, subjectID)
	if err != nil {
		return false, err
	}
	if !ok || subjectLevel == nil {
		// mapel tidak ada atau tak terikat jenjang → tidak ada jalur transitif
		return false, nil
	}

	classroomLevels, err := r.Store.ClassroomLevelIDs(ctx, homeroomClassrooms)
	if err != nil {
		return false, err
	}
	for _, levelID := range classroomLevels {
		if levelID == *subjectLevel {
			return true, nil
		}
	}
	return false, nil
}

// AssignedClassroomIDs: kelas distinct dari seluruh baris penugasan.
func (r *AccessResolver) AssignedClassroomIDs(ctx context.Context, actor helperAuth.Actor) ([]uuid.UUID, error) {
	if actor.TeacherID == nil {
		return nil, nil
	}
	rows, err := r.Store.ListAssignmentsByTeacher(ctx, *actor.TeacherID)
	if err != nil {
		return nil, err
	}
	seen := make(map[uuid.UUID]struct{}, len(rows))
	out := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.TeacherAssignmentClassroomID]; ok {
			continue
		}
		seen[row.TeacherAssignmentClassroomID] = struct{}{}
		out = append(out, row.TeacherAssignmentClassroomID)
	}
	return out, nil
}

// AssignedSubjectIDs: union mapel langsung + semua mapel di jenjang yang
// tercapai lewat penugasan wali kelas/homeroom, tanpa dobel.
func (r *AccessResolver) AssignedSubjectIDs(ctx context.Context, actor helperAuth.Actor) ([]uuid.UUID, error) {
	if actor.TeacherID == nil {
		return nil, nil
	}
	rows, err := r.Store.ListAssignmentsByTeacher(ctx, *actor.TeacherID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{})
	out := make([]uuid.UUID, 0, len(rows))
	add := func(id uuid.UUID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	homeroomClassrooms := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		if row.TeacherAssignmentSubjectID != nil {
			add(*row.TeacherAssignmentSubjectID)
		}
		if row.IsWholeClass() {
			homeroomClassrooms = append(homeroomClassrooms, row.TeacherAssignmentClassroomID)
		}
	}

	if len(homeroomClassrooms) > 0 {
		classroomLevels, err := r.Store.ClassroomLevelIDs(ctx, homeroomClassrooms)
		if err != nil {
			return nil, err
		}
		levelSeen := make(map[uuid.UUID]struct{}, len(classroomLevels))
		levelIDs := make([]uuid.UUID, 0, len(classroomLevels))
		for _, levelID := range classroomLevels {
			if _, ok := levelSeen[levelID]; ok {
				continue
			}
			levelSeen[levelID] = struct{}{}
			levelIDs = append(levelIDs, levelID)
		}
		subjectIDs, err := r.Store.SubjectIDsByLevels(ctx, levelIDs)
		if err != nil {
			return nil, err
		}
		for _, id := range subjectIDs {
			add(id)
		}
	}
	return out, nil
}

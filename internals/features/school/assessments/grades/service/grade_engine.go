// file: internals/features/school/assessments/grades/service/grade_engine.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	curriculumModel "sekolahku_backend/internals/features/school/academics/curriculum/model"
	levelModel "sekolahku_backend/internals/features/school/academics/levels/model"
	levelService "sekolahku_backend/internals/features/school/academics/levels/service"
	subjectModel "sekolahku_backend/internals/features/school/academics/subjects/model"
	classroomModel "sekolahku_backend/internals/features/school/classes/classrooms/model"
	gradeModel "sekolahku_backend/internals/features/school/assessments/grades/model"
	peopleModel "sekolahku_backend/internals/features/school/people/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

var (
	ErrAccessDenied = errors.New("akses ditolak")
	ErrNotFound     = errors.New("data tidak ditemukan")
)

// DisjointViolationError: strongest ∩ needs_improvement ≠ ∅ untuk satu siswa.
// Seluruh batch dibatalkan; nama siswa dibawa untuk pesan ke guru.
type DisjointViolationError struct {
	StudentID   uuid.UUID
	StudentName string
}

func (e *DisjointViolationError) Error() string {
	return fmt.Sprintf("TP terkuat dan TP perlu perbaikan tidak boleh sama untuk siswa %s", e.StudentName)
}

// GradeQuery: konteks satu sesi penilaian
type GradeQuery struct {
	ClassroomID uuid.UUID
	SubjectID   uuid.UUID
	TermID      uuid.UUID
	Semester    int
}

// StudentGradeEntry: satu baris roster kerja guru
type StudentGradeEntry struct {
	StudentID           uuid.UUID          `json:"student_id"`
	StudentName         string             `json:"student_name"`
	Score               *float64           `json:"score,omitempty"`
	StrongestIDs        gradeModel.UUIDSet `json:"strongest_ids,omitempty"`
	NeedsImprovementIDs gradeModel.UUIDSet `json:"needs_improvement_ids,omitempty"`
}

// IsEmpty: tidak ada nilai dan tidak ada pilihan TP → tidak usah ditulis
func (e StudentGradeEntry) IsEmpty() bool {
	return e.Score == nil && len(e.StrongestIDs) == 0 && len(e.NeedsImprovementIDs) == 0
}

// AccessChecker: potongan AccessResolver yang dibutuhkan engine ini
type AccessChecker interface {
	HasClassroomAccess(ctx context.Context, actor helperAuth.Actor, classroomID uuid.UUID) (bool, error)
	HasSubjectAccess(ctx context.Context, actor helperAuth.Actor, subjectID uuid.UUID) (bool, error)
}

// GradeStore: akses data engine; implementasi GORM di grade_store_gorm.go
type GradeStore interface {
	ClassroomWithPhaseMap(ctx context.Context, classroomID uuid.UUID) (*classroomModel.ClassroomModel, levelModel.PhaseMap, error)
	Subject(ctx context.Context, subjectID uuid.UUID) (*subjectModel.SubjectModel, error)
	EnrolledStudents(ctx context.Context, classroomID uuid.UUID) ([]peopleModel.StudentModel, error)
	SubjectGrades(ctx context.Context, q GradeQuery) ([]gradeModel.SubjectGradeModel, error)
	// TP di bawah CP (subject, phase); ok=false kalau CP-nya tidak ada
	ObjectivesForSubjectPhase(ctx context.Context, subjectID uuid.UUID, phase string) ([]curriculumModel.CurriculumObjectiveModel, bool, error)
	// semua TP dari semua CP milik mapel (fallback saat fase tidak diketahui)
	AllObjectivesForSubject(ctx context.Context, subjectID uuid.UUID) ([]curriculumModel.CurriculumObjectiveModel, error)
	// upsert seluruh batch dalam SATU transaksi, key (student, subject, classroom, term, semester)
	UpsertSubjectGrades(ctx context.Context, rows []gradeModel.SubjectGradeModel) error
}

type GradeEngine struct {
	Store  GradeStore
	Access AccessChecker
}

func NewGradeEngine(store GradeStore, access AccessChecker) *GradeEngine {
	return &GradeEngine{Store: store, Access: access}
}

// authorize: guru wajib lolos DUA pemeriksaan (kelas DAN mapel);
// gagal salah satu → ErrAccessDenied tanpa membocorkan data.
func (g *GradeEngine) authorize(ctx context.Context, actor helperAuth.Actor, q GradeQuery) error {
	okClass, err := g.Access.HasClassroomAccess(ctx, actor, q.ClassroomID)
	if err != nil {
		return err
	}
	if !okClass {
		return ErrAccessDenied
	}
	okSubject, err := g.Access.HasSubjectAccess(ctx, actor, q.SubjectID)
	if err != nil {
		return err
	}
	if !okSubject {
		return ErrAccessDenied
	}
	return nil
}

// LoadRoster: ambil nilai yang sudah ada + sintesis entry kosong untuk
// siswa terdaftar yang belum punya baris, sehingga roster selalu lengkap.
func (g *GradeEngine) LoadRoster(ctx context.Context, actor helperAuth.Actor, q GradeQuery) ([]StudentGradeEntry, error) {
	if err := g.authorize(ctx, actor, q); err != nil {
		return nil, err
	}

	classroom, _, err := g.Store.ClassroomWithPhaseMap(ctx, q.ClassroomID)
	if err != nil {
		return nil, err
	}
	if classroom == nil {
		return nil, ErrNotFound
	}

	students, err := g.Store.EnrolledStudents(ctx, q.ClassroomID)
	if err != nil {
		return nil, err
	}
	existing, err := g.Store.SubjectGrades(ctx, q)
	if err != nil {
		return nil, err
	}

	byStudent := make(map[uuid.UUID]gradeModel.SubjectGradeModel, len(existing))
	for _, row := range existing {
		byStudent[row.SubjectGradeStudentID] = row
	}

	out := make([]StudentGradeEntry, 0, len(students))
	for _, st := range students {
		entry := StudentGradeEntry{
			StudentID:   st.StudentID,
			StudentName: st.StudentName,
		}
		if row, ok := byStudent[st.StudentID]; ok {
			entry.Score = row.SubjectGradeScore
			entry.StrongestIDs = row.SubjectGradeStrongestIDs
			entry.NeedsImprovementIDs = row.SubjectGradeNeedsImprovementIDs
		}
		out = append(out, entry)
	}
	return out, nil
}

// CandidateObjectives: TP yang boleh dipilih untuk (kelas, mapel).
// Fase diketahui → TP milik CP (mapel, fase); CP tidak ada → kosong.
// Fase tidak diketahui → fallback terluas: semua TP mapel itu.
func (g *GradeEngine) CandidateObjectives(ctx context.Context, actor helperAuth.Actor, q GradeQuery) ([]curriculumModel.CurriculumObjectiveModel, error) {
	if err := g.authorize(ctx, actor, q); err != nil {
		return nil, err
	}

	classroom, phaseMap, err := g.Store.ClassroomWithPhaseMap(ctx, q.ClassroomID)
	if err != nil {
		return nil, err
	}
	if classroom == nil {
		return nil, ErrNotFound
	}
	if subject, err := g.Store.Subject(ctx, q.SubjectID); err != nil {
		return nil, err
	} else if subject == nil {
		return nil, ErrNotFound
	}

	phase := levelService.ResolvePhase(classroom.ClassroomClassLevel, phaseMap)
	if phase == nil {
		return g.Store.AllObjectivesForSubject(ctx, q.SubjectID)
	}

	objectives, groupExists, err := g.Store.ObjectivesForSubjectPhase(ctx, q.SubjectID, *phase)
	if err != nil {
		return nil, err
	}
	if !groupExists {
		// fase jelas tapi CP belum dibuat → kandidat kosong, BUKAN semua TP
		return []curriculumModel.CurriculumObjectiveModel{}, nil
	}
	return objectives, nil
}

// Save: validasi disjoint untuk SEMUA siswa dulu, baru tulis.
// Entry kosong dilewati (tidak membuat baris kosong). Upsert satu transaksi.
func (g *GradeEngine) Save(ctx context.Context, actor helperAuth.Actor, q GradeQuery, entries []StudentGradeEntry) (int, error) {
	if err := g.authorize(ctx, actor, q); err != nil {
		return 0, err
	}

	classroom, _, err := g.Store.ClassroomWithPhaseMap(ctx, q.ClassroomID)
	if err != nil {
		return 0, err
	}
	if classroom == nil {
		return 0, ErrNotFound
	}

	// fase validasi: pelanggaran pertama membatalkan seluruh batch
	for _, entry := range entries {
		if overlap := entry.StrongestIDs.Intersect(entry.NeedsImprovementIDs); len(overlap) > 0 {
			return 0, &DisjointViolationError{
				StudentID:   entry.StudentID,
				StudentName: entry.StudentName,
			}
		}
	}

	rows := make([]gradeModel.SubjectGradeModel, 0, len(entries))
	for _, entry := range entries {
		if entry.IsEmpty() {
			continue
		}
		rows = append(rows, gradeModel.SubjectGradeModel{
			SubjectGradeStudentID:           entry.StudentID,
			SubjectGradeSubjectID:           q.SubjectID,
			SubjectGradeClassroomID:         q.ClassroomID,
			SubjectGradeTermID:              q.TermID,
			SubjectGradeSemester:            q.Semester,
			SubjectGradeScore:               entry.Score,
			SubjectGradeStrongestIDs:        entry.StrongestIDs.Dedup(),
			SubjectGradeNeedsImprovementIDs: entry.NeedsImprovementIDs.Dedup(),
		})
	}
	if len(rows) == 0 {
		return 0, nil
	}
	if err := g.Store.UpsertSubjectGrades(ctx, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

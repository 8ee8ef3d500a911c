// file: internals/features/school/assessments/grades/model/subject_grade_model.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UUIDSet: himpunan id TP tanpa jaminan urutan, disimpan sebagai jsonb.
// Set kosong dipersist sebagai NULL, bukan [].
type UUIDSet []uuid.UUID

func (s UUIDSet) Value() (driver.Value, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *UUIDSet) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("uuid set: tipe kolom tidak didukung")
	}
}

func (s UUIDSet) Contains(id uuid.UUID) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Intersect: anggota yang muncul di kedua set (untuk cek disjoint)
func (s UUIDSet) Intersect(other UUIDSet) UUIDSet {
	var out UUIDSet
	for _, v := range s {
		if other.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// Dedup: buang anggota dobel, urutan kemunculan pertama dipertahankan
func (s UUIDSet) Dedup() UUIDSet {
	if len(s) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(s))
	out := make(UUIDSet, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// SubjectGradeModel: nilai + deskriptor capaian per siswa per mapel.
// Unik per (student, subject, classroom, term, semester).
type SubjectGradeModel struct {
	SubjectGradeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_grade_id" json:"subject_grade_id"`

	SubjectGradeStudentID   uuid.UUID `gorm:"type:uuid;not null;column:subject_grade_student_id;uniqueIndex:uq_subject_grade" json:"subject_grade_student_id"`
	SubjectGradeSubjectID   uuid.UUID `gorm:"type:uuid;not null;column:subject_grade_subject_id;uniqueIndex:uq_subject_grade" json:"subject_grade_subject_id"`
	SubjectGradeClassroomID uuid.UUID `gorm:"type:uuid;not null;column:subject_grade_classroom_id;uniqueIndex:uq_subject_grade" json:"subject_grade_classroom_id"`
	SubjectGradeTermID      uuid.UUID `gorm:"type:uuid;not null;column:subject_grade_term_id;uniqueIndex:uq_subject_grade" json:"subject_grade_term_id"`
	SubjectGradeSemester    int       `gorm:"not null;column:subject_grade_semester;uniqueIndex:uq_subject_grade" json:"subject_grade_semester"`

	// NULL = belum dinilai; 0 = memang dinilai nol
	SubjectGradeScore *float64 `gorm:"type:numeric(5,2);column:subject_grade_score" json:"subject_grade_score,omitempty"`

	// dua set TP yang harus saling lepas
	SubjectGradeStrongestIDs        UUIDSet `gorm:"type:jsonb;column:subject_grade_strongest_ids" json:"subject_grade_strongest_ids,omitempty"`
	SubjectGradeNeedsImprovementIDs UUIDSet `gorm:"type:jsonb;column:subject_grade_needs_improvement_ids" json:"subject_grade_needs_improvement_ids,omitempty"`

	SubjectGradeCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:subject_grade_created_at" json:"subject_grade_created_at"`
	SubjectGradeUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:subject_grade_updated_at" json:"subject_grade_updated_at"`
	SubjectGradeDeletedAt gorm.DeletedAt `gorm:"column:subject_grade_deleted_at;index" json:"subject_grade_deleted_at,omitempty"`
}

func (SubjectGradeModel) TableName() string { return "subject_grades" }

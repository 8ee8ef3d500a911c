// file: internals/features/school/academics/levels/model/level_model.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tipe penanggung jawab pengajaran di jenjang ini
const (
	LevelTypeClassTeacher   = "class_teacher"   // 1 wali kelas mengajar semua mapel
	LevelTypeSubjectTeacher = "subject_teacher" // tiap mapel punya guru sendiri
)

// PhaseMap: nomor tingkat (string) → huruf fase Kurikulum Merdeka (A–F).
// Disimpan sebagai jsonb; logika internal selalu memakai tipe ini, bukan map generik.
type PhaseMap map[string]string

func (m PhaseMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *PhaseMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("phase_map: tipe kolom tidak didukung")
	}
}

type LevelModel struct {
	LevelID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:level_id" json:"level_id"`

	LevelName string `gorm:"type:varchar(120);not null;column:level_name" json:"level_name"`
	// class_teacher | subject_teacher
	LevelType string `gorm:"type:varchar(20);not null;column:level_type" json:"level_type"`
	// jenjang pendidikan (paud/sd/smp/sma/paket)
	LevelTier *string `gorm:"type:varchar(20);column:level_tier" json:"level_tier,omitempty"`

	// mapping tingkat → fase (A–F)
	LevelPhaseMap PhaseMap `gorm:"type:jsonb;column:level_phase_map" json:"level_phase_map,omitempty"`

	LevelIsActive  bool           `gorm:"not null;default:true;column:level_is_active" json:"level_is_active"`
	LevelCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:level_created_at" json:"level_created_at"`
	LevelUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:level_updated_at" json:"level_updated_at"`
	LevelDeletedAt gorm.DeletedAt `gorm:"column:level_deleted_at;index" json:"level_deleted_at,omitempty"`
}

func (LevelModel) TableName() string { return "levels" }

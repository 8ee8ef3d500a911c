// file: internals/features/school/assessments/reports/model/report_card_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status rapor. Engine hanya pernah menghasilkan draft;
// transisi finalized/printed dilakukan di luar proses agregasi.
const (
	ReportStatusDraft     = "draft"
	ReportStatusFinalized = "finalized"
	ReportStatusPrinted   = "printed"
)

// Tipe kurikulum menentukan template cetak rapor.
const (
	CurriculumMerdeka      = "merdeka"
	CurriculumPaud         = "paud"
	CurriculumConventional = "konvensional"
)

// ReportCardModel: snapshot rapor satu siswa per (kelas, periode, semester).
// Kolom scores berisi dokumen agregasi (lihat service.ScoresDoc) dan ditulis
// ulang utuh setiap regenerasi; rapor bukan struktur yang dicicil.
type ReportCardModel struct {
	ReportCardID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:report_card_id" json:"report_card_id"`

	ReportCardStudentID   uuid.UUID `gorm:"type:uuid;not null;column:report_card_student_id;uniqueIndex:uq_report_card,priority:1" json:"report_card_student_id"`
	ReportCardClassroomID uuid.UUID `gorm:"type:uuid;not null;column:report_card_classroom_id;uniqueIndex:uq_report_card,priority:2;index" json:"report_card_classroom_id"`
	ReportCardTermID      uuid.UUID `gorm:"type:uuid;not null;column:report_card_term_id;uniqueIndex:uq_report_card,priority:3" json:"report_card_term_id"`
	ReportCardSemester    int       `gorm:"not null;column:report_card_semester;uniqueIndex:uq_report_card,priority:4" json:"report_card_semester"`

	ReportCardScores         datatypes.JSON `gorm:"type:jsonb;not null;column:report_card_scores" json:"report_card_scores"`
	ReportCardCurriculumType string         `gorm:"type:varchar(20);not null;column:report_card_curriculum_type" json:"report_card_curriculum_type"`
	ReportCardStatus         string         `gorm:"type:varchar(10);not null;default:draft;column:report_card_status" json:"report_card_status"`

	ReportCardHomeroomNote string  `gorm:"type:text;column:report_card_homeroom_note" json:"report_card_homeroom_note,omitempty"`
	ReportCardAchievements string  `gorm:"type:text;column:report_card_achievements" json:"report_card_achievements,omitempty"`
	ReportCardGPA          float64 `gorm:"not null;default:0;column:report_card_gpa" json:"report_card_gpa"`

	ReportCardCreatedAt time.Time      `gorm:"column:report_card_created_at;autoCreateTime" json:"report_card_created_at"`
	ReportCardUpdatedAt time.Time      `gorm:"column:report_card_updated_at;autoUpdateTime" json:"report_card_updated_at"`
	ReportCardDeletedAt gorm.DeletedAt `gorm:"column:report_card_deleted_at;index" json:"-"`
}

func (ReportCardModel) TableName() string { return "report_cards" }

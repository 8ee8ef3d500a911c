// file: internals/features/school/assessments/sources/model/attendance_summary_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceSummaryModel: rekap absensi satu siswa per (kelas, periode, semester).
type AttendanceSummaryModel struct {
	AttendanceSummaryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_summary_id" json:"attendance_summary_id"`

	AttendanceSummaryStudentID   uuid.UUID `gorm:"type:uuid;not null;column:attendance_summary_student_id;uniqueIndex:uq_attendance_summary,priority:1" json:"attendance_summary_student_id"`
	AttendanceSummaryClassroomID uuid.UUID `gorm:"type:uuid;not null;column:attendance_summary_classroom_id;uniqueIndex:uq_attendance_summary,priority:2;index" json:"attendance_summary_classroom_id"`
	AttendanceSummaryTermID      uuid.UUID `gorm:"type:uuid;not null;column:attendance_summary_term_id;uniqueIndex:uq_attendance_summary,priority:3" json:"attendance_summary_term_id"`
	AttendanceSummarySemester    int       `gorm:"not null;column:attendance_summary_semester;uniqueIndex:uq_attendance_summary,priority:4" json:"attendance_summary_semester"`

	AttendanceSummarySick       int `gorm:"not null;default:0;column:attendance_summary_sick" json:"attendance_summary_sick"`
	AttendanceSummaryPermission int `gorm:"not null;default:0;column:attendance_summary_permission" json:"attendance_summary_permission"`
	AttendanceSummaryAbsent     int `gorm:"not null;default:0;column:attendance_summary_absent" json:"attendance_summary_absent"`

	AttendanceSummaryCreatedAt time.Time      `gorm:"column:attendance_summary_created_at;autoCreateTime" json:"attendance_summary_created_at"`
	AttendanceSummaryUpdatedAt time.Time      `gorm:"column:attendance_summary_updated_at;autoUpdateTime" json:"attendance_summary_updated_at"`
	AttendanceSummaryDeletedAt gorm.DeletedAt `gorm:"column:attendance_summary_deleted_at;index" json:"-"`
}

func (AttendanceSummaryModel) TableName() string { return "attendance_summaries" }

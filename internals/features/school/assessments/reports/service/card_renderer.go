// file: internals/features/school/assessments/reports/service/card_renderer.go
package service

import (
	"context"

	reportModel "sekolahku_backend/internals/features/school/assessments/reports/model"
)

// Nama template cetak per tipe kurikulum.
const (
	TemplateMerdeka      = "rapor_merdeka"
	TemplatePaud         = "rapor_paud"
	TemplateConventional = "rapor_konvensional"
)

// TemplateForCurriculum: tipe tak dikenal jatuh ke template merdeka.
func TemplateForCurriculum(curriculumType string) string {
	switch curriculumType {
	case reportModel.CurriculumPaud:
		return TemplatePaud
	case reportModel.CurriculumConventional:
		return TemplateConventional
	default:
		return TemplateMerdeka
	}
}

// RenderInput: semua yang dibutuhkan kolaborator pencetak. Tanggung jawab
// engine berhenti di sini; pembuatan PDF/HTML ada di implementasi renderer.
type RenderInput struct {
	Template            string
	Card                reportModel.ReportCardModel
	Scores              ScoresDoc
	StudentName         string
	ClassroomName       string
	HomeroomTeacherName string
}

// CardRenderer: kolaborator eksternal penghasil dokumen unduhan.
type CardRenderer interface {
	Render(ctx context.Context, in RenderInput) (content []byte, contentType string, err error)
}

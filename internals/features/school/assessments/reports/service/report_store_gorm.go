// file: internals/features/school/assessments/reports/service/report_store_gorm.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	curriculumModel "sekolahku_backend/internals/features/school/academics/curriculum/model"
	sourceModel "sekolahku_backend/internals/features/school/assessments/sources/model"
	assignmentModel "sekolahku_backend/internals/features/school/teachers/assignments/model"
	peopleModel "sekolahku_backend/internals/features/school/people/model"
)

type GormReportStore struct {
	db *gorm.DB
}

func NewGormReportStore(db *gorm.DB) *GormReportStore {
	return &GormReportStore{db: db}
}

func (s *GormReportStore) EnrolledStudentSet(ctx context.Context, classroomID uuid.UUID) (map[uuid.UUID]peopleModel.StudentModel, error) {
	var students []peopleModel.StudentModel
	err := s.db.WithContext(ctx).
		Joins("JOIN classroom_students cs ON cs.classroom_student_student_id = students.student_id").
		Where("cs.classroom_student_classroom_id = ? AND cs.classroom_student_deleted_at IS NULL", classroomID).
		Find(&students).Error
	if err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]peopleModel.StudentModel, len(students))
	for _, st := range students {
		out[st.StudentID] = st
	}
	return out, nil
}

func (s *GormReportStore) SubjectGrades(ctx context.Context, studentID uuid.UUID, q CohortQuery) ([]SubjectGradeSource, error) {
	var rows []SubjectGradeSource
	err := s.db.WithContext(ctx).
		Table("subject_grades").
		Select(`subjects.subject_name AS subject_name,
			subject_grades.subject_grade_score AS score,
			subject_grades.subject_grade_strongest_ids AS strongest_ids,
			subject_grades.subject_grade_needs_improvement_ids AS needs_improvement_ids`).
		Joins("JOIN subjects ON subjects.subject_id = subject_grades.subject_grade_subject_id").
		Where(`subject_grades.subject_grade_student_id = ?
			AND subject_grades.subject_grade_classroom_id = ?
			AND subject_grades.subject_grade_term_id = ?
			AND subject_grades.subject_grade_semester = ?
			AND subject_grades.subject_grade_deleted_at IS NULL`,
			studentID, q.ClassroomID, q.TermID, q.Semester).
		Scan(&rows).Error
	return rows, err
}

func (s *GormReportStore) ObjectiveTexts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	var objectives []curriculumModel.CurriculumObjectiveModel
	err := s.db.WithContext(ctx).
		Where("curriculum_objective_id IN ?", ids).
		Find(&objectives).Error
	if err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]string, len(objectives))
	for _, tp := range objectives {
		out[tp.CurriculumObjectiveID] = tp.CurriculumObjectiveDesc
	}
	return out, nil
}

func (s *GormReportStore) Competencies(ctx context.Context, studentID uuid.UUID, q CohortQuery) ([]CompetencySource, error) {
	var rows []CompetencySource
	err := s.db.WithContext(ctx).
		Table("competency_assessments").
		Select(`subjects.subject_name AS subject_name,
			competency_assessments.competency_assessment_level AS level,
			competency_assessments.competency_assessment_desc AS description`).
		Joins("JOIN subjects ON subjects.subject_id = competency_assessments.competency_assessment_subject_id").
		Where(`competency_assessments.competency_assessment_student_id = ?
			AND competency_assessments.competency_assessment_classroom_id = ?
			AND competency_assessments.competency_assessment_term_id = ?
			AND competency_assessments.competency_assessment_semester = ?
			AND competency_assessments.competency_assessment_deleted_at IS NULL`,
			studentID, q.ClassroomID, q.TermID, q.Semester).
		Scan(&rows).Error
	return rows, err
}

func (s *GormReportStore) ProjectAssessments(ctx context.Context, studentID uuid.UUID, q CohortQuery) ([]sourceModel.ProjectAssessmentModel, error) {
	// dua langkah: proyek milik kohort dulu, baru penilaian siswa di proyek itu
	var projectIDs []uuid.UUID
	err := s.db.WithContext(ctx).
		Model(&sourceModel.ProjectModel{}).
		Where("project_classroom_id = ? AND project_term_id = ?", q.ClassroomID, q.TermID).
		Pluck("project_id", &projectIDs).Error
	if err != nil {
		return nil, err
	}
	if len(projectIDs) == 0 {
		return nil, nil
	}

	var rows []sourceModel.ProjectAssessmentModel
	err = s.db.WithContext(ctx).
		Preload("Project").
		Where("project_assessment_project_id IN ? AND project_assessment_student_id = ?", projectIDs, studentID).
		Find(&rows).Error
	return rows, err
}

func (s *GormReportStore) ExtracurricularAssessments(ctx context.Context, studentID uuid.UUID, q CohortQuery) ([]sourceModel.ExtracurricularAssessmentModel, error) {
	var rows []sourceModel.ExtracurricularAssessmentModel
	err := s.db.WithContext(ctx).
		Preload("Extracurricular").
		Where(`extracurricular_assessment_student_id = ?
			AND extracurricular_assessment_classroom_id = ?
			AND extracurricular_assessment_term_id = ?
			AND extracurricular_assessment_semester = ?`,
			studentID, q.ClassroomID, q.TermID, q.Semester).
		Find(&rows).Error
	return rows, err
}

func (s *GormReportStore) AttendanceSummary(ctx context.Context, studentID uuid.UUID, q CohortQuery) (*sourceModel.AttendanceSummaryModel, error) {
	var row sourceModel.AttendanceSummaryModel
	err := s.db.WithContext(ctx).
		Where(`attendance_summary_student_id = ?
			AND attendance_summary_classroom_id = ?
			AND attendance_summary_term_id = ?
			AND attendance_summary_semester = ?`,
			studentID, q.ClassroomID, q.TermID, q.Semester).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *GormReportStore) DevelopmentalAssessments(ctx context.Context, studentID uuid.UUID, q CohortQuery) ([]sourceModel.DevelopmentalAssessmentModel, error) {
	var rows []sourceModel.DevelopmentalAssessmentModel
	err := s.db.WithContext(ctx).
		Where(`developmental_assessment_student_id = ?
			AND developmental_assessment_classroom_id = ?
			AND developmental_assessment_term_id = ?
			AND developmental_assessment_semester = ?`,
			studentID, q.ClassroomID, q.TermID, q.Semester).
		Find(&rows).Error
	return rows, err
}

func (s *GormReportStore) HomeroomTeacherName(ctx context.Context, classroomID uuid.UUID, termID uuid.UUID) (string, error) {
	var name string
	err := s.db.WithContext(ctx).
		Table("teacher_assignments").
		Select("teachers.teacher_name").
		Joins("JOIN teachers ON teachers.teacher_id = teacher_assignments.teacher_assignment_teacher_id").
		Where(`teacher_assignments.teacher_assignment_classroom_id = ?
			AND teacher_assignments.teacher_assignment_term_id = ?
			AND teacher_assignments.teacher_assignment_type IN ?
			AND teacher_assignments.teacher_assignment_deleted_at IS NULL`,
			classroomID, termID,
			[]string{assignmentModel.AssignmentTypeHomeroom, assignmentModel.AssignmentTypeClassTeacher}).
		Limit(1).
		Scan(&name).Error
	if err != nil {
		return "", err
	}
	return name, nil
}

func (s *GormReportStore) UpsertReportCards(ctx context.Context, rows []ReportUpsert) error {
	baseColumns := []string{
		"report_card_scores",
		"report_card_curriculum_type",
		"report_card_status",
		"report_card_gpa",
		"report_card_updated_at",
	}
	noteColumns := append(append([]string{}, baseColumns...),
		"report_card_homeroom_note",
		"report_card_achievements",
	)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			columns := baseColumns
			if rows[i].WithNotes {
				columns = noteColumns
			}
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "report_card_student_id"},
					{Name: "report_card_classroom_id"},
					{Name: "report_card_term_id"},
					{Name: "report_card_semester"},
				},
				DoUpdates: clause.AssignmentColumns(columns),
			}).Create(&rows[i].Row).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

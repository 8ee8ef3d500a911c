// file: internals/features/school/assessments/grades/service/grade_store_gorm.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	curriculumModel "sekolahku_backend/internals/features/school/academics/curriculum/model"
	levelModel "sekolahku_backend/internals/features/school/academics/levels/model"
	subjectModel "sekolahku_backend/internals/features/school/academics/subjects/model"
	classroomModel "sekolahku_backend/internals/features/school/classes/classrooms/model"
	gradeModel "sekolahku_backend/internals/features/school/assessments/grades/model"
	peopleModel "sekolahku_backend/internals/features/school/people/model"
)

type GormGradeStore struct {
	DB *gorm.DB
}

func NewGormGradeStore(db *gorm.DB) *GormGradeStore {
	return &GormGradeStore{DB: db}
}

func (s *GormGradeStore) ClassroomWithPhaseMap(ctx context.Context, classroomID uuid.UUID) (*classroomModel.ClassroomModel, levelModel.PhaseMap, error) {
	var classroom classroomModel.ClassroomModel
	if err := s.DB.WithContext(ctx).First(&classroom, "classroom_id = ?", classroomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	var level levelModel.LevelModel
	if err := s.DB.WithContext(ctx).First(&level, "level_id = ?", classroom.ClassroomLevelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// kelas yatim: fase tidak bisa di-resolve, bukan error
			return &classroom, nil, nil
		}
		return nil, nil, err
	}
	return &classroom, level.LevelPhaseMap, nil
}

func (s *GormGradeStore) Subject(ctx context.Context, subjectID uuid.UUID) (*subjectModel.SubjectModel, error) {
	var subject subjectModel.SubjectModel
	if err := s.DB.WithContext(ctx).First(&subject, "subject_id = ?", subjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subject, nil
}

func (s *GormGradeStore) EnrolledStudents(ctx context.Context, classroomID uuid.UUID) ([]peopleModel.StudentModel, error) {
	var rows []peopleModel.StudentModel
	err := s.DB.WithContext(ctx).
		Joins("JOIN classroom_students cs ON cs.classroom_student_student_id = students.student_id AND cs.classroom_student_deleted_at IS NULL").
		Where("cs.classroom_student_classroom_id = ?", classroomID).
		Order("students.student_name ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormGradeStore) SubjectGrades(ctx context.Context, q GradeQuery) ([]gradeModel.SubjectGradeModel, error) {
	var rows []gradeModel.SubjectGradeModel
	err := s.DB.WithContext(ctx).
		Where(`subject_grade_classroom_id = ?
			AND subject_grade_subject_id = ?
			AND subject_grade_term_id = ?
			AND subject_grade_semester = ?`,
			q.ClassroomID, q.SubjectID, q.TermID, q.Semester).
		Find(&rows).Error
	return rows, err
}

func (s *GormGradeStore) ObjectivesForSubjectPhase(ctx context.Context, subjectID uuid.UUID, phase string) ([]curriculumModel.CurriculumObjectiveModel, bool, error) {
	var group curriculumModel.CurriculumGroupModel
	err := s.DB.WithContext(ctx).
		Where("curriculum_group_subject_id = ? AND curriculum_group_phase = ?", subjectID, phase).
		First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var objectives []curriculumModel.CurriculumObjectiveModel
	err = s.DB.WithContext(ctx).
		Where("curriculum_objective_group_id = ?", group.CurriculumGroupID).
		Order("curriculum_objective_code ASC").
		Find(&objectives).Error
	return objectives, true, err
}

func (s *GormGradeStore) AllObjectivesForSubject(ctx context.Context, subjectID uuid.UUID) ([]curriculumModel.CurriculumObjectiveModel, error) {
	var objectives []curriculumModel.CurriculumObjectiveModel
	err := s.DB.WithContext(ctx).
		Joins("JOIN curriculum_groups cg ON cg.curriculum_group_id = curriculum_objectives.curriculum_objective_group_id AND cg.curriculum_group_deleted_at IS NULL").
		Where("cg.curriculum_group_subject_id = ?", subjectID).
		Order("curriculum_objectives.curriculum_objective_code ASC").
		Find(&objectives).Error
	return objectives, err
}

// UpsertSubjectGrades: seluruh batch dalam satu transaksi; key komposit jadi
// titik serialisasi — regenerasi bersamaan berakhir last-write-wins.
func (s *GormGradeStore) UpsertSubjectGrades(ctx context.Context, rows []gradeModel.SubjectGradeModel) error {
	if len(rows) == 0 {
		return nil
	}
	now := time.Now()
	for i := range rows {
		rows[i].SubjectGradeCreatedAt = now
		rows[i].SubjectGradeUpdatedAt = now
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "subject_grade_student_id"},
				{Name: "subject_grade_subject_id"},
				{Name: "subject_grade_classroom_id"},
				{Name: "subject_grade_term_id"},
				{Name: "subject_grade_semester"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"subject_grade_score",
				"subject_grade_strongest_ids",
				"subject_grade_needs_improvement_ids",
				"subject_grade_updated_at",
			}),
		}).Create(&rows).Error
	})
}

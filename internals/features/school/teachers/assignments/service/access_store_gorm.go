// file: internals/features/school/teachers/assignments/service/access_store_gorm.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectModel "sekolahku_backend/internals/features/school/academics/subjects/model"
	classroomModel "sekolahku_backend/internals/features/school/classes/classrooms/model"
	assignmentModel "sekolahku_backend/internals/features/school/teachers/assignments/model"
)

type GormAccessStore struct {
	DB *gorm.DB
}

func NewGormAccessStore(db *gorm.DB) *GormAccessStore {
	return &GormAccessStore{DB: db}
}

func (s *GormAccessStore) ListAssignmentsByTeacher(ctx context.Context, teacherID uuid.UUID) ([]assignmentModel.TeacherAssignmentModel, error) {
	var rows []assignmentModel.TeacherAssignmentModel
	err := s.DB.WithContext(ctx).
		Where("teacher_assignment_teacher_id = ?", teacherID).
		Find(&rows).Error
	return rows, err
}

func (s *GormAccessStore) SubjectLevelID(ctx context.Context, subjectID uuid.UUID) (*uuid.UUID, bool, error) {
	var row subjectModel.SubjectModel
	err := s.DB.WithContext(ctx).
		Select("subject_id, subject_level_id").
		First(&row, "subject_id = ?", subjectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return row.SubjectLevelID, true, nil
}

func (s *GormAccessStore) ClassroomLevelIDs(ctx context.Context, classroomIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	if len(classroomIDs) == 0 {
		return map[uuid.UUID]uuid.UUID{}, nil
	}
	var rows []classroomModel.ClassroomModel
	err := s.DB.WithContext(ctx).
		Select("classroom_id, classroom_level_id").
		Where("classroom_id IN ?", classroomIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]uuid.UUID, len(rows))
	for _, row := range rows {
		out[row.ClassroomID] = row.ClassroomLevelID
	}
	return out, nil
}

func (s *GormAccessStore) SubjectIDsByLevels(ctx context.Context, levelIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(levelIDs) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).
		Model(&subjectModel.SubjectModel{}).
		Where("subject_level_id IN ?", levelIDs).
		Pluck("subject_id", &ids).Error
	return ids, err
}

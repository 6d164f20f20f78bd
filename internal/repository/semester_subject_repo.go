package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schulhof.app/gradebook/internal/model"
)

type SemesterSubjectRepository interface {
	Create(ctx context.Context, semesterSubject *model.SemesterSubject) error
	Save(ctx context.Context, semesterSubject *model.SemesterSubject) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SemesterSubject, error)
	ExistsByPair(ctx context.Context, semesterID, subjectID uuid.UUID) (bool, error)
	FindAll(ctx context.Context, sort string, offset, limit int) ([]*model.SemesterSubject, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type semesterSubjectRepository struct {
	db *gorm.DB
}

func NewSemesterSubjectRepository(db *gorm.DB) SemesterSubjectRepository {
	return &semesterSubjectRepository{db: db}
}

func (r *semesterSubjectRepository) Create(ctx context.Context, semesterSubject *model.SemesterSubject) error {
	return r.db.WithContext(ctx).Create(semesterSubject).Error
}

func (r *semesterSubjectRepository) Save(ctx context.Context, semesterSubject *model.SemesterSubject) error {
	return r.db.WithContext(ctx).Save(semesterSubject).Error
}

func (r *semesterSubjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SemesterSubject, error) {
	var semesterSubject model.SemesterSubject
	if err := r.db.WithContext(ctx).First(&semesterSubject, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &semesterSubject, nil
}

func (r *semesterSubjectRepository) ExistsByPair(ctx context.Context, semesterID, subjectID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SemesterSubject{}).
		Where("semester_id = ? AND subject_id = ?", semesterID, subjectID).
		Count(&count).Error
	return count > 0, err
}

func (r *semesterSubjectRepository) FindAll(ctx context.Context, sort string, offset, limit int) ([]*model.SemesterSubject, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.SemesterSubject{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := orderBy(sort, map[string]string{
		"semester_id": "semester_id",
		"subject_id":  "subject_id",
	}, "id asc")

	var semesterSubjects []*model.SemesterSubject
	if err := query.Order(order).Offset(offset).Limit(limit).Find(&semesterSubjects).Error; err != nil {
		return nil, 0, err
	}
	return semesterSubjects, total, nil
}

func (r *semesterSubjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SemesterSubject{}, "id = ?", id).Error
}

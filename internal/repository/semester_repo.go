package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schulhof.app/gradebook/internal/model"
)

type SemesterRepository interface {
	Create(ctx context.Context, semester *model.Semester) error
	Save(ctx context.Context, semester *model.Semester) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Semester, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAll(ctx context.Context, sort string, offset, limit int) ([]*model.Semester, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type semesterRepository struct {
	db *gorm.DB
}

func NewSemesterRepository(db *gorm.DB) SemesterRepository {
	return &semesterRepository{db: db}
}

func (r *semesterRepository) Create(ctx context.Context, semester *model.Semester) error {
	return r.db.WithContext(ctx).Create(semester).Error
}

func (r *semesterRepository) Save(ctx context.Context, semester *model.Semester) error {
	return r.db.WithContext(ctx).Save(semester).Error
}

func (r *semesterRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Semester, error) {
	var semester model.Semester
	if err := r.db.WithContext(ctx).First(&semester, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &semester, nil
}

func (r *semesterRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Semester{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (r *semesterRepository) FindAll(ctx context.Context, sort string, offset, limit int) ([]*model.Semester, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Semester{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var semesters []*model.Semester
	order := orderBy(sort, map[string]string{
		"name":       "name",
		"start_date": "start_date",
		"end_date":   "end_date",
	}, "start_date desc")
	if err := query.Order(order).Offset(offset).Limit(limit).Find(&semesters).Error; err != nil {
		return nil, 0, err
	}
	return semesters, total, nil
}

func (r *semesterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Semester{}, "id = ?", id).Error
}

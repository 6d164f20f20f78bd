package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schulhof.app/gradebook/internal/model"
)

type SchoolClassRepository interface {
	Create(ctx context.Context, schoolClass *model.SchoolClass) error
	Save(ctx context.Context, schoolClass *model.SchoolClass) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SchoolClass, error)
	FindAll(ctx context.Context, sort string, offset, limit int) ([]*model.SchoolClass, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type schoolClassRepository struct {
	db *gorm.DB
}

func NewSchoolClassRepository(db *gorm.DB) SchoolClassRepository {
	return &schoolClassRepository{db: db}
}

func (r *schoolClassRepository) Create(ctx context.Context, schoolClass *model.SchoolClass) error {
	return r.db.WithContext(ctx).Create(schoolClass).Error
}

func (r *schoolClassRepository) Save(ctx context.Context, schoolClass *model.SchoolClass) error {
	return r.db.WithContext(ctx).Save(schoolClass).Error
}

func (r *schoolClassRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SchoolClass, error) {
	var schoolClass model.SchoolClass
	if err := r.db.WithContext(ctx).First(&schoolClass, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &schoolClass, nil
}

func (r *schoolClassRepository) FindAll(ctx context.Context, sort string, offset, limit int) ([]*model.SchoolClass, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.SchoolClass{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := orderBy(sort, map[string]string{"semester_subject_id": "semester_subject_id"}, "id asc")

	var classes []*model.SchoolClass
	if err := query.Order(order).Offset(offset).Limit(limit).Find(&classes).Error; err != nil {
		return nil, 0, err
	}
	return classes, total, nil
}

func (r *schoolClassRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SchoolClass{}, "id = ?", id).Error
}

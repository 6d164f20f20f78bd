package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schulhof.app/gradebook/internal/model"
)

type SubjectRepository interface {
	Create(ctx context.Context, subject *model.Subject) error
	Save(ctx context.Context, subject *model.Subject) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Subject, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAll(ctx context.Context, sort string, offset, limit int) ([]*model.Subject, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type subjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *subjectRepository) Save(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Save(subject).Error
}

func (r *subjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Subject, error) {
	var subject model.Subject
	if err := r.db.WithContext(ctx).First(&subject, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subject{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (r *subjectRepository) FindAll(ctx context.Context, sort string, offset, limit int) ([]*model.Subject, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Subject{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subjects []*model.Subject
	order := orderBy(sort, map[string]string{"name": "name"}, "name asc")
	if err := query.Order(order).Offset(offset).Limit(limit).Find(&subjects).Error; err != nil {
		return nil, 0, err
	}
	return subjects, total, nil
}

func (r *subjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Subject{}, "id = ?", id).Error
}

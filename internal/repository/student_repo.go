package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schulhof.app/gradebook/internal/model"
)

type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	Save(ctx context.Context, student *model.Student) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Student, error)
	FindAll(ctx context.Context, sort string, offset, limit int) ([]*model.Student, int64, error)
	FindActive(ctx context.Context, sort string, offset, limit int) ([]*model.Student, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) Save(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).First(&student, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindAll(ctx context.Context, sort string, offset, limit int) ([]*model.Student, int64, error) {
	return r.page(r.db.WithContext(ctx).Model(&model.Student{}), sort, offset, limit)
}

func (r *studentRepository) FindActive(ctx context.Context, sort string, offset, limit int) ([]*model.Student, int64, error) {
	return r.page(r.db.WithContext(ctx).Model(&model.Student{}).Where("active = ?", true), sort, offset, limit)
}

func (r *studentRepository) page(query *gorm.DB, sort string, offset, limit int) ([]*model.Student, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var students []*model.Student
	order := orderBy(sort, map[string]string{
		"first_name": "first_name",
		"last_name":  "last_name",
		"created_at": "created_at",
	}, "last_name asc, first_name asc")
	if err := query.Order(order).Offset(offset).Limit(limit).Find(&students).Error; err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

func (r *studentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Student{}, "id = ?", id).Error
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schulhof.app/gradebook/internal/model"
)

type TestRepository interface {
	Create(ctx context.Context, test *model.Test) error
	Save(ctx context.Context, test *model.Test) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Test, error)
	FindAll(ctx context.Context, sort string, offset, limit int) ([]*model.Test, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *testRepository) Save(ctx context.Context, test *model.Test) error {
	return r.db.WithContext(ctx).Save(test).Error
}

func (r *testRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Test, error) {
	var test model.Test
	if err := r.db.WithContext(ctx).First(&test, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindAll(ctx context.Context, sort string, offset, limit int) ([]*model.Test, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Test{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tests []*model.Test
	order := orderBy(sort, map[string]string{
		"name": "name",
		"date": "date",
	}, "date desc")
	if err := query.Order(order).Offset(offset).Limit(limit).Find(&tests).Error; err != nil {
		return nil, 0, err
	}
	return tests, total, nil
}

func (r *testRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Test{}, "id = ?", id).Error
}

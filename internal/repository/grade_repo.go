package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"schulhof.app/gradebook/internal/model"
)

// GradeQuery is the store-level filter; all conditions compose conjunctively
// and are evaluated as indexed SQL predicates, not in-memory scans.
type GradeQuery struct {
	StudentID *uuid.UUID
	TestID    *uuid.UUID
	ValueMin  *decimal.Decimal
	ValueMax  *decimal.Decimal
	Search    string
}

type GradeRepository interface {
	Create(ctx context.Context, grade *model.Grade) error
	Save(ctx context.Context, grade *model.Grade) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Grade, error)
	Find(ctx context.Context, query GradeQuery, sort string, offset, limit int) ([]*model.Grade, int64, error)
	SemesterGradeRows(ctx context.Context, semesterID uuid.UUID, studentID *uuid.UUID) ([]model.SemesterGradeRow, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type gradeRepository struct {
	db *gorm.DB
}

func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &gradeRepository{db: db}
}

func (r *gradeRepository) Create(ctx context.Context, grade *model.Grade) error {
	return r.db.WithContext(ctx).Create(grade).Error
}

func (r *gradeRepository) Save(ctx context.Context, grade *model.Grade) error {
	return r.db.WithContext(ctx).Save(grade).Error
}

func (r *gradeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Grade, error) {
	var grade model.Grade
	if err := r.db.WithContext(ctx).First(&grade, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *gradeRepository) Find(ctx context.Context, query GradeQuery, sort string, offset, limit int) ([]*model.Grade, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Grade{}).
		Joins("LEFT JOIN users ON users.id = grades.student_id").
		Joins("LEFT JOIN tests ON tests.id = grades.test_id")

	if query.StudentID != nil {
		q = q.Where("grades.student_id = ?", *query.StudentID)
	}
	if query.TestID != nil {
		q = q.Where("grades.test_id = ?", *query.TestID)
	}
	if query.ValueMin != nil {
		q = q.Where("grades.value >= ?", *query.ValueMin)
	}
	if query.ValueMax != nil {
		q = q.Where("grades.value <= ?", *query.ValueMax)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		q = q.Where(
			"users.username ILIKE ? OR users.first_name ILIKE ? OR users.last_name ILIKE ? OR tests.name ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var grades []*model.Grade
	order := orderBy(sort, map[string]string{
		"value":      "grades.value",
		"weight":     "grades.weight",
		"created_at": "grades.created_at",
	}, "grades.created_at asc")
	if err := q.Order(order).Offset(offset).Limit(limit).Find(&grades).Error; err != nil {
		return nil, 0, err
	}
	return grades, total, nil
}

// SemesterGradeRows returns the flat fact rows for one semester, optionally
// narrowed to a single student. Grades without a test, and tests outside the
// semester, fall out of the semester predicate on the left-joined chain.
func (r *gradeRepository) SemesterGradeRows(ctx context.Context, semesterID uuid.UUID, studentID *uuid.UUID) ([]model.SemesterGradeRow, error) {
	q := r.db.WithContext(ctx).Table("grades").
		Select(`grades.id AS grade_id,
			users.id AS student_id,
			users.first_name AS student_first_name,
			users.last_name AS student_last_name,
			subjects.id AS subject_id,
			subjects.name AS subject_name,
			tests.id AS test_id,
			tests.name AS test_name,
			tests.date AS test_date,
			grades.value AS value,
			grades.weight AS weight,
			grades.comment AS grade_comment`).
		Joins("JOIN users ON users.id = grades.student_id").
		Joins("LEFT JOIN tests ON tests.id = grades.test_id").
		Joins("LEFT JOIN semester_subjects ON semester_subjects.id = tests.semester_subject_id").
		Joins("LEFT JOIN subjects ON subjects.id = semester_subjects.subject_id").
		Where("semester_subjects.semester_id = ?", semesterID)

	if studentID != nil {
		q = q.Where("users.id = ?", *studentID)
	}

	var rows []model.SemesterGradeRow
	if err := q.Order("users.username asc, grades.created_at asc").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gradeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Grade{}, "id = ?", id).Error
}

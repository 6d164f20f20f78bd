package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Grade is an atomic grade fact. The test reference is optional; deleting a
// test nulls the reference instead of deleting the grade, so the historical
// record survives.
type Grade struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Value     decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"value"`
	Weight    decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"weight"`
	Comment   *string         `gorm:"size:255" json:"comment,omitempty"`
	StudentID uuid.UUID       `gorm:"type:uuid;not null" json:"student_id"`
	Student   User            `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	TestID    *uuid.UUID      `gorm:"type:uuid" json:"test_id,omitempty"`
	Test      *Test           `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (g *Grade) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// SemesterGradeRow is one flat fact row feeding the aggregation: a grade
// joined through its student and the test -> semester-subject -> subject
// chain for a single semester.
type SemesterGradeRow struct {
	GradeID          uuid.UUID       `json:"grade_id"`
	StudentID        uuid.UUID       `json:"student_id"`
	StudentFirstName *string         `json:"student_first_name"`
	StudentLastName  *string         `json:"student_last_name"`
	SubjectID        uuid.UUID       `json:"subject_id"`
	SubjectName      string          `json:"subject_name"`
	TestID           *uuid.UUID      `json:"test_id"`
	TestName         *string         `json:"test_name"`
	TestDate         *time.Time      `json:"test_date"`
	Value            decimal.Decimal `json:"value"`
	Weight           decimal.Decimal `json:"weight"`
	GradeComment     *string         `json:"grade_comment"`
}

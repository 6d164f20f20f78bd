package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schulhof.app/gradebook/internal/model"
)

type GradeRequest struct {
	Value     decimal.Decimal `json:"value"`
	Weight    decimal.Decimal `json:"weight"`
	Comment   *string         `json:"comment" binding:"omitempty,max=255"`
	StudentID string          `json:"student_id" binding:"required,uuid"`
	TestID    *string         `json:"test_id" binding:"omitempty,uuid"`
}

// GradeFilter composes conjunctively. Non-elevated callers have StudentID
// forced to their own identity regardless of the requested value.
type GradeFilter struct {
	StudentID string `form:"student_id" binding:"omitempty,uuid"`
	TestID    string `form:"test_id" binding:"omitempty,uuid"`
	ValueMin  string `form:"value_min" binding:"omitempty,numeric"`
	ValueMax  string `form:"value_max" binding:"omitempty,numeric"`
	Search    string `form:"search"`
}

type GradeResponse struct {
	ID        string          `json:"id"`
	Value     decimal.Decimal `json:"value"`
	Weight    decimal.Decimal `json:"weight"`
	Comment   *string         `json:"comment,omitempty"`
	StudentID string          `json:"student_id"`
	TestID    *string         `json:"test_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewGradeResponse(g *model.Grade) GradeResponse {
	resp := GradeResponse{
		ID:        g.ID.String(),
		Value:     g.Value,
		Weight:    g.Weight,
		Comment:   g.Comment,
		StudentID: g.StudentID.String(),
		CreatedAt: g.CreatedAt,
	}
	if g.TestID != nil {
		id := g.TestID.String()
		resp.TestID = &id
	}
	return resp
}

type PaginatedGradeResponse struct {
	Data []GradeResponse `json:"data"`
	Meta PaginationMeta  `json:"meta"`
}

// GradeItem is one contributing grade inside a subject result.
type GradeItem struct {
	GradeID  uuid.UUID       `json:"grade_id"`
	TestID   *uuid.UUID      `json:"test_id,omitempty"`
	TestName *string         `json:"test_name,omitempty"`
	TestDate *time.Time      `json:"test_date,omitempty"`
	Value    decimal.Decimal `json:"value"`
	Weight   decimal.Decimal `json:"weight"`
	Comment  *string         `json:"comment,omitempty"`
}

// SubjectResult carries the weighted average for one subject, or a nil
// average when the subject has no positive weight.
type SubjectResult struct {
	SubjectID       uuid.UUID        `json:"subject_id"`
	SubjectName     string           `json:"subject_name"`
	CalculatedGrade *decimal.Decimal `json:"calculated_grade"`
	Grades          []GradeItem      `json:"grades"`
}

// StudentSemesterResult is one student's aggregated semester outcome.
type StudentSemesterResult struct {
	StudentID        uuid.UUID        `json:"student_id"`
	StudentFirstName *string          `json:"student_first_name,omitempty"`
	StudentLastName  *string          `json:"student_last_name,omitempty"`
	OverallGrade     *decimal.Decimal `json:"overall_grade"`
	Subjects         []SubjectResult  `json:"subjects"`
}

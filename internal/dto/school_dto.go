package dto

import (
	"time"

	"schulhof.app/gradebook/internal/model"
)

const dateLayout = "2006-01-02"

type SubjectRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type SubjectResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewSubjectResponse(s *model.Subject) SubjectResponse {
	return SubjectResponse{ID: s.ID.String(), Name: s.Name}
}

type PaginatedSubjectResponse struct {
	Data []SubjectResponse `json:"data"`
	Meta PaginationMeta    `json:"meta"`
}

type SemesterRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
}

type SemesterResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func NewSemesterResponse(s *model.Semester) SemesterResponse {
	return SemesterResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		StartDate: s.StartDate.Format(dateLayout),
		EndDate:   s.EndDate.Format(dateLayout),
	}
}

type PaginatedSemesterResponse struct {
	Data []SemesterResponse `json:"data"`
	Meta PaginationMeta     `json:"meta"`
}

type SemesterSubjectRequest struct {
	SemesterID string `json:"semester_id" binding:"required,uuid"`
	SubjectID  string `json:"subject_id" binding:"required,uuid"`
}

type SemesterSubjectResponse struct {
	ID         string `json:"id"`
	SemesterID string `json:"semester_id"`
	SubjectID  string `json:"subject_id"`
}

func NewSemesterSubjectResponse(s *model.SemesterSubject) SemesterSubjectResponse {
	return SemesterSubjectResponse{
		ID:         s.ID.String(),
		SemesterID: s.SemesterID.String(),
		SubjectID:  s.SubjectID.String(),
	}
}

type PaginatedSemesterSubjectResponse struct {
	Data []SemesterSubjectResponse `json:"data"`
	Meta PaginationMeta            `json:"meta"`
}

type SchoolClassRequest struct {
	SemesterSubjectID string `json:"semester_subject_id" binding:"required,uuid"`
}

type SchoolClassResponse struct {
	ID                string `json:"id"`
	SemesterSubjectID string `json:"semester_subject_id"`
}

func NewSchoolClassResponse(s *model.SchoolClass) SchoolClassResponse {
	return SchoolClassResponse{
		ID:                s.ID.String(),
		SemesterSubjectID: s.SemesterSubjectID.String(),
	}
}

type PaginatedSchoolClassResponse struct {
	Data []SchoolClassResponse `json:"data"`
	Meta PaginationMeta        `json:"meta"`
}

type TestRequest struct {
	Name              string  `json:"name" binding:"required,max=100"`
	Date              string  `json:"date" binding:"required,datetime=2006-01-02"`
	Comment           *string `json:"comment" binding:"omitempty,max=1000"`
	SemesterSubjectID string  `json:"semester_subject_id" binding:"required,uuid"`
	SchoolClassID     string  `json:"school_class_id" binding:"required,uuid"`
}

type TestResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Date              string  `json:"date"`
	Comment           *string `json:"comment,omitempty"`
	SemesterSubjectID string  `json:"semester_subject_id"`
	SchoolClassID     string  `json:"school_class_id"`
}

func NewTestResponse(t *model.Test) TestResponse {
	return TestResponse{
		ID:                t.ID.String(),
		Name:              t.Name,
		Date:              t.Date.Format(dateLayout),
		Comment:           t.Comment,
		SemesterSubjectID: t.SemesterSubjectID.String(),
		SchoolClassID:     t.SchoolClassID.String(),
	}
}

type PaginatedTestResponse struct {
	Data []TestResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// ParseDate parses a request date in the wire layout.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

package dto

import (
	"time"

	"schulhof.app/gradebook/internal/model"
)

type StudentRequest struct {
	FirstName     string  `json:"first_name" binding:"required,max=100"`
	LastName      string  `json:"last_name" binding:"required,max=100"`
	Email         *string `json:"email" binding:"omitempty,email"`
	DateOfBirth   *string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	StudentNumber *string `json:"student_number" binding:"omitempty,max=50"`
	Active        *bool   `json:"active"`
}

type StudentResponse struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         *string   `json:"email,omitempty"`
	DateOfBirth   *string   `json:"date_of_birth,omitempty"`
	StudentNumber *string   `json:"student_number,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewStudentResponse(s *model.Student) StudentResponse {
	resp := StudentResponse{
		ID:            s.ID.String(),
		FirstName:     s.FirstName,
		LastName:      s.LastName,
		Email:         s.Email,
		StudentNumber: s.StudentNumber,
		Active:        s.Active,
		CreatedAt:     s.CreatedAt,
	}
	if s.DateOfBirth != nil {
		dob := s.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &dob
	}
	return resp
}

type PaginatedStudentResponse struct {
	Data []StudentResponse `json:"data"`
	Meta PaginationMeta    `json:"meta"`
}

package service

import (
	"context"

	"github.com/google/uuid"

	"schulhof.app/gradebook/internal/dto"
	"schulhof.app/gradebook/internal/model"
	"schulhof.app/gradebook/internal/repository"
	"schulhof.app/gradebook/pkg/apperror"
)

type StudentService interface {
	GetAll(ctx context.Context, page dto.PageRequest) (*dto.PaginatedStudentResponse, error)
	GetActive(ctx context.Context, page dto.PageRequest) (*dto.PaginatedStudentResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.StudentResponse, error)
	Create(ctx context.Context, req dto.StudentRequest) (*dto.StudentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.StudentRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type studentService struct {
	repo repository.StudentRepository
}

func NewStudentService(repo repository.StudentRepository) StudentService {
	return &studentService{repo: repo}
}

func (s *studentService) GetAll(ctx context.Context, page dto.PageRequest) (*dto.PaginatedStudentResponse, error) {
	students, total, err := s.repo.FindAll(ctx, page.Sort, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}
	return paginateStudents(students, page, total), nil
}

func (s *studentService) GetActive(ctx context.Context, page dto.PageRequest) (*dto.PaginatedStudentResponse, error) {
	students, total, err := s.repo.FindActive(ctx, page.Sort, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}
	return paginateStudents(students, page, total), nil
}

func (s *studentService) GetByID(ctx context.Context, id uuid.UUID) (*dto.StudentResponse, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "student")
	}
	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

func (s *studentService) Create(ctx context.Context, req dto.StudentRequest) (*dto.StudentResponse, error) {
	student := &model.Student{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		StudentNumber: req.StudentNumber,
		Active:        true,
	}
	if err := applyDateOfBirth(student, req.DateOfBirth); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, student); err != nil {
		return nil, storeErr(err, "student")
	}
	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

func (s *studentService) Update(ctx context.Context, id uuid.UUID, req dto.StudentRequest) (*dto.StudentResponse, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "student")
	}

	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.Email = req.Email
	student.StudentNumber = req.StudentNumber
	student.DateOfBirth = nil
	if err := applyDateOfBirth(student, req.DateOfBirth); err != nil {
		return nil, err
	}
	if req.Active != nil {
		student.Active = *req.Active
	}

	if err := s.repo.Save(ctx, student); err != nil {
		return nil, storeErr(err, "student")
	}
	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

func (s *studentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return storeErr(err, "student")
	}
	return storeErr(s.repo.Delete(ctx, id), "student")
}

func applyDateOfBirth(student *model.Student, raw *string) error {
	if raw == nil {
		return nil
	}
	dob, err := dto.ParseDate(*raw)
	if err != nil {
		return apperror.Validation("date of birth must use the format 2006-01-02")
	}
	student.DateOfBirth = &dob
	return nil
}

func paginateStudents(students []*model.Student, page dto.PageRequest, total int64) *dto.PaginatedStudentResponse {
	responses := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, dto.NewStudentResponse(student))
	}
	return &dto.PaginatedStudentResponse{
		Data: responses,
		Meta: dto.NewPaginationMeta(page.Page, page.Limit, total),
	}
}

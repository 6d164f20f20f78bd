package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"schulhof.app/gradebook/internal/dto"
	"schulhof.app/gradebook/internal/model"
	"schulhof.app/gradebook/internal/repository"
	"schulhof.app/gradebook/pkg/apperror"
)

type SemesterService interface {
	GetAll(ctx context.Context, page dto.PageRequest) (*dto.PaginatedSemesterResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SemesterResponse, error)
	Create(ctx context.Context, req dto.SemesterRequest) (*dto.SemesterResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SemesterRequest) (*dto.SemesterResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type semesterService struct {
	repo repository.SemesterRepository
}

func NewSemesterService(repo repository.SemesterRepository) SemesterService {
	return &semesterService{repo: repo}
}

func (s *semesterService) GetAll(ctx context.Context, page dto.PageRequest) (*dto.PaginatedSemesterResponse, error) {
	semesters, total, err := s.repo.FindAll(ctx, page.Sort, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SemesterResponse, 0, len(semesters))
	for _, semester := range semesters {
		responses = append(responses, dto.NewSemesterResponse(semester))
	}
	return &dto.PaginatedSemesterResponse{
		Data: responses,
		Meta: dto.NewPaginationMeta(page.Page, page.Limit, total),
	}, nil
}

func (s *semesterService) GetByID(ctx context.Context, id uuid.UUID) (*dto.SemesterResponse, error) {
	semester, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "semester")
	}
	resp := dto.NewSemesterResponse(semester)
	return &resp, nil
}

func (s *semesterService) Create(ctx context.Context, req dto.SemesterRequest) (*dto.SemesterResponse, error) {
	start, end, err := parseRange(req)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.AlreadyExists(fmt.Sprintf("semester with name '%s' already exists", req.Name))
	}

	semester := &model.Semester{Name: req.Name, StartDate: start, EndDate: end}
	if err := s.repo.Create(ctx, semester); err != nil {
		return nil, storeErr(err, "semester")
	}
	resp := dto.NewSemesterResponse(semester)
	return &resp, nil
}

func (s *semesterService) Update(ctx context.Context, id uuid.UUID, req dto.SemesterRequest) (*dto.SemesterResponse, error) {
	start, end, err := parseRange(req)
	if err != nil {
		return nil, err
	}

	semester, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "semester")
	}

	semester.Name = req.Name
	semester.StartDate = start
	semester.EndDate = end
	if err := s.repo.Save(ctx, semester); err != nil {
		return nil, storeErr(err, "semester")
	}
	resp := dto.NewSemesterResponse(semester)
	return &resp, nil
}

func (s *semesterService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return storeErr(err, "semester")
	}
	return storeErr(s.repo.Delete(ctx, id), "semester")
}

func parseRange(req dto.SemesterRequest) (time.Time, time.Time, error) {
	start, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.Validation("start date must use the format 2006-01-02")
	}
	end, err := dto.ParseDate(req.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.Validation("end date must use the format 2006-01-02")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, apperror.Validation("start date must not be after end date")
	}
	return start, end, nil
}

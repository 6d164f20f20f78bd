package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"schulhof.app/gradebook/internal/dto"
	"schulhof.app/gradebook/internal/model"
	"schulhof.app/gradebook/internal/repository"
	"schulhof.app/gradebook/pkg/apperror"
)

type SubjectService interface {
	GetAll(ctx context.Context, page dto.PageRequest) (*dto.PaginatedSubjectResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SubjectResponse, error)
	Create(ctx context.Context, req dto.SubjectRequest) (*dto.SubjectResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SubjectRequest) (*dto.SubjectResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type subjectService struct {
	repo repository.SubjectRepository
}

func NewSubjectService(repo repository.SubjectRepository) SubjectService {
	return &subjectService{repo: repo}
}

func (s *subjectService) GetAll(ctx context.Context, page dto.PageRequest) (*dto.PaginatedSubjectResponse, error) {
	subjects, total, err := s.repo.FindAll(ctx, page.Sort, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SubjectResponse, 0, len(subjects))
	for _, subject := range subjects {
		responses = append(responses, dto.NewSubjectResponse(subject))
	}
	return &dto.PaginatedSubjectResponse{
		Data: responses,
		Meta: dto.NewPaginationMeta(page.Page, page.Limit, total),
	}, nil
}

func (s *subjectService) GetByID(ctx context.Context, id uuid.UUID) (*dto.SubjectResponse, error) {
	subject, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "subject")
	}
	resp := dto.NewSubjectResponse(subject)
	return &resp, nil
}

func (s *subjectService) Create(ctx context.Context, req dto.SubjectRequest) (*dto.SubjectResponse, error) {
	exists, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.AlreadyExists(fmt.Sprintf("subject with name '%s' already exists", req.Name))
	}

	subject := &model.Subject{Name: req.Name}
	if err := s.repo.Create(ctx, subject); err != nil {
		return nil, storeErr(err, "subject")
	}
	resp := dto.NewSubjectResponse(subject)
	return &resp, nil
}

func (s *subjectService) Update(ctx context.Context, id uuid.UUID, req dto.SubjectRequest) (*dto.SubjectResponse, error) {
	subject, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "subject")
	}

	subject.Name = req.Name
	if err := s.repo.Save(ctx, subject); err != nil {
		return nil, storeErr(err, "subject")
	}
	resp := dto.NewSubjectResponse(subject)
	return &resp, nil
}

func (s *subjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return storeErr(err, "subject")
	}
	return storeErr(s.repo.Delete(ctx, id), "subject")
}

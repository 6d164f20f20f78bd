package service

import (
	"context"

	"github.com/google/uuid"

	"schulhof.app/gradebook/internal/dto"
	"schulhof.app/gradebook/internal/model"
	"schulhof.app/gradebook/internal/repository"
	"schulhof.app/gradebook/pkg/apperror"
)

type SchoolClassService interface {
	GetAll(ctx context.Context, page dto.PageRequest) (*dto.PaginatedSchoolClassResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SchoolClassResponse, error)
	Create(ctx context.Context, req dto.SchoolClassRequest) (*dto.SchoolClassResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SchoolClassRequest) (*dto.SchoolClassResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type schoolClassService struct {
	repo             repository.SchoolClassRepository
	semesterSubjects repository.SemesterSubjectRepository
}

func NewSchoolClassService(repo repository.SchoolClassRepository, semesterSubjects repository.SemesterSubjectRepository) SchoolClassService {
	return &schoolClassService{repo: repo, semesterSubjects: semesterSubjects}
}

func (s *schoolClassService) GetAll(ctx context.Context, page dto.PageRequest) (*dto.PaginatedSchoolClassResponse, error) {
	classes, total, err := s.repo.FindAll(ctx, page.Sort, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SchoolClassResponse, 0, len(classes))
	for _, schoolClass := range classes {
		responses = append(responses, dto.NewSchoolClassResponse(schoolClass))
	}
	return &dto.PaginatedSchoolClassResponse{
		Data: responses,
		Meta: dto.NewPaginationMeta(page.Page, page.Limit, total),
	}, nil
}

func (s *schoolClassService) GetByID(ctx context.Context, id uuid.UUID) (*dto.SchoolClassResponse, error) {
	schoolClass, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "class")
	}
	resp := dto.NewSchoolClassResponse(schoolClass)
	return &resp, nil
}

func (s *schoolClassService) Create(ctx context.Context, req dto.SchoolClassRequest) (*dto.SchoolClassResponse, error) {
	semesterSubjectID, err := s.resolveSemesterSubject(ctx, req.SemesterSubjectID)
	if err != nil {
		return nil, err
	}

	schoolClass := &model.SchoolClass{SemesterSubjectID: semesterSubjectID}
	if err := s.repo.Create(ctx, schoolClass); err != nil {
		return nil, storeErr(err, "class")
	}
	resp := dto.NewSchoolClassResponse(schoolClass)
	return &resp, nil
}

func (s *schoolClassService) Update(ctx context.Context, id uuid.UUID, req dto.SchoolClassRequest) (*dto.SchoolClassResponse, error) {
	semesterSubjectID, err := s.resolveSemesterSubject(ctx, req.SemesterSubjectID)
	if err != nil {
		return nil, err
	}

	schoolClass, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "class")
	}

	schoolClass.SemesterSubjectID = semesterSubjectID
	if err := s.repo.Save(ctx, schoolClass); err != nil {
		return nil, storeErr(err, "class")
	}
	resp := dto.NewSchoolClassResponse(schoolClass)
	return &resp, nil
}

func (s *schoolClassService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return storeErr(err, "class")
	}
	return storeErr(s.repo.Delete(ctx, id), "class")
}

func (s *schoolClassService) resolveSemesterSubject(ctx context.Context, raw string) (uuid.UUID, error) {
	semesterSubjectID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.Validation("semester subject id must be a valid UUID")
	}
	if _, err := s.semesterSubjects.FindByID(ctx, semesterSubjectID); err != nil {
		return uuid.Nil, storeErr(err, "semester subject")
	}
	return semesterSubjectID, nil
}

package service

import (
	"context"

	"github.com/google/uuid"

	"schulhof.app/gradebook/internal/dto"
	"schulhof.app/gradebook/internal/model"
	"schulhof.app/gradebook/internal/repository"
	"schulhof.app/gradebook/pkg/apperror"
)

type SemesterSubjectService interface {
	GetAll(ctx context.Context, page dto.PageRequest) (*dto.PaginatedSemesterSubjectResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SemesterSubjectResponse, error)
	Create(ctx context.Context, req dto.SemesterSubjectRequest) (*dto.SemesterSubjectResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SemesterSubjectRequest) (*dto.SemesterSubjectResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type semesterSubjectService struct {
	repo      repository.SemesterSubjectRepository
	semesters repository.SemesterRepository
	subjects  repository.SubjectRepository
}

func NewSemesterSubjectService(
	repo repository.SemesterSubjectRepository,
	semesters repository.SemesterRepository,
	subjects repository.SubjectRepository,
) SemesterSubjectService {
	return &semesterSubjectService{repo: repo, semesters: semesters, subjects: subjects}
}

func (s *semesterSubjectService) GetAll(ctx context.Context, page dto.PageRequest) (*dto.PaginatedSemesterSubjectResponse, error) {
	semesterSubjects, total, err := s.repo.FindAll(ctx, page.Sort, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SemesterSubjectResponse, 0, len(semesterSubjects))
	for _, semesterSubject := range semesterSubjects {
		responses = append(responses, dto.NewSemesterSubjectResponse(semesterSubject))
	}
	return &dto.PaginatedSemesterSubjectResponse{
		Data: responses,
		Meta: dto.NewPaginationMeta(page.Page, page.Limit, total),
	}, nil
}

func (s *semesterSubjectService) GetByID(ctx context.Context, id uuid.UUID) (*dto.SemesterSubjectResponse, error) {
	semesterSubject, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "semester subject")
	}
	resp := dto.NewSemesterSubjectResponse(semesterSubject)
	return &resp, nil
}

func (s *semesterSubjectService) Create(ctx context.Context, req dto.SemesterSubjectRequest) (*dto.SemesterSubjectResponse, error) {
	semesterID, subjectID, err := s.resolvePair(ctx, req)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByPair(ctx, semesterID, subjectID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.AlreadyExists("semester subject already exists for this semester and subject")
	}

	semesterSubject := &model.SemesterSubject{SemesterID: semesterID, SubjectID: subjectID}
	if err := s.repo.Create(ctx, semesterSubject); err != nil {
		return nil, storeErr(err, "semester subject")
	}
	resp := dto.NewSemesterSubjectResponse(semesterSubject)
	return &resp, nil
}

func (s *semesterSubjectService) Update(ctx context.Context, id uuid.UUID, req dto.SemesterSubjectRequest) (*dto.SemesterSubjectResponse, error) {
	semesterID, subjectID, err := s.resolvePair(ctx, req)
	if err != nil {
		return nil, err
	}

	semesterSubject, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "semester subject")
	}

	semesterSubject.SemesterID = semesterID
	semesterSubject.SubjectID = subjectID
	if err := s.repo.Save(ctx, semesterSubject); err != nil {
		return nil, storeErr(err, "semester subject")
	}
	resp := dto.NewSemesterSubjectResponse(semesterSubject)
	return &resp, nil
}

func (s *semesterSubjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return storeErr(err, "semester subject")
	}
	return storeErr(s.repo.Delete(ctx, id), "semester subject")
}

func (s *semesterSubjectService) resolvePair(ctx context.Context, req dto.SemesterSubjectRequest) (uuid.UUID, uuid.UUID, error) {
	semesterID, err := uuid.Parse(req.SemesterID)
	if err != nil {
		return uuid.Nil, uuid.Nil, apperror.Validation("semester id must be a valid UUID")
	}
	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		return uuid.Nil, uuid.Nil, apperror.Validation("subject id must be a valid UUID")
	}

	if _, err := s.semesters.FindByID(ctx, semesterID); err != nil {
		return uuid.Nil, uuid.Nil, storeErr(err, "semester")
	}
	if _, err := s.subjects.FindByID(ctx, subjectID); err != nil {
		return uuid.Nil, uuid.Nil, storeErr(err, "subject")
	}
	return semesterID, subjectID, nil
}

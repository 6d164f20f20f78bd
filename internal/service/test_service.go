package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"schulhof.app/gradebook/internal/dto"
	"schulhof.app/gradebook/internal/model"
	"schulhof.app/gradebook/internal/repository"
	"schulhof.app/gradebook/pkg/apperror"
)

type TestService interface {
	GetAll(ctx context.Context, page dto.PageRequest) (*dto.PaginatedTestResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.TestResponse, error)
	Create(ctx context.Context, req dto.TestRequest) (*dto.TestResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.TestRequest) (*dto.TestResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type testService struct {
	repo             repository.TestRepository
	semesterSubjects repository.SemesterSubjectRepository
	semesters        repository.SemesterRepository
	classes          repository.SchoolClassRepository
}

func NewTestService(
	repo repository.TestRepository,
	semesterSubjects repository.SemesterSubjectRepository,
	semesters repository.SemesterRepository,
	classes repository.SchoolClassRepository,
) TestService {
	return &testService{repo: repo, semesterSubjects: semesterSubjects, semesters: semesters, classes: classes}
}

func (s *testService) GetAll(ctx context.Context, page dto.PageRequest) (*dto.PaginatedTestResponse, error) {
	tests, total, err := s.repo.FindAll(ctx, page.Sort, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TestResponse, 0, len(tests))
	for _, test := range tests {
		responses = append(responses, dto.NewTestResponse(test))
	}
	return &dto.PaginatedTestResponse{
		Data: responses,
		Meta: dto.NewPaginationMeta(page.Page, page.Limit, total),
	}, nil
}

func (s *testService) GetByID(ctx context.Context, id uuid.UUID) (*dto.TestResponse, error) {
	test, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "test")
	}
	resp := dto.NewTestResponse(test)
	return &resp, nil
}

func (s *testService) Create(ctx context.Context, req dto.TestRequest) (*dto.TestResponse, error) {
	fields, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	test := &model.Test{
		Name:              req.Name,
		Date:              fields.date,
		Comment:           req.Comment,
		SemesterSubjectID: fields.semesterSubjectID,
		SchoolClassID:     fields.schoolClassID,
	}
	if err := s.repo.Create(ctx, test); err != nil {
		return nil, storeErr(err, "test")
	}
	resp := dto.NewTestResponse(test)
	return &resp, nil
}

func (s *testService) Update(ctx context.Context, id uuid.UUID, req dto.TestRequest) (*dto.TestResponse, error) {
	fields, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	test, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "test")
	}

	test.Name = req.Name
	test.Date = fields.date
	test.Comment = req.Comment
	test.SemesterSubjectID = fields.semesterSubjectID
	test.SchoolClassID = fields.schoolClassID
	if err := s.repo.Save(ctx, test); err != nil {
		return nil, storeErr(err, "test")
	}
	resp := dto.NewTestResponse(test)
	return &resp, nil
}

func (s *testService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return storeErr(err, "test")
	}
	return storeErr(s.repo.Delete(ctx, id), "test")
}

type testFields struct {
	date              time.Time
	semesterSubjectID uuid.UUID
	schoolClassID     uuid.UUID
}

func (s *testService) resolve(ctx context.Context, req dto.TestRequest) (*testFields, error) {
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, apperror.Validation("date must use the format 2006-01-02")
	}

	semesterSubjectID, err := uuid.Parse(req.SemesterSubjectID)
	if err != nil {
		return nil, apperror.Validation("semester subject id must be a valid UUID")
	}
	schoolClassID, err := uuid.Parse(req.SchoolClassID)
	if err != nil {
		return nil, apperror.Validation("school class id must be a valid UUID")
	}

	semesterSubject, err := s.semesterSubjects.FindByID(ctx, semesterSubjectID)
	if err != nil {
		return nil, storeErr(err, "semester subject")
	}
	schoolClass, err := s.classes.FindByID(ctx, schoolClassID)
	if err != nil {
		return nil, storeErr(err, "class")
	}
	if schoolClass.SemesterSubjectID != semesterSubject.ID {
		return nil, apperror.Validation("class does not belong to the given semester subject")
	}

	semester, err := s.semesters.FindByID(ctx, semesterSubject.SemesterID)
	if err != nil {
		return nil, storeErr(err, "semester")
	}
	if date.Before(semester.StartDate) || date.After(semester.EndDate) {
		return nil, apperror.Validation("test date must fall within the semester range")
	}

	return &testFields{date: date, semesterSubjectID: semesterSubjectID, schoolClassID: schoolClassID}, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"schulhof.app/gradebook/internal/dto"
	"schulhof.app/gradebook/internal/model"
	"schulhof.app/gradebook/internal/repository"
	"schulhof.app/gradebook/pkg/apperror"
)

var (
	gradeValueMin = decimal.NewFromInt(1)
	gradeValueMax = decimal.NewFromInt(6)
)

// Caller identifies the authenticated user for self-scoping decisions.
type Caller struct {
	Username string
	Roles    []string
}

func (c Caller) Elevated() bool {
	return model.HasAnyRole(c.Roles, model.RoleAdmin)
}

type GradeService interface {
	Find(ctx context.Context, caller Caller, filter dto.GradeFilter, page dto.PageRequest) (*dto.PaginatedGradeResponse, error)
	GetByID(ctx context.Context, caller Caller, id uuid.UUID) (*dto.GradeResponse, error)
	Create(ctx context.Context, req dto.GradeRequest) (*dto.GradeResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.GradeRequest) (*dto.GradeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SemesterResults(ctx context.Context, semesterID uuid.UUID, studentID *uuid.UUID) ([]dto.StudentSemesterResult, error)
}

type gradeService struct {
	repo  repository.GradeRepository
	users repository.UserRepository
	tests repository.TestRepository
}

func NewGradeService(repo repository.GradeRepository, users repository.UserRepository, tests repository.TestRepository) GradeService {
	return &gradeService{repo: repo, users: users, tests: tests}
}

// Find lists grades. A caller without the elevated role always sees their
// own grades only; the requested student filter cannot widen that scope.
func (s *gradeService) Find(ctx context.Context, caller Caller, filter dto.GradeFilter, page dto.PageRequest) (*dto.PaginatedGradeResponse, error) {
	query, err := s.buildQuery(ctx, caller, filter)
	if err != nil {
		return nil, err
	}

	grades, total, err := s.repo.Find(ctx, *query, page.Sort, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.GradeResponse, 0, len(grades))
	for _, grade := range grades {
		responses = append(responses, dto.NewGradeResponse(grade))
	}
	return &dto.PaginatedGradeResponse{
		Data: responses,
		Meta: dto.NewPaginationMeta(page.Page, page.Limit, total),
	}, nil
}

// GetByID distinguishes "exists but not yours" (Forbidden) from "does not
// exist" (NotFound) for non-elevated callers.
func (s *gradeService) GetByID(ctx context.Context, caller Caller, id uuid.UUID) (*dto.GradeResponse, error) {
	grade, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "grade")
	}

	if !caller.Elevated() {
		callerID, err := s.callerID(ctx, caller)
		if err != nil {
			return nil, err
		}
		if grade.StudentID != callerID {
			return nil, apperror.ErrForbidden
		}
	}

	resp := dto.NewGradeResponse(grade)
	return &resp, nil
}

func (s *gradeService) Create(ctx context.Context, req dto.GradeRequest) (*dto.GradeResponse, error) {
	fields, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	grade := &model.Grade{
		Value:     req.Value,
		Weight:    req.Weight,
		Comment:   req.Comment,
		StudentID: fields.studentID,
		TestID:    fields.testID,
	}
	if err := s.repo.Create(ctx, grade); err != nil {
		return nil, storeErr(err, "grade")
	}
	resp := dto.NewGradeResponse(grade)
	return &resp, nil
}

func (s *gradeService) Update(ctx context.Context, id uuid.UUID, req dto.GradeRequest) (*dto.GradeResponse, error) {
	fields, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	grade, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "grade")
	}

	grade.Value = req.Value
	grade.Weight = req.Weight
	grade.Comment = req.Comment
	grade.StudentID = fields.studentID
	grade.TestID = fields.testID
	if err := s.repo.Save(ctx, grade); err != nil {
		return nil, storeErr(err, "grade")
	}
	resp := dto.NewGradeResponse(grade)
	return &resp, nil
}

func (s *gradeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return storeErr(err, "grade")
	}
	return storeErr(s.repo.Delete(ctx, id), "grade")
}

func (s *gradeService) SemesterResults(ctx context.Context, semesterID uuid.UUID, studentID *uuid.UUID) ([]dto.StudentSemesterResult, error) {
	rows, err := s.repo.SemesterGradeRows(ctx, semesterID, studentID)
	if err != nil {
		return nil, err
	}
	return AggregateSemesterRows(rows), nil
}

func (s *gradeService) buildQuery(ctx context.Context, caller Caller, filter dto.GradeFilter) (*repository.GradeQuery, error) {
	query := &repository.GradeQuery{Search: filter.Search}

	if caller.Elevated() {
		if filter.StudentID != "" {
			studentID, err := uuid.Parse(filter.StudentID)
			if err != nil {
				return nil, apperror.Validation("student id must be a valid UUID")
			}
			query.StudentID = &studentID
		}
	} else {
		callerID, err := s.callerID(ctx, caller)
		if err != nil {
			return nil, err
		}
		query.StudentID = &callerID
	}

	if filter.TestID != "" {
		testID, err := uuid.Parse(filter.TestID)
		if err != nil {
			return nil, apperror.Validation("test id must be a valid UUID")
		}
		query.TestID = &testID
	}
	if filter.ValueMin != "" {
		min, err := decimal.NewFromString(filter.ValueMin)
		if err != nil {
			return nil, apperror.Validation("value min must be numeric")
		}
		query.ValueMin = &min
	}
	if filter.ValueMax != "" {
		max, err := decimal.NewFromString(filter.ValueMax)
		if err != nil {
			return nil, apperror.Validation("value max must be numeric")
		}
		query.ValueMax = &max
	}
	return query, nil
}

func (s *gradeService) callerID(ctx context.Context, caller Caller) (uuid.UUID, error) {
	user, err := s.users.FindByUsername(ctx, caller.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, apperror.NotFound(fmt.Sprintf("user not found: %s", caller.Username))
		}
		return uuid.Nil, err
	}
	return user.ID, nil
}

type gradeFields struct {
	studentID uuid.UUID
	testID    *uuid.UUID
}

func (s *gradeService) resolve(ctx context.Context, req dto.GradeRequest) (*gradeFields, error) {
	if req.Value.LessThan(gradeValueMin) || req.Value.GreaterThan(gradeValueMax) {
		return nil, apperror.Validation("value must be between 1 and 6")
	}
	if req.Weight.IsNegative() {
		return nil, apperror.Validation("weight must not be negative")
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return nil, apperror.Validation("student id must be a valid UUID")
	}
	if _, err := s.users.FindByID(ctx, studentID); err != nil {
		return nil, storeErr(err, "student")
	}

	fields := &gradeFields{studentID: studentID}
	if req.TestID != nil && *req.TestID != "" {
		testID, err := uuid.Parse(*req.TestID)
		if err != nil {
			return nil, apperror.Validation("test id must be a valid UUID")
		}
		if _, err := s.tests.FindByID(ctx, testID); err != nil {
			return nil, storeErr(err, "test")
		}
		fields.testID = &testID
	}
	return fields, nil
}

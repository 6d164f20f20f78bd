package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schulhof.app/gradebook/internal/dto"
	"schulhof.app/gradebook/internal/model"
	"schulhof.app/gradebook/internal/repository"
	"schulhof.app/gradebook/pkg/apperror"
)

type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (*model.User, error)
	GetAll(ctx context.Context, page dto.PageRequest) (*dto.PaginatedUserResponse, error)
	GetActive(ctx context.Context, page dto.PageRequest) (*dto.PaginatedUserResponse, error)
	ChangePassword(ctx context.Context, username, newPassword string) error
	SetActive(ctx context.Context, username string, active bool) (*model.User, error)
	GrantRole(ctx context.Context, username, role string) (*model.User, error)
	RevokeRole(ctx context.Context, username, role string) (*model.User, error)
	Delete(ctx context.Context, username string) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*model.User, error) {
	exists, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.AlreadyExists(fmt.Sprintf("user with username '%s' already exists", req.Username))
	}

	roles := model.NormalizeRoles(req.Roles)
	if len(roles) == 0 {
		roles = []string{string(model.RoleUser)}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Roles:        roles,
		Active:       true,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
	}
	if req.DateOfBirth != nil {
		dob, err := parseDate(*req.DateOfBirth)
		if err != nil {
			return nil, apperror.Validation("date of birth must use the format 2006-01-02")
		}
		user.DateOfBirth = &dob
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, storeErr(err, "user")
	}
	return user, nil
}

func (s *userService) GetAll(ctx context.Context, page dto.PageRequest) (*dto.PaginatedUserResponse, error) {
	users, total, err := s.repo.FindAll(ctx, page.Sort, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}
	return paginateUsers(users, page, total), nil
}

func (s *userService) GetActive(ctx context.Context, page dto.PageRequest) (*dto.PaginatedUserResponse, error) {
	users, total, err := s.repo.FindActive(ctx, page.Sort, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}
	return paginateUsers(users, page, total), nil
}

func (s *userService) ChangePassword(ctx context.Context, username, newPassword string) error {
	user, err := s.findByUsername(ctx, username)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return s.repo.Save(ctx, user)
}

func (s *userService) SetActive(ctx context.Context, username string, active bool) (*model.User, error) {
	user, err := s.findByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	user.Active = active
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GrantRole adds the normalized role to the user's role set. Granting a role
// the user already holds is a no-op, not an error.
func (s *userService) GrantRole(ctx context.Context, username, role string) (*model.User, error) {
	normalized := model.NormalizeRole(role)
	if normalized == "" {
		return nil, apperror.Validation("role must not be blank")
	}

	user, err := s.findByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if model.HasAnyRole(user.Roles, normalized) {
		return user, nil
	}

	user.Roles = append(user.Roles, string(normalized))
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RevokeRole removes the normalized role; revoking an absent role is a no-op.
func (s *userService) RevokeRole(ctx context.Context, username, role string) (*model.User, error) {
	normalized := model.NormalizeRole(role)
	if normalized == "" {
		return nil, apperror.Validation("role must not be blank")
	}

	user, err := s.findByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	kept := user.Roles[:0]
	for _, have := range user.Roles {
		if model.Role(have) != normalized {
			kept = append(kept, have)
		}
	}
	if len(kept) == len(user.Roles) {
		return user, nil
	}

	user.Roles = kept
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, username string) error {
	user, err := s.findByUsername(ctx, username)
	if err != nil {
		return err
	}
	return storeErr(s.repo.Delete(ctx, user.ID), "user")
}

func (s *userService) findByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(fmt.Sprintf("user not found: %s", username))
		}
		return nil, err
	}
	return user, nil
}

func paginateUsers(users []*model.User, page dto.PageRequest, total int64) *dto.PaginatedUserResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewUserResponse(user))
	}
	return &dto.PaginatedUserResponse{
		Data: responses,
		Meta: dto.NewPaginationMeta(page.Page, page.Limit, total),
	}
}

func parseDate(value string) (time.Time, error) {
	return dto.ParseDate(value)
}

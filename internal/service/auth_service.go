package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schulhof.app/gradebook/internal/dto"
	"schulhof.app/gradebook/internal/model"
	"schulhof.app/gradebook/internal/repository"
	"schulhof.app/gradebook/internal/token"
	"schulhof.app/gradebook/pkg/apperror"
)

const tokenType = "Bearer"

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
}

type authService struct {
	repo     repository.UserRepository
	users    UserService
	tokens   *token.Provider
	throttle LoginThrottle
}

// NewAuthService builds the authentication service. The throttle is
// optional; a nil throttle disables login lockouts.
func NewAuthService(repo repository.UserRepository, users UserService, tokens *token.Provider, throttle LoginThrottle) AuthService {
	return &authService{
		repo:     repo,
		users:    users,
		tokens:   tokens,
		throttle: throttle,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if s.throttle != nil {
		blocked, err := s.throttle.Blocked(ctx, req.Username)
		if err != nil {
			// A broken throttle must not lock everyone out
			log.Printf("login throttle unavailable: %v", err)
		} else if blocked {
			return nil, apperror.New(0, "too many failed login attempts, try again later", apperror.ErrUnauthorized)
		}
	}

	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.failLogin(ctx, req.Username)
		}
		return nil, err
	}

	if !user.Active {
		return nil, s.failLogin(ctx, req.Username)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, s.failLogin(ctx, req.Username)
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, req.Username); err != nil {
			log.Printf("failed to reset login throttle: %v", err)
		}
	}

	return s.issue(user)
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	user, err := s.users.Create(ctx, dto.CreateUserRequest{
		Username:    req.Username,
		Password:    req.Password,
		Roles:       []string{string(model.RoleUser)},
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

func (s *authService) failLogin(ctx context.Context, username string) error {
	if s.throttle != nil {
		if err := s.throttle.RecordFailure(ctx, username); err != nil {
			log.Printf("failed to record login failure: %v", err)
		}
	}
	return apperror.New(0, "invalid username or password", apperror.ErrUnauthorized)
}

func (s *authService) issue(user *model.User) (*dto.AuthResponse, error) {
	signed, err := s.tokens.Issue(user.Username, user.Roles)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &dto.AuthResponse{Token: signed, TokenType: tokenType}, nil
}

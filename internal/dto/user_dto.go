package dto

import (
	"time"

	"schulhof.app/gradebook/internal/model"
)

type CreateUserRequest struct {
	Username    string   `json:"username" binding:"required,min=3,max=50"`
	Password    string   `json:"password" binding:"required,min=8,max=72"`
	Roles       []string `json:"roles"`
	FirstName   *string  `json:"first_name" binding:"omitempty,max=100"`
	LastName    *string  `json:"last_name" binding:"omitempty,max=100"`
	Email       *string  `json:"email" binding:"omitempty,email"`
	DateOfBirth *string  `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
}

type ChangePasswordRequest struct {
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type RoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Roles       []string  `json:"roles"`
	Active      bool      `json:"active"`
	FirstName   *string   `json:"first_name,omitempty"`
	LastName    *string   `json:"last_name,omitempty"`
	Email       *string   `json:"email,omitempty"`
	DateOfBirth *string   `json:"date_of_birth,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewUserResponse(u *model.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Roles:     u.Roles,
		Active:    u.Active,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
	if u.DateOfBirth != nil {
		dob := u.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &dob
	}
	return resp
}

type PaginatedUserResponse struct {
	Data []UserResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Role is a canonical, prefixed role name. Authorization compares roles by
// exact string match, so every role must be normalized before storage.
type Role string

const (
	RoleAdmin Role = "ROLE_ADMIN"
	RoleUser  Role = "ROLE_USER"

	rolePrefix = "ROLE_"
)

// NormalizeRole trims the input and prepends the canonical prefix unless it
// is already present. Blank input stays blank; callers reject it before
// storage.
func NormalizeRole(input string) Role {
	r := strings.TrimSpace(input)
	if r == "" || strings.HasPrefix(r, rolePrefix) {
		return Role(r)
	}
	return Role(rolePrefix + r)
}

// NormalizeRoles normalizes every entry, dropping blanks and duplicates
// while preserving first-seen order.
func NormalizeRoles(inputs []string) []string {
	seen := make(map[Role]struct{}, len(inputs))
	out := make([]string, 0, len(inputs))
	for _, input := range inputs {
		role := NormalizeRole(input)
		if role == "" {
			continue
		}
		if _, ok := seen[role]; ok {
			continue
		}
		seen[role] = struct{}{}
		out = append(out, string(role))
	}
	return out
}

// HasAnyRole reports whether the role set contains at least one of the
// required roles.
func HasAnyRole(roles []string, required ...Role) bool {
	for _, have := range roles {
		for _, want := range required {
			if Role(have) == want {
				return true
			}
		}
	}
	return false
}

type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string         `gorm:"size:50;uniqueIndex;not null" json:"username"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	Roles        pq.StringArray `gorm:"type:text[];not null" json:"roles"`
	Active       bool           `gorm:"not null;default:true" json:"active"`
	FirstName    *string        `gorm:"size:100" json:"first_name,omitempty"`
	LastName     *string        `gorm:"size:100" json:"last_name,omitempty"`
	Email        *string        `gorm:"size:100" json:"email,omitempty"`
	DateOfBirth  *time.Time     `json:"date_of_birth,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Student is the administrative roster record. Grades reference user
// accounts, not this roster.
type Student struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName     string     `gorm:"size:100;not null" json:"first_name"`
	LastName      string     `gorm:"size:100;not null" json:"last_name"`
	Email         *string    `gorm:"size:100" json:"email,omitempty"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	StudentNumber *string    `gorm:"size:50" json:"student_number,omitempty"`
	Active        bool       `gorm:"not null;default:true" json:"active"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

package bootstrap

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"

	"schulhof.app/gradebook/internal/dto"
	"schulhof.app/gradebook/internal/model"
	"schulhof.app/gradebook/internal/repository"
	"schulhof.app/gradebook/internal/service"
)

const adminUsername = "admin"

// EnsureAdminUser provisions a single administrative account when the user
// store is empty. The generated password is disclosed once via process
// output and only its hash is stored.
func EnsureAdminUser(ctx context.Context, users repository.UserRepository, userService service.UserService) error {
	count, err := users.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	password, err := generatePassword()
	if err != nil {
		return fmt.Errorf("failed to generate admin password: %w", err)
	}

	user, err := userService.Create(ctx, dto.CreateUserRequest{
		Username: adminUsername,
		Password: password,
		Roles:    []string{string(model.RoleAdmin)},
	})
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Println("=================================================")
	log.Println("    DEFAULT ADMIN ACCOUNT CREATED")
	log.Println("=================================================")
	log.Printf("    Username: %s", user.Username)
	log.Printf("    Password: %s", password)
	log.Println("=================================================")
	log.Println("    PLEASE CHANGE THIS PASSWORD IMMEDIATELY!")
	log.Println("=================================================")

	return nil
}

func generatePassword() (string, error) {
	// 12 bytes = 16 base64 characters
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

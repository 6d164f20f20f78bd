package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"schulhof.app/gradebook/internal/dto"
	"schulhof.app/gradebook/pkg/apperror"
)

func TestUserServiceCreateDefaultsRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Username: "alice",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, []string{"ROLE_USER"}, []string(user.Roles))
	assert.True(t, user.Active)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct-horse")))
}

func TestUserServiceCreateNormalizesRoles(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Username: "bob",
		Password: "correct-horse",
		Roles:    []string{"ADMIN", "ROLE_ADMIN", "USER"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ROLE_ADMIN", "ROLE_USER"}, []string(user.Roles))
}

func TestUserServiceCreateDuplicate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateUserRequest{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto.CreateUserRequest{Username: "alice", Password: "other-password"})
	assert.ErrorIs(t, err, apperror.ErrAlreadyExists)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUserServiceGrantRoleIdempotent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateUserRequest{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	user, err := svc.GrantRole(ctx, "alice", "ADMIN")
	require.NoError(t, err)
	assert.Equal(t, []string{"ROLE_USER", "ROLE_ADMIN"}, []string(user.Roles))
	savesAfterFirst := repo.saves

	user, err = svc.GrantRole(ctx, "alice", "ROLE_ADMIN")
	require.NoError(t, err)
	assert.Equal(t, []string{"ROLE_USER", "ROLE_ADMIN"}, []string(user.Roles))
	assert.Equal(t, savesAfterFirst, repo.saves, "granting a held role must not write")
}

func TestUserServiceRevokeRoleIdempotent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateUserRequest{
		Username: "alice",
		Password: "correct-horse",
		Roles:    []string{"USER", "ADMIN"},
	})
	require.NoError(t, err)

	user, err := svc.RevokeRole(ctx, "alice", "ADMIN")
	require.NoError(t, err)
	assert.Equal(t, []string{"ROLE_USER"}, []string(user.Roles))

	user, err = svc.RevokeRole(ctx, "alice", "ADMIN")
	require.NoError(t, err)
	assert.Equal(t, []string{"ROLE_USER"}, []string(user.Roles))
}

func TestUserServiceBlankRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateUserRequest{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.GrantRole(ctx, "alice", "   ")
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = svc.RevokeRole(ctx, "alice", "")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestUserServiceUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.GrantRole(ctx, "ghost", "ADMIN")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	err = svc.ChangePassword(ctx, "ghost", "new-password")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	err = svc.Delete(ctx, "ghost")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUserServiceSetActive(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateUserRequest{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	user, err := svc.SetActive(ctx, "alice", false)
	require.NoError(t, err)
	assert.False(t, user.Active)

	user, err = svc.SetActive(ctx, "alice", true)
	require.NoError(t, err)
	assert.True(t, user.Active)
}

func TestUserServiceChangePassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateUserRequest{Username: "alice", Password: "old-password"})
	require.NoError(t, err)

	require.NoError(t, svc.ChangePassword(ctx, "alice", "new-password"))

	user, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("new-password")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("old-password")))
}

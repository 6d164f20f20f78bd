package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schulhof.app/gradebook/internal/dto"
	"schulhof.app/gradebook/internal/token"
	"schulhof.app/gradebook/pkg/apperror"
)

func newAuthFixture(t *testing.T, throttle LoginThrottle) (AuthService, *fakeUserRepo, *token.Provider) {
	t.Helper()
	repo := newFakeUserRepo()
	users := NewUserService(repo)
	tokens := token.NewProvider("test-secret", time.Hour)
	return NewAuthService(repo, users, tokens, throttle), repo, tokens
}

func TestAuthServiceLogin(t *testing.T) {
	svc, _, tokens := newAuthFixture(t, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)

	claims, err := tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, []string{"ROLE_USER"}, claims.Roles)
}

func TestAuthServiceLoginBadPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestAuthServiceLoginUnknownUser(t *testing.T) {
	svc, _, _ := newAuthFixture(t, nil)

	// Unknown users get the same error as a bad password
	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "whatever"})
	require.ErrorIs(t, err, apperror.ErrUnauthorized)
	assert.Equal(t, "invalid username or password", err.Error())
}

func TestAuthServiceLoginInactiveUser(t *testing.T) {
	svc, repo, _ := newAuthFixture(t, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	user, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	user.Active = false
	require.NoError(t, repo.Save(ctx, user))

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "correct-horse"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestAuthServiceLoginThrottled(t *testing.T) {
	throttle := newFakeThrottle(3)
	svc, _, _ := newAuthFixture(t, throttle)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = svc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "wrong"})
		require.ErrorIs(t, err, apperror.ErrUnauthorized)
	}

	// Even the correct password is rejected while blocked
	_, err = svc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "correct-horse"})
	require.ErrorIs(t, err, apperror.ErrUnauthorized)
	assert.Contains(t, err.Error(), "too many failed login attempts")
}

func TestAuthServiceLoginResetsThrottle(t *testing.T) {
	throttle := newFakeThrottle(3)
	svc, _, _ := newAuthFixture(t, throttle)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "wrong"})
	require.Error(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Zero(t, throttle.failures["alice"])
}

func TestAuthServiceRegisterDuplicate(t *testing.T) {
	svc, _, _ := newAuthFixture(t, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, dto.RegisterRequest{Username: "alice", Password: "other-password"})
	assert.ErrorIs(t, err, apperror.ErrAlreadyExists)
}

package bootstrap

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"

	"schulhof.app/gradebook/internal/model"
	"schulhof.app/gradebook/internal/service"
)

type memUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) Save(ctx context.Context, user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *memUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)
	return err == nil, nil
}

func (r *memUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *memUserRepo) FindAll(ctx context.Context, sort string, offset, limit int) ([]*model.User, int64, error) {
	return nil, int64(len(r.users)), nil
}

func (r *memUserRepo) FindActive(ctx context.Context, sort string, offset, limit int) ([]*model.User, int64, error) {
	return nil, int64(len(r.users)), nil
}

func (r *memUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func TestEnsureAdminUserProvisionsOnEmptyStore(t *testing.T) {
	repo := newMemUserRepo()
	users := service.NewUserService(repo)
	ctx := context.Background()

	require.NoError(t, EnsureAdminUser(ctx, repo, users))

	admin, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, admin.Active)
	assert.True(t, model.HasAnyRole(admin.Roles, model.RoleAdmin))
	assert.NotEmpty(t, admin.PasswordHash)
}

func TestEnsureAdminUserSkipsNonEmptyStore(t *testing.T) {
	repo := newMemUserRepo()
	users := service.NewUserService(repo)
	ctx := context.Background()

	existing := &model.User{Username: "alice", Roles: []string{"ROLE_USER"}, Active: true}
	require.NoError(t, repo.Create(ctx, existing))

	require.NoError(t, EnsureAdminUser(ctx, repo, users))

	_, err := repo.FindByUsername(ctx, "admin")
	assert.Error(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestGeneratePassword(t *testing.T) {
	password, err := generatePassword()
	require.NoError(t, err)
	assert.Len(t, password, 16)

	other, err := generatePassword()
	require.NoError(t, err)
	assert.NotEqual(t, password, other)
}

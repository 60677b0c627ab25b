package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thecodingpm/calories-counterr/internal/apperrors"
	"github.com/Thecodingpm/calories-counterr/internal/domain"
	"github.com/Thecodingpm/calories-counterr/internal/storage"
)

const testJWTSecret = "test-secret"

func newAuthFixture() (*AuthService, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	return NewAuthService(store, testJWTSecret), store
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture()

	res, err := svc.RegisterUser(ctx, "alice@example.com", "secret")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "alice@example.com", res.User.Email)
	assert.EqualValues(t, 2000, res.User.DailyCalorieGoal)
	assert.NotEmpty(t, res.User.ID)
	assert.NotEmpty(t, res.Token)
	assert.NotEqual(t, "secret", res.User.PasswordHash)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, store := newAuthFixture()

	first, err := svc.RegisterUser(ctx, "alice@example.com", "secret")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := svc.RegisterUser(ctx, "alice@example.com", "other")
	require.NoError(t, err)
	assert.Nil(t, second)

	users, err := storage.LoadList[domain.User](ctx, store, storage.CollectionUsers)
	require.NoError(t, err)
	count := 0
	for _, u := range users {
		if u.Email == "alice@example.com" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture()

	reg, err := svc.RegisterUser(ctx, "bob@example.com", "hunter2")
	require.NoError(t, err)
	require.NotNil(t, reg)

	res, err := svc.LoginUser(ctx, "bob@example.com", "hunter2")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, reg.User.ID, res.User.ID)
	assert.NotEmpty(t, res.Token)
}

func TestLoginUserUnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture()

	res, err := svc.LoginUser(ctx, "nobody@example.com", "whatever")
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestLoginUserWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture()

	_, err := svc.RegisterUser(ctx, "bob@example.com", "hunter2")
	require.NoError(t, err)

	res, err := svc.LoginUser(ctx, "bob@example.com", "wrong")
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestUpdateGoalPersistsToUsersCollection(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture()

	reg, err := svc.RegisterUser(ctx, "carol@example.com", "pw")
	require.NoError(t, err)
	require.NotNil(t, reg)

	updated, err := svc.UpdateGoal(ctx, reg.User.ID, 1750)
	require.NoError(t, err)
	assert.EqualValues(t, 1750, updated.DailyCalorieGoal)

	// A fresh login must see the new goal.
	res, err := svc.LoginUser(ctx, "carol@example.com", "pw")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.EqualValues(t, 1750, res.User.DailyCalorieGoal)
}

func TestUpdateGoalUnknownUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture()

	_, err := svc.UpdateGoal(ctx, "no-such-user", 1500)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

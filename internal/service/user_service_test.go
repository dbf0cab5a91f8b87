package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"multipoles-backend/internal/model"
	"multipoles-backend/internal/repository"
	"multipoles-backend/internal/security"
	"multipoles-backend/internal/service"
)

func TestCreateUser_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	userService := service.NewUserService(userRepo)

	userRepo.On("FindByEmail", mock.Anything, "new@multipoles.fr").Return(nil, repository.ErrNotFound)

	stored := &model.User{Email: "new@multipoles.fr", Role: model.RoleAdmin}

	var saved *model.User
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.User)
		}).
		Return(stored, nil)

	created, err := userService.Create(context.Background(), service.CreateUserInput{
		Email:    "new@multipoles.fr",
		Password: "s3cretpass",
		Role:     model.RoleAdmin,
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, model.RoleAdmin, saved.Role)
	assert.NotEqual(t, "s3cretpass", saved.PasswordHash)
	assert.True(t, security.CompareSecret("s3cretpass", saved.PasswordHash))

	assert.Equal(t, "new@multipoles.fr", created.Email)
}

func TestCreateUser_DefaultsToSuperAdmin(t *testing.T) {
	userRepo := new(MockUserRepository)
	userService := service.NewUserService(userRepo)

	userRepo.On("FindByEmail", mock.Anything, "owner@multipoles.fr").Return(nil, repository.ErrNotFound)

	var saved *model.User
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.User)
		}).
		Return(&model.User{Email: "owner@multipoles.fr", Role: model.RoleSuperAdmin}, nil)

	_, err := userService.Create(context.Background(), service.CreateUserInput{
		Email:    "owner@multipoles.fr",
		Password: "s3cretpass",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, model.RoleSuperAdmin, saved.Role)
}

func TestCreateUser_EmailTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	userService := service.NewUserService(userRepo)

	userRepo.On("FindByEmail", mock.Anything, "taken@multipoles.fr").Return(testUser("whatever"), nil)

	_, err := userService.Create(context.Background(), service.CreateUserInput{
		Email:    "taken@multipoles.fr",
		Password: "s3cretpass",
	})

	assert.ErrorIs(t, err, service.ErrEmailTaken)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateUser_RehashesPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	userService := service.NewUserService(userRepo)

	existing := testUser("oldpassword")
	userRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)

	var updated *model.User
	userRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*model.User)
		}).
		Return(nil)

	newPassword := "brand-new-pass"
	_, err := userService.Update(context.Background(), existing.ID, service.UpdateUserInput{
		Password: &newPassword,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, security.CompareSecret(newPassword, updated.PasswordHash))
	assert.False(t, security.CompareSecret("oldpassword", updated.PasswordHash))
}

func TestUpdateUser_EmailTakenByOther(t *testing.T) {
	userRepo := new(MockUserRepository)
	userService := service.NewUserService(userRepo)

	existing := testUser("oldpassword")
	userRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)

	other := testUser("whatever")
	other.Email = "other@multipoles.fr"
	userRepo.On("FindByEmail", mock.Anything, "other@multipoles.fr").Return(other, nil)

	newEmail := "other@multipoles.fr"
	_, err := userService.Update(context.Background(), existing.ID, service.UpdateUserInput{
		Email: &newEmail,
	})

	assert.ErrorIs(t, err, service.ErrEmailTaken)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateUser_NotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	userService := service.NewUserService(userRepo)

	userRepo.On("FindByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	_, err := userService.Update(context.Background(), "missing", service.UpdateUserInput{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListUsers_ReturnsPublicViews(t *testing.T) {
	userRepo := new(MockUserRepository)
	userService := service.NewUserService(userRepo)

	u := testUser("s3cretpass")
	userRepo.On("List", mock.Anything, "", "").Return([]model.User{*u}, nil)

	views, err := userService.List(context.Background(), "", "")

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, u.Email, views[0].Email)
}

func TestListUsers_RepositoryError(t *testing.T) {
	userRepo := new(MockUserRepository)
	userService := service.NewUserService(userRepo)

	userRepo.On("List", mock.Anything, "", "").Return(nil, errors.New("db down"))

	_, err := userService.List(context.Background(), "", "")
	assert.Error(t, err)
}

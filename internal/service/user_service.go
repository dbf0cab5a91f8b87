package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"multipoles-backend/internal/model"
	"multipoles-backend/internal/ports"
	"multipoles-backend/internal/repository"
	"multipoles-backend/internal/security"
	"multipoles-backend/internal/util"
)

// UserService is the admin-facing user directory. Only super_admin
// reaches these operations; the role gate lives in the router.
type UserService struct {
	userRepository ports.UserRepository
}

func NewUserService(userRepository ports.UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

type CreateUserInput struct {
	Email     string
	Password  string
	FirstName *string
	LastName  *string
	Role      string
}

type UpdateUserInput struct {
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	Role      *string
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*model.PublicUser, error) {
	if _, err := s.userRepository.FindByEmail(ctx, input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, util.LogError("[UserService] email uniqueness check failed", err)
	}

	hash, err := security.HashSecret(input.Password)
	if err != nil {
		return nil, util.LogError("[UserService] password hashing failed", err)
	}

	role := input.Role
	if role == "" {
		role = model.RoleSuperAdmin
	}

	user := &model.User{
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         role,
	}
	user.ID = uuid.New().String()

	created, err := s.userRepository.Create(ctx, user)
	if err != nil {
		return nil, util.LogError("[UserService] creating user failed", err)
	}

	return created.PublicView(), nil
}

func (s *UserService) Get(ctx context.Context, id string) (*model.PublicUser, error) {
	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.PublicView(), nil
}

func (s *UserService) List(ctx context.Context, search, role string) ([]model.PublicUser, error) {
	users, err := s.userRepository.List(ctx, search, role)
	if err != nil {
		return nil, err
	}

	views := make([]model.PublicUser, 0, len(users))
	for i := range users {
		views = append(views, *users[i].PublicView())
	}
	return views, nil
}

func (s *UserService) Update(ctx context.Context, id string, input UpdateUserInput) (*model.PublicUser, error) {
	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		if _, err := s.userRepository.FindByEmail(ctx, *input.Email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, util.LogError("[UserService] email uniqueness check failed", err)
		}
		user.Email = *input.Email
	}

	if input.Password != nil {
		hash, err := security.HashSecret(*input.Password)
		if err != nil {
			return nil, util.LogError("[UserService] password hashing failed", err)
		}
		user.PasswordHash = hash
	}

	if input.FirstName != nil {
		user.FirstName = input.FirstName
	}
	if input.LastName != nil {
		user.LastName = input.LastName
	}
	if input.Role != nil {
		user.Role = *input.Role
	}

	if err := s.userRepository.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.userRepository.Delete(ctx, id)
}

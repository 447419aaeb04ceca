package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"etuition/internal/errdefs"
	"etuition/internal/model"
)

type UserService struct {
	userRepository UserRepository
}

func NewUserService(userRepository UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

// UpsertUser is the register-or-fetch entry point: repeating a registration
// with a known email returns the stored record and creates nothing.
func (s *UserService) UpsertUser(ctx context.Context, input *model.UpsertUserInput) (*model.UpsertUserResult, error) {
	if input.Email == "" {
		return nil, errdefs.ErrValidation
	}

	existing, err := s.userRepository.GetUserByEmail(ctx, input.Email)
	if err == nil {
		return &model.UpsertUserResult{User: existing, IsNewUser: false}, nil
	}
	if !errors.Is(err, errdefs.ErrNotFound) {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	// The register form sends "name", the identity provider "displayName".
	displayName := input.Name
	if displayName == nil {
		displayName = input.DisplayName
	}

	role := model.RoleStudent
	if input.Role != nil && input.Role.IsValid() {
		role = *input.Role
	}

	user, err := s.userRepository.CreateUser(ctx, &model.RepositoryCreateUserInput{
		Id:          id,
		Email:       input.Email,
		DisplayName: displayName,
		PhotoURL:    input.PhotoURL,
		Phone:       input.Phone,
		FirebaseUID: input.FirebaseUID,
		Role:        role,
	})
	if err != nil {
		return nil, err
	}
	return &model.UpsertUserResult{User: user, IsNewUser: true}, nil
}

// GetRole never fails on a missing record: callers can ask about any email
// and get the default role back.
func (s *UserService) GetRole(ctx context.Context, email string) (model.Role, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if errors.Is(err, errdefs.ErrNotFound) {
		return model.RoleDefault, nil
	}
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

func (s *UserService) GetProfile(ctx context.Context, email string) (*model.User, error) {
	if email == "" {
		return nil, errdefs.ErrValidation
	}
	return s.userRepository.GetUserByEmail(ctx, email)
}

func (s *UserService) UpdateProfile(ctx context.Context, email string, input *model.UpdateProfileInput) (*model.User, error) {
	if email == "" {
		return nil, errdefs.ErrValidation
	}
	return s.userRepository.UpdateProfile(ctx, email, input)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.userRepository.ListUsers(ctx)
}

func (s *UserService) AdminUpdateUser(ctx context.Context, id uuid.UUID, input *model.AdminUpdateUserInput) (*model.User, error) {
	if input.Role != nil && !input.Role.IsValid() {
		return nil, errdefs.ErrValidation
	}
	return s.userRepository.AdminUpdateUser(ctx, id, input)
}

func (s *UserService) AdminSetRole(ctx context.Context, id uuid.UUID, role model.Role) (*model.User, error) {
	if !role.IsValid() {
		return nil, errdefs.ErrValidation
	}
	return s.userRepository.SetRole(ctx, id, role)
}

// DeleteUser removes the account and returns the record as it stood, so
// callers can drop state keyed by the user's email.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.userRepository.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return nil, err
	}
	return user, nil
}

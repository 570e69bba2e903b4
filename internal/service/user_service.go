package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/edupulse/internal/auth"
	"github.com/spec-kit/edupulse/internal/domain"
	"github.com/spec-kit/edupulse/internal/events"
	"github.com/spec-kit/edupulse/internal/repository"
	apperrors "github.com/spec-kit/edupulse/pkg/util"
)

// UserService implements the admin/faculty user management operations.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, dispatcher events.Dispatcher, bcryptCost int) *UserService {
	return &UserService{users: users, dispatcher: dispatcher, bcryptCost: bcryptCost}
}

// CreateUserInput carries the fields an admin supplies for a new account.
type CreateUserInput struct {
	Email      string
	FullName   string
	Password   string
	Role       domain.Role
	Department *string
	RollNumber *string
}

// List returns users visible to the caller. Faculty only ever see students;
// admins see everyone. An optional department narrows either view.
func (s *UserService) List(ctx context.Context, caller *domain.User, department string) ([]*domain.User, error) {
	filter := repository.UserFilter{}
	if caller.Role == domain.RoleFaculty {
		student := domain.RoleStudent
		filter.Role = &student
	}
	if department != "" {
		filter.Department = &department
	}
	return s.users.List(ctx, filter)
}

// Create registers a new account with a freshly hashed password.
func (s *UserService) Create(ctx context.Context, actor *domain.User, input CreateUserInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !input.Role.Valid() {
		return nil, apperrors.NewValidationError("invalid role", map[string]any{"role": input.Role})
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewValidationError("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:          email,
		FullName:       input.FullName,
		HashedPassword: hash,
		Role:           input.Role,
		Department:     input.Department,
		RollNumber:     input.RollNumber,
		IsActive:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.NewActivityEvent(
			events.EventUserCreated, actor.ID, "USER_CREATE",
			fmt.Sprintf("Created user %s", email), clientIP(ctx)))
	}
	return user, nil
}

// Delete removes an account by ID.
func (s *UserService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.NewActivityEvent(
			events.EventUserDeleted, actor.ID, "USER_DELETE",
			fmt.Sprintf("Deleted user %s", id), clientIP(ctx)))
	}
	return nil
}

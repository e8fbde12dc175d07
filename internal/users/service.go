package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lcervantes/bistro-backend/pkg/db"
	"github.com/lcervantes/bistro-backend/pkg/enums"
	pkgerrors "github.com/lcervantes/bistro-backend/pkg/errors"
)

// Service defines user-level operations beyond repository reads.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterResult, error)
	List(ctx context.Context) ([]UserDTO, error)
	GrantAdmin(ctx context.Context, id uuid.UUID) error
	IsAdmin(ctx context.Context, callerEmail, targetEmail string) (bool, error)
}

type service struct {
	repo *Repository
}

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Email string
	Name  string
}

// RegisterResult reports the outcome of an idempotent registration. Created
// is false when the email was already on file; the existing record is
// returned untouched.
type RegisterResult struct {
	User    *UserDTO
	Created bool
}

// NewService builds a users service with the required dependencies.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return &RegisterResult{User: FromModel(existing), Created: false}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user record")
	}

	created, err := s.repo.Create(ctx, CreateUserDTO{Email: email, Name: strings.TrimSpace(input.Name)})
	if err != nil {
		// Two concurrent registrations can race past the read; the loser
		// resolves to the winner's record.
		if db.IsUniqueViolation(err, "") {
			existing, readErr := s.repo.FindByEmail(ctx, email)
			if readErr != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, readErr, "reload user after conflict")
			}
			return &RegisterResult{User: FromModel(existing), Created: false}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
	}

	return &RegisterResult{User: FromModel(created), Created: true}, nil
}

func (s *service) List(ctx context.Context) ([]UserDTO, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list users")
	}
	return FromModels(records), nil
}

func (s *service) GrantAdmin(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}

	affected, err := s.repo.SetRole(ctx, id, enums.UserRoleAdmin)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update user role")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	return nil
}

// IsAdmin reports whether targetEmail holds the admin role. A caller may only
// ask about their own email; any mismatch is rejected outright.
func (s *service) IsAdmin(ctx context.Context, callerEmail, targetEmail string) (bool, error) {
	caller := strings.TrimSpace(strings.ToLower(callerEmail))
	target := strings.TrimSpace(strings.ToLower(targetEmail))
	if target == "" {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if caller == "" || caller != target {
		return false, pkgerrors.New(pkgerrors.CodeForbidden, "forbidden access")
	}

	user, err := s.repo.FindByEmail(ctx, target)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user record")
	}
	return user.Role == enums.UserRoleAdmin, nil
}

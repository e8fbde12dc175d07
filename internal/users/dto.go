package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/lcervantes/bistro-backend/pkg/db/models"
	"github.com/lcervantes/bistro-backend/pkg/enums"
)

// UserDTO is the transport shape for user records.
type UserDTO struct {
	ID        uuid.UUID      `json:"id"`
	Email     string         `json:"email"`
	Name      string         `json:"name"`
	Role      enums.UserRole `json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Email string
	Name  string
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromModels(records []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(records))
	for i := range records {
		out = append(out, *FromModel(&records[i]))
	}
	return out
}

func (c CreateUserDTO) ToModel() *models.User {
	return &models.User{
		ID:    uuid.New(),
		Email: c.Email,
		Name:  c.Name,
		Role:  enums.UserRoleMember,
	}
}

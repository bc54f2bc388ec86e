// Package userrepo persists the staff user aggregate.
package userrepo

import (
	"time"

	"github.com/google/uuid"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/core/domain/model/staff"
)

// UserDTO is the database row for a staff user. Email carries a uniqueness
// constraint so duplicates surface as conflicts at insert time. Role is
// stored as its wire string ("admin", "logistica").
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	Phone        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *staff.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		Name:         u.Name(),
		Email:        u.Email(),
		Phone:        u.Phone(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		CreatedAt:    u.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*staff.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := principal.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return staff.RestoreUser(id, dto.Name, dto.Email, dto.Phone, dto.PasswordHash, role, dto.CreatedAt)
}

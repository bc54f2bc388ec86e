// Package customerrepo persists the customer aggregate.
package customerrepo

import (
	"time"

	"github.com/google/uuid"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
)

// CustomerDTO is the database row for a customer. Email carries a uniqueness
// constraint so duplicates surface as conflicts at insert time.
type CustomerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Phone        string
	Status       string
	FirstLogin   bool
	CreatedAt    time.Time
}

// TableName overrides GORM's default naming to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:           c.ID().Bytes(),
		Name:         c.Name(),
		Email:        c.Email(),
		PasswordHash: c.PasswordHash(),
		Phone:        c.Phone(),
		Status:       c.Status(),
		FirstLogin:   c.FirstLogin(),
		CreatedAt:    c.CreatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.PasswordHash,
		dto.Phone, dto.Status, dto.FirstLogin, dto.CreatedAt)
}

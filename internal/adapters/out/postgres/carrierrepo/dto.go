// Package carrierrepo persists the carrier aggregate.
package carrierrepo

import (
	"time"

	"github.com/google/uuid"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
)

// CarrierDTO is the database row for a carrier.
type CarrierDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Contact   string
	State     string
	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "carriers".
func (CarrierDTO) TableName() string {
	return "carriers"
}

func fromDomain(c *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:        c.ID().Bytes(),
		Name:      c.Name(),
		Contact:   c.Contact(),
		State:     c.State(),
		CreatedAt: c.CreatedAt(),
	}
}

func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(id, dto.Name, dto.Contact, dto.State, dto.CreatedAt)
}

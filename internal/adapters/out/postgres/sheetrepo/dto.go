// Package sheetrepo persists technical sheets and their customer assignments.
package sheetrepo

import (
	"time"

	"github.com/google/uuid"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/sheet"
)

// SheetDTO is the database row for a technical sheet.
type SheetDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	URL        string    `gorm:"column:url"`
	UploadedBy uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time
}

// TableName overrides GORM's default naming to use "sheets".
func (SheetDTO) TableName() string {
	return "sheets"
}

// AssignmentDTO is the link row between a sheet and a customer. The composite
// primary key makes a repeated assignment a conflict rather than a duplicate.
type AssignmentDTO struct {
	CustomerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	SheetID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	AssignedAt time.Time
}

// TableName overrides GORM's default naming to use "customer_sheets".
func (AssignmentDTO) TableName() string {
	return "customer_sheets"
}

func fromDomain(s *sheet.Sheet) SheetDTO {
	return SheetDTO{
		ID:         s.ID().Bytes(),
		Name:       s.Name(),
		URL:        s.URL(),
		UploadedBy: s.UploadedBy().Bytes(),
		CreatedAt:  s.CreatedAt(),
	}
}

func toDomain(dto SheetDTO) (*sheet.Sheet, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	uploadedBy, err := kernel.UUIDFromBytes(dto.UploadedBy[:])
	if err != nil {
		return nil, err
	}

	return sheet.RestoreSheet(id, dto.Name, dto.URL, uploadedBy, dto.CreatedAt)
}

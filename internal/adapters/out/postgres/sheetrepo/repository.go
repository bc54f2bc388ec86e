package sheetrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/sheet"
	"logistics/internal/pkg/errs"
)

// GormSheetRepository implements ports.SheetRepository using GORM.
type GormSheetRepository struct {
	db *gorm.DB
}

// NewGormSheetRepository creates a new GORM sheet repository.
func NewGormSheetRepository(db *gorm.DB) *GormSheetRepository {
	return &GormSheetRepository{db: db}
}

// Add saves a new sheet to the database.
func (r *GormSheetRepository) Add(ctx context.Context, aggregate *sheet.Sheet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing sheet to the database.
func (r *GormSheetRepository) Update(ctx context.Context, aggregate *sheet.Sheet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SheetDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("sheetID", aggregate.ID())
	}

	return nil
}

// Get retrieves a sheet by ID.
func (r *GormSheetRepository) Get(ctx context.Context, id kernel.UUID) (*sheet.Sheet, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SheetDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sheetID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the sheet and its assignment rows as one operation. Callers
// run it inside a unit of work so both go or neither does.
func (r *GormSheetRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&AssignmentDTO{}, "sheet_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&SheetDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("sheetID", id)
	}

	return nil
}

// Assign links a sheet to a customer.
func (r *GormSheetRepository) Assign(ctx context.Context, assignment sheet.Assignment) error {
	if err := assignment.CustomerID.Validate(); err != nil {
		return err
	}
	if err := assignment.SheetID.Validate(); err != nil {
		return err
	}

	dto := AssignmentDTO{
		CustomerID: assignment.CustomerID.Bytes(),
		SheetID:    assignment.SheetID.Bytes(),
		AssignedAt: assignment.AssignedAt,
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("sheetID", assignment.SheetID, err)
		}
		return err
	}

	return nil
}

// Unassign removes the link between a sheet and a customer.
func (r *GormSheetRepository) Unassign(ctx context.Context, customerID, sheetID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if err := sheetID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Delete(&AssignmentDTO{}, "customer_id = ? AND sheet_id = ?", customerID.Bytes(), sheetID.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("sheetID", sheetID)
	}

	return nil
}

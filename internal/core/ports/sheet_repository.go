package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/sheet"
)

// SheetRepository is the write-side persistence contract for technical sheets
// and their customer assignments.
type SheetRepository interface {
	Add(ctx context.Context, aggregate *sheet.Sheet) error
	Update(ctx context.Context, aggregate *sheet.Sheet) error
	Get(ctx context.Context, id kernel.UUID) (*sheet.Sheet, error)
	Delete(ctx context.Context, id kernel.UUID) error

	// Assign links a sheet to a customer. Returns a ConflictError when the
	// pair is already assigned.
	Assign(ctx context.Context, assignment sheet.Assignment) error

	// Unassign removes the link between a sheet and a customer. Returns an
	// ObjectNotFoundError when no such assignment exists.
	Unassign(ctx context.Context, customerID, sheetID kernel.UUID) error
}

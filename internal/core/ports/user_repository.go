package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/staff"
)

// UserRepository is the write-side persistence contract for staff users.
type UserRepository interface {
	// Add persists a new staff user. Returns a ConflictError when the email
	// already exists.
	Add(ctx context.Context, aggregate *staff.User) error

	Update(ctx context.Context, aggregate *staff.User) error
	Get(ctx context.Context, id kernel.UUID) (*staff.User, error)
	GetByEmail(ctx context.Context, email string) (*staff.User, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

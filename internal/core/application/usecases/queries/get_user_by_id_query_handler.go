package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"logistics/internal/pkg/errs"
)

// GetUserByIDQueryHandler reads one staff user from the database.
type GetUserByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetUserByIDQueryHandler creates a handler over the read connection.
func NewGetUserByIDQueryHandler(db *gorm.DB) GetUserByIDQueryHandler {
	return GetUserByIDQueryHandler{db: db}
}

// Handle returns the staff user with the requested identifier.
func (h GetUserByIDQueryHandler) Handle(
	ctx context.Context, query GetUserByIDQuery,
) (GetAllUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllUsersQueryResponse{}, err
	}
	if !query.Actor().CanManageStaff() {
		return GetAllUsersQueryResponse{}, errs.NewForbiddenError("get user")
	}

	row := h.db.WithContext(ctx).Raw(
		`SELECT id, name, email, phone, role, created_at
		   FROM users
		  WHERE id = ?`,
		query.UserID().Bytes(),
	).Row()

	var (
		id        uuid.UUID
		name      string
		email     string
		phone     string
		role      string
		createdAt time.Time
	)
	if err := row.Scan(&id, &name, &email, &phone, &role, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetAllUsersQueryResponse{}, errs.NewObjectNotFoundError("userID", query.UserID())
		}
		return GetAllUsersQueryResponse{}, err
	}

	return GetAllUsersQueryResponse{
		ID:        id.String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Role:      role,
		CreatedAt: createdAt,
	}, nil
}

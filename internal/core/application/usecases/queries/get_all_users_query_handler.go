package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"logistics/internal/pkg/errs"
)

// GetAllUsersQueryHandler reads staff users straight from the database.
type GetAllUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllUsersQueryHandler creates a handler over the read connection.
func NewGetAllUsersQueryHandler(db *gorm.DB) GetAllUsersQueryHandler {
	return GetAllUsersQueryHandler{db: db}
}

// Handle returns all staff users ordered by creation date.
func (h GetAllUsersQueryHandler) Handle(
	ctx context.Context, query GetAllUsersQuery,
) ([]GetAllUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !query.Actor().CanManageStaff() {
		return nil, errs.NewForbiddenError("list users")
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT id, name, email, phone, role, created_at
		   FROM users
		  ORDER BY created_at DESC`,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]GetAllUsersQueryResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			email     string
			phone     string
			role      string
			createdAt time.Time
		)
		if err := rows.Scan(&id, &name, &email, &phone, &role, &createdAt); err != nil {
			return nil, err
		}
		users = append(users, GetAllUsersQueryResponse{
			ID:        id.String(),
			Name:      name,
			Email:     email,
			Phone:     phone,
			Role:      role,
			CreatedAt: createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

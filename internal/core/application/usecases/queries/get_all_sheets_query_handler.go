package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"logistics/internal/pkg/errs"
)

// GetAllSheetsQueryHandler reads technical sheets straight from the database.
type GetAllSheetsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllSheetsQueryHandler creates a handler over the read connection.
func NewGetAllSheetsQueryHandler(db *gorm.DB) GetAllSheetsQueryHandler {
	return GetAllSheetsQueryHandler{db: db}
}

// Handle returns all technical sheets, newest first.
func (h GetAllSheetsQueryHandler) Handle(
	ctx context.Context, query GetAllSheetsQuery,
) ([]GetAllSheetsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !query.Actor().CanUploadSheets() {
		return nil, errs.NewForbiddenError("list sheets")
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT s.id, s.name, s.url, s.uploaded_by, COALESCE(u.name, ''), s.created_at
		   FROM sheets s
		   LEFT JOIN users u ON u.id = s.uploaded_by
		  ORDER BY s.created_at DESC`,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sheets := make([]GetAllSheetsQueryResponse, 0)
	for rows.Next() {
		var (
			id             uuid.UUID
			name           string
			url            string
			uploadedBy     uuid.UUID
			uploadedByName string
			createdAt      time.Time
		)
		if err := rows.Scan(&id, &name, &url, &uploadedBy, &uploadedByName, &createdAt); err != nil {
			return nil, err
		}
		sheets = append(sheets, GetAllSheetsQueryResponse{
			ID:             id.String(),
			Name:           name,
			URL:            url,
			UploadedBy:     uploadedBy.String(),
			UploadedByName: uploadedByName,
			CreatedAt:      createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sheets, nil
}

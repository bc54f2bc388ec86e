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

// GetSheetByIDQueryHandler reads one technical sheet from the database.
type GetSheetByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetSheetByIDQueryHandler creates a handler over the read connection.
func NewGetSheetByIDQueryHandler(db *gorm.DB) GetSheetByIDQueryHandler {
	return GetSheetByIDQueryHandler{db: db}
}

// Handle returns the technical sheet with the requested identifier.
func (h GetSheetByIDQueryHandler) Handle(
	ctx context.Context, query GetSheetByIDQuery,
) (GetAllSheetsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllSheetsQueryResponse{}, err
	}
	if !query.Actor().CanUploadSheets() {
		return GetAllSheetsQueryResponse{}, errs.NewForbiddenError("get sheet")
	}

	row := h.db.WithContext(ctx).Raw(
		`SELECT s.id, s.name, s.url, s.uploaded_by, COALESCE(u.name, ''), s.created_at
		   FROM sheets s
		   LEFT JOIN users u ON u.id = s.uploaded_by
		  WHERE s.id = ?`,
		query.SheetID().Bytes(),
	).Row()

	var (
		id             uuid.UUID
		name           string
		url            string
		uploadedBy     uuid.UUID
		uploadedByName string
		createdAt      time.Time
	)
	if err := row.Scan(&id, &name, &url, &uploadedBy, &uploadedByName, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetAllSheetsQueryResponse{}, errs.NewObjectNotFoundError("sheetID", query.SheetID())
		}
		return GetAllSheetsQueryResponse{}, err
	}

	return GetAllSheetsQueryResponse{
		ID:             id.String(),
		Name:           name,
		URL:            url,
		UploadedBy:     uploadedBy.String(),
		UploadedByName: uploadedByName,
		CreatedAt:      createdAt,
	}, nil
}

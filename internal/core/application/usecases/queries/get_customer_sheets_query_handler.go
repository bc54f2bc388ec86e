package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"logistics/internal/pkg/errs"
)

// GetCustomerSheetsQueryHandler reads one customer's sheet assignments.
type GetCustomerSheetsQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerSheetsQueryHandler creates a handler over the read connection.
func NewGetCustomerSheetsQueryHandler(db *gorm.DB) GetCustomerSheetsQueryHandler {
	return GetCustomerSheetsQueryHandler{db: db}
}

// Handle returns the sheets assigned to the customer, newest first.
func (h GetCustomerSheetsQueryHandler) Handle(
	ctx context.Context, query GetCustomerSheetsQuery,
) ([]CustomerSheetResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !query.Actor().CanActForCustomer(query.CustomerID()) {
		return nil, errs.NewForbiddenError("list customer sheets")
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT s.id, s.name, s.url, cs.assigned_at
		   FROM customer_sheets cs
		   JOIN sheets s ON s.id = cs.sheet_id
		  WHERE cs.customer_id = ?
		  ORDER BY cs.assigned_at DESC`,
		query.CustomerID().Bytes(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sheets := make([]CustomerSheetResponse, 0)
	for rows.Next() {
		var (
			id         uuid.UUID
			name       string
			url        string
			assignedAt time.Time
		)
		if err := rows.Scan(&id, &name, &url, &assignedAt); err != nil {
			return nil, err
		}
		sheets = append(sheets, CustomerSheetResponse{
			ID:         id.String(),
			Name:       name,
			URL:        url,
			AssignedAt: assignedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sheets, nil
}

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

// SheetAssignmentResponse is one customer holding an assignment of the sheet.
type SheetAssignmentResponse struct {
	CustomerID    string    `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	AssignedAt    time.Time `json:"assigned_at"`
}

// GetSheetAssignmentsQueryHandler reads the assignment list of one sheet.
type GetSheetAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetSheetAssignmentsQueryHandler creates a handler over the read connection.
func NewGetSheetAssignmentsQueryHandler(db *gorm.DB) GetSheetAssignmentsQueryHandler {
	return GetSheetAssignmentsQueryHandler{db: db}
}

// Handle returns the customers the sheet is assigned to, oldest assignment
// first. Returns an ObjectNotFoundError when the sheet does not exist.
func (h GetSheetAssignmentsQueryHandler) Handle(
	ctx context.Context, query GetSheetAssignmentsQuery,
) ([]SheetAssignmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !query.Actor().CanUploadSheets() {
		return nil, errs.NewForbiddenError("get sheet assignments")
	}

	var sheetID uuid.UUID
	err := h.db.WithContext(ctx).
		Raw(`SELECT id FROM sheets WHERE id = ?`, query.SheetID().Bytes()).
		Row().Scan(&sheetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("sheetID", query.SheetID())
		}
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT cs.customer_id, c.name, c.email, cs.assigned_at
		   FROM customer_sheets cs
		   JOIN customers c ON c.id = cs.customer_id
		  WHERE cs.sheet_id = ?
		  ORDER BY cs.assigned_at ASC`,
		query.SheetID().Bytes(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]SheetAssignmentResponse, 0)
	for rows.Next() {
		var a SheetAssignmentResponse
		var customerID uuid.UUID

		if err := rows.Scan(&customerID, &a.CustomerName, &a.CustomerEmail, &a.AssignedAt); err != nil {
			return nil, err
		}

		a.CustomerID = customerID.String()
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

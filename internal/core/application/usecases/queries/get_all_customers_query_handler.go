package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"logistics/internal/pkg/errs"
)

// GetAllCustomersQueryHandler assembles the customer read model from three
// statements: customers, their orders, their assigned sheets.
type GetAllCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCustomersQueryHandler creates a handler over the read connection.
func NewGetAllCustomersQueryHandler(db *gorm.DB) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{db: db}
}

// Handle returns all customers with nested orders and assigned sheets.
func (h GetAllCustomersQueryHandler) Handle(
	ctx context.Context, query GetAllCustomersQuery,
) ([]GetAllCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !query.Actor().CanManageCustomers() {
		return nil, errs.NewForbiddenError("list customers")
	}

	customers, index, err := h.readCustomers(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.attachOrders(ctx, customers, index); err != nil {
		return nil, err
	}
	if err := h.attachSheets(ctx, customers, index); err != nil {
		return nil, err
	}

	return customers, nil
}

func (h GetAllCustomersQueryHandler) readCustomers(
	ctx context.Context,
) ([]GetAllCustomersQueryResponse, map[string]int, error) {
	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT id, name, email, phone, status, created_at
		   FROM customers
		  ORDER BY created_at DESC`,
	).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	customers := make([]GetAllCustomersQueryResponse, 0)
	index := make(map[string]int)
	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			email     string
			phone     string
			status    string
			createdAt time.Time
		)
		if err := rows.Scan(&id, &name, &email, &phone, &status, &createdAt); err != nil {
			return nil, nil, err
		}
		customers = append(customers, GetAllCustomersQueryResponse{
			ID:        id.String(),
			Name:      name,
			Email:     email,
			Phone:     phone,
			Status:    status,
			CreatedAt: createdAt,
			Orders:    make([]CustomerOrderResponse, 0),
			Sheets:    make([]CustomerSheetResponse, 0),
		})
		index[id.String()] = len(customers) - 1
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return customers, index, nil
}

func (h GetAllCustomersQueryHandler) attachOrders(
	ctx context.Context, customers []GetAllCustomersQueryResponse, index map[string]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT id, customer_id, tracking_code, description, state, created_at
		   FROM orders
		  ORDER BY created_at DESC`,
	).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id           uuid.UUID
			customerID   uuid.UUID
			trackingCode string
			description  string
			state        string
			createdAt    time.Time
		)
		if err := rows.Scan(&id, &customerID, &trackingCode, &description, &state, &createdAt); err != nil {
			return err
		}
		i, ok := index[customerID.String()]
		if !ok {
			continue
		}
		customers[i].Orders = append(customers[i].Orders, CustomerOrderResponse{
			ID:           id.String(),
			TrackingCode: trackingCode,
			Description:  description,
			State:        state,
			CreatedAt:    createdAt,
		})
	}

	return rows.Err()
}

func (h GetAllCustomersQueryHandler) attachSheets(
	ctx context.Context, customers []GetAllCustomersQueryResponse, index map[string]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT cs.customer_id, s.id, s.name, s.url, cs.assigned_at
		   FROM customer_sheets cs
		   JOIN sheets s ON s.id = cs.sheet_id
		  ORDER BY cs.assigned_at DESC`,
	).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			customerID uuid.UUID
			id         uuid.UUID
			name       string
			url        string
			assignedAt time.Time
		)
		if err := rows.Scan(&customerID, &id, &name, &url, &assignedAt); err != nil {
			return err
		}
		i, ok := index[customerID.String()]
		if !ok {
			continue
		}
		customers[i].Sheets = append(customers[i].Sheets, CustomerSheetResponse{
			ID:         id.String(),
			Name:       name,
			URL:        url,
			AssignedAt: assignedAt,
		})
	}

	return rows.Err()
}

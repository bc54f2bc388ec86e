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

// GetCustomerByIDQueryResponse is the flat customer read model. Password
// hashes never leave the storage layer.
type GetCustomerByIDQueryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// GetCustomerByIDQueryHandler reads one customer record from the database.
type GetCustomerByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerByIDQueryHandler creates a handler over the read connection.
func NewGetCustomerByIDQueryHandler(db *gorm.DB) GetCustomerByIDQueryHandler {
	return GetCustomerByIDQueryHandler{db: db}
}

// Handle returns the customer with the requested identifier.
func (h GetCustomerByIDQueryHandler) Handle(
	ctx context.Context, query GetCustomerByIDQuery,
) (GetCustomerByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerByIDQueryResponse{}, err
	}
	if !query.Actor().CanActForCustomer(query.CustomerID()) {
		return GetCustomerByIDQueryResponse{}, errs.NewForbiddenError("get customer")
	}

	row := h.db.WithContext(ctx).Raw(
		`SELECT id, name, email, phone, status, created_at
		   FROM customers
		  WHERE id = ?`,
		query.CustomerID().Bytes(),
	).Row()

	var r GetCustomerByIDQueryResponse
	var id uuid.UUID

	if err := row.Scan(&id, &r.Name, &r.Email, &r.Phone, &r.Status, &r.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCustomerByIDQueryResponse{}, errs.NewObjectNotFoundError("customerID", query.CustomerID())
		}
		return GetCustomerByIDQueryResponse{}, err
	}

	r.ID = id.String()

	return r, nil
}

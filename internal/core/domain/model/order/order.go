package order

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// DefaultState is the state assigned to a freshly created order.
const DefaultState = "created"

// Order is the aggregate root of the order lifecycle. It references the owning
// customer and the staff user who registered it, and carries the unique,
// immutable tracking code that customers use to identify the shipment.
//
// Invariants:
//   - tracking code is required, immutable, and globally unique (the storage
//     layer enforces uniqueness; the aggregate enforces presence and immutability)
//   - customer and creating user references are required
//   - state is an open status string; any label is accepted and no transition
//     table is enforced
//
// The state field and the order's event log are deliberately independent:
// appending an event never changes state, and updating state never writes an
// event. Callers that want both must do both.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	userID       kernel.UUID
	trackingCode string
	description  string
	state        string
	createdAt    time.Time

	isConstructed bool
}

// NewOrder creates an order in the default state.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: the owning customer (must exist and be active; the
//     application layer checks that before calling)
//   - userID: the staff user registering the order
//   - trackingCode: the customer-visible business key, required
//   - description: free-form description, may be empty
//   - createdAt: server-assigned creation timestamp
func NewOrder(id, customerID, userID kernel.UUID, trackingCode, description string, createdAt time.Time) (*Order, error) {
	o := &Order{
		state:         DefaultState,
		description:   description,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setUserID(userID),
		o.setTrackingCode(trackingCode),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without reapplying
// creation defaults.
func RestoreOrder(id, customerID, userID kernel.UUID, trackingCode, description, state string, createdAt time.Time) (*Order, error) {
	o, err := NewOrder(id, customerID, userID, trackingCode, description, createdAt)
	if err != nil {
		return nil, err
	}

	o.state = state
	return o, nil
}

// Validate ensures the Order was created through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// UserID returns the identifier of the staff user who registered the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// TrackingCode returns the immutable business key of the order.
func (o *Order) TrackingCode() string {
	return o.trackingCode
}

// Description returns the free-form description.
func (o *Order) Description() string {
	return o.description
}

// State returns the current status label.
func (o *Order) State() string {
	return o.state
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ApplyUpdate performs a partial update with coalesce semantics: a nil field
// keeps its prior value. State accepts any non-empty label; there is no
// transition table.
func (o *Order) ApplyUpdate(state, description *string) error {
	if state != nil {
		if strings.TrimSpace(*state) == "" {
			return errs.NewValueIsRequiredError("state")
		}
		o.state = *state
	}
	if description != nil {
		o.description = *description
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	o.userID = id
	return nil
}

func (o *Order) setTrackingCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("trackingCode")
	}
	o.trackingCode = code
	return nil
}

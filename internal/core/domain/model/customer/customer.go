// Package customer contains the customer entity and its credential lifecycle.
package customer

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through the NewCustomer or RestoreCustomer factory methods.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// StatusActive is the status required for a customer to receive new orders.
const StatusActive = "active"

// Customer is an account that owns orders. The password is stored hashed; the
// first_login flag stays set until the customer changes the staff-issued
// initial password.
type Customer struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	phone        string
	status       string
	firstLogin   bool
	createdAt    time.Time

	isConstructed bool
}

// NewCustomer creates an active customer with a pending first login.
func NewCustomer(id kernel.UUID, name, email, passwordHash, phone string, createdAt time.Time) (*Customer, error) {
	c := &Customer{
		phone:         phone,
		status:        StatusActive,
		firstLogin:    true,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(id kernel.UUID, name, email, passwordHash, phone, status string, firstLogin bool, createdAt time.Time) (*Customer, error) {
	c, err := NewCustomer(id, name, email, passwordHash, phone, createdAt)
	if err != nil {
		return nil, err
	}

	c.status = status
	c.firstLogin = firstLogin
	return c, nil
}

// Validate ensures the Customer was created through a factory method.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID { return c.id }

// Name returns the customer's display name.
func (c *Customer) Name() string { return c.name }

// Email returns the customer's unique email address.
func (c *Customer) Email() string { return c.email }

// PasswordHash returns the stored credential hash.
func (c *Customer) PasswordHash() string { return c.passwordHash }

// Phone returns the customer's phone number.
func (c *Customer) Phone() string { return c.phone }

// Status returns the account status label.
func (c *Customer) Status() string { return c.status }

// FirstLogin reports whether the customer still uses the staff-issued password.
func (c *Customer) FirstLogin() bool { return c.firstLogin }

// CreatedAt returns the creation timestamp.
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// IsActive reports whether new orders may reference this customer.
// The check applies at order creation time only; deactivating a customer
// later does not touch existing orders.
func (c *Customer) IsActive() bool {
	return c.status == StatusActive
}

// ChangePassword stores a new credential hash and clears the first-login flag.
func (c *Customer) ChangePassword(newHash string) error {
	if err := c.setPasswordHash(newHash); err != nil {
		return err
	}
	c.firstLogin = false
	return nil
}

// ApplyUpdate performs a partial profile update with coalesce semantics.
func (c *Customer) ApplyUpdate(name, email, phone, status *string) error {
	if name != nil {
		if err := c.setName(*name); err != nil {
			return err
		}
	}
	if email != nil {
		if err := c.setEmail(*email); err != nil {
			return err
		}
	}
	if phone != nil {
		c.phone = *phone
	}
	if status != nil {
		if strings.TrimSpace(*status) == "" {
			return errs.NewValueIsRequiredError("status")
		}
		c.status = *status
	}
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *Customer) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	c.passwordHash = hash
	return nil
}

// Package carrier contains the carrier aggregate: the party physically
// transporting orders, with a mutable availability state.
package carrier

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrCarrierIsNotConstructed is returned when a Carrier instance was not
// created through the NewCarrier or RestoreCarrier factory methods.
var ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier or RestoreCarrier")

// Carrier availability states. The state field is an open string: these are
// the labels the system itself writes, but direct updates may set any value.
const (
	StateAvailable = "available"
	StateOnTrip    = "on trip"
)

// Carrier is an entity responsible for physically transporting orders.
//
// The state is mutated two ways: directly via partial update, and indirectly
// when a route is created for the carrier (which marks it "on trip" in the
// same transaction as the route insert). Nothing resets a carrier to
// "available" automatically; that is a manual update.
type Carrier struct {
	id        kernel.UUID
	name      string
	contact   string
	state     string
	createdAt time.Time

	isConstructed bool
}

// NewCarrier creates a carrier in the "available" state.
func NewCarrier(id kernel.UUID, name, contact string, createdAt time.Time) (*Carrier, error) {
	c := &Carrier{
		contact:       contact,
		state:         StateAvailable,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCarrier reconstructs a carrier from persistence.
func RestoreCarrier(id kernel.UUID, name, contact, state string, createdAt time.Time) (*Carrier, error) {
	c, err := NewCarrier(id, name, contact, createdAt)
	if err != nil {
		return nil, err
	}

	c.state = state
	return c, nil
}

// Validate ensures the Carrier was created through a factory method.
func (c *Carrier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCarrierIsNotConstructed
	}
	return nil
}

// ID returns the carrier's unique identifier.
func (c *Carrier) ID() kernel.UUID {
	return c.id
}

// Name returns the carrier's name.
func (c *Carrier) Name() string {
	return c.name
}

// Contact returns the carrier's contact information.
func (c *Carrier) Contact() string {
	return c.contact
}

// State returns the current availability label.
func (c *Carrier) State() string {
	return c.state
}

// CreatedAt returns the creation timestamp.
func (c *Carrier) CreatedAt() time.Time {
	return c.createdAt
}

// MarkOnTrip transitions the carrier to the "on trip" state. Called as the
// coupled side effect of route creation.
func (c *Carrier) MarkOnTrip() {
	c.state = StateOnTrip
}

// ApplyUpdate performs a partial update with coalesce semantics: nil fields
// keep their prior value. State accepts any non-empty label.
func (c *Carrier) ApplyUpdate(name, contact, state *string) error {
	if name != nil {
		if err := c.setName(*name); err != nil {
			return err
		}
	}
	if contact != nil {
		c.contact = *contact
	}
	if state != nil {
		if strings.TrimSpace(*state) == "" {
			return errs.NewValueIsRequiredError("state")
		}
		c.state = *state
	}
	return nil
}

func (c *Carrier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Carrier) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

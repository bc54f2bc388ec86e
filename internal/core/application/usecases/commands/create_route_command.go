package commands

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// CreateRouteCommand assigns a carrier to an order by creating a route.
// An order can have at most one route.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	orderID               kernel.UUID
	carrierID             kernel.UUID
	sourceAddress         string
	destinationAddress    string
	departureDate         time.Time
	estimatedDeliveryDate time.Time
	comment               string
	cost                  *float64
	actor                 principal.Principal

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a command to assign a carrier to an order.
// Comment and cost are optional.
func NewCreateRouteCommand(
	orderID, carrierID kernel.UUID,
	sourceAddress, destinationAddress string,
	departureDate, estimatedDeliveryDate time.Time,
	comment string,
	cost *float64,
	actor principal.Principal,
) (CreateRouteCommand, error) {
	cmd := CreateRouteCommand{
		departureDate:         departureDate,
		estimatedDeliveryDate: estimatedDeliveryDate,
		comment:               comment,
		cost:                  cost,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCarrierID(carrierID),
		cmd.setSourceAddress(sourceAddress),
		cmd.setDestinationAddress(destinationAddress),
		cmd.setActor(actor),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

// OrderID returns the order being routed.
func (c CreateRouteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CarrierID returns the carrier taking the trip.
func (c CreateRouteCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// SourceAddress returns the origin address.
func (c CreateRouteCommand) SourceAddress() string {
	return c.sourceAddress
}

// DestinationAddress returns the delivery address.
func (c CreateRouteCommand) DestinationAddress() string {
	return c.destinationAddress
}

// DepartureDate returns the planned departure.
func (c CreateRouteCommand) DepartureDate() time.Time {
	return c.departureDate
}

// EstimatedDeliveryDate returns the planned delivery.
func (c CreateRouteCommand) EstimatedDeliveryDate() time.Time {
	return c.estimatedDeliveryDate
}

// Comment returns the free-form comment.
func (c CreateRouteCommand) Comment() string {
	return c.comment
}

// Cost returns the internal trip cost, or nil when not recorded.
func (c CreateRouteCommand) Cost() *float64 {
	return c.cost
}

// Actor returns the authenticated principal issuing the command.
func (c CreateRouteCommand) Actor() principal.Principal {
	return c.actor
}

func (c *CreateRouteCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	c.orderID = id
	return nil
}

func (c *CreateRouteCommand) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("carrierID", err)
	}
	c.carrierID = id
	return nil
}

func (c *CreateRouteCommand) setSourceAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("sourceAddress")
	}
	c.sourceAddress = address
	return nil
}

func (c *CreateRouteCommand) setDestinationAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("destinationAddress")
	}
	c.destinationAddress = address
	return nil
}

func (c *CreateRouteCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateRouteCommandIsNotConstructed = errors.New(
	"UpdateRouteCommand must be created via NewUpdateRouteCommand constructor",
)

// UpdateRouteCommand patches the mutable fields of a route. The order and
// carrier references are immutable; reassignment means deleting and creating.
type UpdateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID               kernel.UUID
	destinationAddress    *string
	estimatedDeliveryDate *time.Time
	comment               *string
	cost                  *float64
	actor                 principal.Principal

	guard guard.ConstructorGuard
}

// NewUpdateRouteCommand creates a command to patch a route.
func NewUpdateRouteCommand(
	routeID kernel.UUID,
	destinationAddress *string,
	estimatedDeliveryDate *time.Time,
	comment *string,
	cost *float64,
	actor principal.Principal,
) (UpdateRouteCommand, error) {
	cmd := UpdateRouteCommand{
		destinationAddress:    destinationAddress,
		estimatedDeliveryDate: estimatedDeliveryDate,
		comment:               comment,
		cost:                  cost,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setActor(actor),
	); err != nil {
		return UpdateRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRouteCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRouteCommandIsNotConstructed)
}

// RouteID returns the route's identifier.
func (c UpdateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// DestinationAddress returns the replacement destination, or nil when unchanged.
func (c UpdateRouteCommand) DestinationAddress() *string {
	return c.destinationAddress
}

// EstimatedDeliveryDate returns the replacement delivery estimate, or nil when unchanged.
func (c UpdateRouteCommand) EstimatedDeliveryDate() *time.Time {
	return c.estimatedDeliveryDate
}

// Comment returns the replacement comment, or nil when unchanged.
func (c UpdateRouteCommand) Comment() *string {
	return c.comment
}

// Cost returns the replacement cost, or nil when unchanged.
func (c UpdateRouteCommand) Cost() *float64 {
	return c.cost
}

// Actor returns the authenticated principal issuing the command.
func (c UpdateRouteCommand) Actor() principal.Principal {
	return c.actor
}

func (c *UpdateRouteCommand) setRouteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("routeID", err)
	}
	c.routeID = id
	return nil
}

func (c *UpdateRouteCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

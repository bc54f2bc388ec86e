// Package principal models the authenticated actor attached to a request and
// the role-based capabilities the rest of the application checks against.
package principal

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrPrincipalIsNotConstructed is returned when a Principal was not created
// through the NewPrincipal constructor.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Principal is the authenticated actor (staff user or customer) resolved from
// a verified bearer credential. It is a value object; all authorization
// decisions in the application layer go through its capability methods.
type Principal struct {
	id    kernel.UUID
	email string
	role  Role

	isConstructed bool
}

// NewPrincipal creates a Principal from a verified credential's claims.
func NewPrincipal(id kernel.UUID, email string, role Role) (Principal, error) {
	p := Principal{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setRole(role),
	); err != nil {
		return Principal{}, err
	}

	p.email = email
	return p, nil
}

// Validate ensures the Principal was created via NewPrincipal.
func (p Principal) Validate() error {
	if !p.isConstructed {
		return ErrPrincipalIsNotConstructed
	}
	return nil
}

// ID returns the actor's identity (staff user id or customer id).
func (p Principal) ID() kernel.UUID {
	return p.id
}

// Email returns the actor's email address.
func (p Principal) Email() string {
	return p.email
}

// Role returns the actor's role.
func (p Principal) Role() Role {
	return p.role
}

// CanManageOrders reports whether the actor may create or update orders and
// append order events. Both staff roles qualify.
func (p Principal) CanManageOrders() bool {
	return p.role.IsStaff()
}

// CanDeleteOrders reports whether the actor may delete orders. Admin only.
func (p Principal) CanDeleteOrders() bool {
	return p.role.IsAdmin()
}

// CanViewOrders reports whether the actor may read the staff-facing order views.
func (p Principal) CanViewOrders() bool {
	return p.role.IsStaff()
}

// CanViewRoutes reports whether the actor may read the staff-facing route
// views, which include the internal cost figure.
func (p Principal) CanViewRoutes() bool {
	return p.role.IsStaff()
}

// CanUpdateRoutes reports whether the actor may modify routes. Admin only.
func (p Principal) CanUpdateRoutes() bool {
	return p.role.IsAdmin()
}

// CanManageCarriers reports whether the actor may create, update, or delete
// carriers. Admin only.
func (p Principal) CanManageCarriers() bool {
	return p.role.IsAdmin()
}

// CanViewCarriers reports whether the actor may read carrier records.
func (p Principal) CanViewCarriers() bool {
	return p.role.IsStaff()
}

// CanManageCustomers reports whether the actor may create or update customer
// records. Both staff roles qualify.
func (p Principal) CanManageCustomers() bool {
	return p.role.IsStaff()
}

// CanDeleteCustomers reports whether the actor may delete customers. Admin only.
func (p Principal) CanDeleteCustomers() bool {
	return p.role.IsAdmin()
}

// CanManageStaff reports whether the actor may administer staff user accounts.
// Admin only.
func (p Principal) CanManageStaff() bool {
	return p.role.IsAdmin()
}

// CanUploadSheets reports whether the actor may upload or assign technical
// sheets. Both staff roles qualify.
func (p Principal) CanUploadSheets() bool {
	return p.role.IsStaff()
}

// CanManageSheets reports whether the actor may edit or delete technical
// sheets. Admin only.
func (p Principal) CanManageSheets() bool {
	return p.role.IsAdmin()
}

// CanActForCustomer reports whether the actor may access data belonging to the
// given customer: any staff member, or the customer themselves.
func (p Principal) CanActForCustomer(customerID kernel.UUID) bool {
	if p.role.IsStaff() {
		return true
	}
	return p.role == RoleCustomer && p.id.IsEqual(customerID)
}

func (p *Principal) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Principal) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("role", err)
	}
	p.role = role
	return nil
}

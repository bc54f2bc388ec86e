// Package staff contains the internal staff user entity.
package staff

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User was not created through the
// NewUser or RestoreUser factory methods.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is a staff member (admin or logistics). Customers are modeled
// separately; they never appear in the users table.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	phone        string
	passwordHash string
	role         principal.Role
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates a staff user.
func NewUser(id kernel.UUID, name, email, phone, passwordHash string, role principal.Role, createdAt time.Time) (*User, error) {
	u := &User{
		phone:         phone,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a staff user from persistence.
func RestoreUser(id kernel.UUID, name, email, phone, passwordHash string, role principal.Role, createdAt time.Time) (*User, error) {
	return NewUser(id, name, email, phone, passwordHash, role, createdAt)
}

// Validate ensures the User was created through a factory method.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Name returns the user's display name.
func (u *User) Name() string { return u.name }

// Email returns the user's unique email address.
func (u *User) Email() string { return u.email }

// Phone returns the user's phone number.
func (u *User) Phone() string { return u.phone }

// PasswordHash returns the stored credential hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// Role returns the user's staff role.
func (u *User) Role() principal.Role { return u.role }

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// ApplyUpdate performs a partial update with coalesce semantics. A nil
// passwordHash keeps the existing credential.
func (u *User) ApplyUpdate(name, email, phone *string, role *principal.Role, passwordHash *string) error {
	if name != nil {
		if err := u.setName(*name); err != nil {
			return err
		}
	}
	if email != nil {
		if err := u.setEmail(*email); err != nil {
			return err
		}
	}
	if phone != nil {
		u.phone = *phone
	}
	if role != nil {
		if err := u.setRole(*role); err != nil {
			return err
		}
	}
	if passwordHash != nil {
		if err := u.setPasswordHash(*passwordHash); err != nil {
			return err
		}
	}
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role principal.Role) error {
	if !role.IsStaff() {
		return errs.NewValueIsInvalidError("role")
	}
	u.role = role
	return nil
}

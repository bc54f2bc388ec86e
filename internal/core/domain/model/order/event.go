package order

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when an Event instance was not created
// through the NewEvent or RestoreEvent factory methods.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent")

// Event is an append-only, timestamped log entry describing something that
// happened to an order. Events are never updated or deleted individually;
// they are removed only when their parent order is deleted.
//
// The event type is an open label; any non-empty string is accepted.
type Event struct {
	id        kernel.UUID
	orderID   kernel.UUID
	userID    kernel.UUID
	eventType string
	note      *string
	date      time.Time

	isConstructed bool
}

// NewEvent creates an event for an existing order.
//
// Parameters:
//   - id: unique identifier for the event
//   - orderID: the parent order, which must already exist
//   - userID: the acting staff user
//   - eventType: free-form label, required
//   - note: optional free text
//   - date: server-assigned timestamp
func NewEvent(id, orderID, userID kernel.UUID, eventType string, note *string, date time.Time) (*Event, error) {
	e := &Event{
		note:          note,
		date:          date,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setOrderID(orderID),
		e.setUserID(userID),
		e.setEventType(eventType),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEvent reconstructs an event from persistence.
func RestoreEvent(id, orderID, userID kernel.UUID, eventType string, note *string, date time.Time) (*Event, error) {
	return NewEvent(id, orderID, userID, eventType, note, date)
}

// Validate ensures the Event was created through a factory method.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// OrderID returns the identifier of the parent order.
func (e *Event) OrderID() kernel.UUID {
	return e.orderID
}

// UserID returns the identifier of the acting staff user.
func (e *Event) UserID() kernel.UUID {
	return e.userID
}

// EventType returns the free-form event label.
func (e *Event) EventType() string {
	return e.eventType
}

// Note returns the optional note, or nil.
func (e *Event) Note() *string {
	return e.note
}

// Date returns the server-assigned event timestamp.
func (e *Event) Date() time.Time {
	return e.date
}

func (e *Event) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Event) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	e.orderID = id
	return nil
}

func (e *Event) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	e.userID = id
	return nil
}

func (e *Event) setEventType(eventType string) error {
	if strings.TrimSpace(eventType) == "" {
		return errs.NewValueIsRequiredError("eventType")
	}
	e.eventType = eventType
	return nil
}

// Package orderrepo persists the order aggregate and its event log.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderDTO is the database row for an order. The tracking code carries a
// uniqueness constraint so duplicates surface as conflicts at insert time.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index"`
	UserID       uuid.UUID `gorm:"type:uuid"`
	TrackingCode string    `gorm:"uniqueIndex"`
	Description  string
	State        string
	CreatedAt    time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// EventDTO is the database row for an order event. Seq is a monotonically
// increasing insert counter used to break ties between events sharing the
// same date.
type EventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int64     `gorm:"autoIncrement;uniqueIndex"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	UserID    uuid.UUID `gorm:"type:uuid"`
	EventType string
	Note      *string
	Date      time.Time
}

// TableName overrides GORM's default naming to use "order_events".
func (EventDTO) TableName() string {
	return "order_events"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:           o.ID().Bytes(),
		CustomerID:   o.CustomerID().Bytes(),
		UserID:       o.UserID().Bytes(),
		TrackingCode: o.TrackingCode(),
		Description:  o.Description(),
		State:        o.State(),
		CreatedAt:    o.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, userID,
		dto.TrackingCode, dto.Description, dto.State, dto.CreatedAt)
}

func eventFromDomain(e *order.Event) EventDTO {
	return EventDTO{
		ID:        e.ID().Bytes(),
		OrderID:   e.OrderID().Bytes(),
		UserID:    e.UserID().Bytes(),
		EventType: e.EventType(),
		Note:      e.Note(),
		Date:      e.Date(),
	}
}

// Package routerepo persists the route aggregate.
package routerepo

import (
	"time"

	"github.com/google/uuid"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// RouteDTO is the database row for a route. OrderID carries a uniqueness
// constraint: an order has at most one route, and a concurrent duplicate
// surfaces as a conflict at insert time.
type RouteDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID               uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CarrierID             uuid.UUID `gorm:"type:uuid;index"`
	SourceAddress         string
	DestinationAddress    string
	DepartureDate         time.Time
	EstimatedDeliveryDate time.Time
	Comment               string
	Cost                  *float64
	CreatedAt             time.Time
}

// TableName overrides GORM's default naming to use "routes".
func (RouteDTO) TableName() string {
	return "routes"
}

func fromDomain(r *route.Route) RouteDTO {
	return RouteDTO{
		ID:                    r.ID().Bytes(),
		OrderID:               r.OrderID().Bytes(),
		CarrierID:             r.CarrierID().Bytes(),
		SourceAddress:         r.SourceAddress(),
		DestinationAddress:    r.DestinationAddress(),
		DepartureDate:         r.DepartureDate(),
		EstimatedDeliveryDate: r.EstimatedDeliveryDate(),
		Comment:               r.Comment(),
		Cost:                  r.Cost(),
		CreatedAt:             r.CreatedAt(),
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(id, orderID, carrierID,
		dto.SourceAddress, dto.DestinationAddress,
		dto.DepartureDate, dto.EstimatedDeliveryDate,
		dto.Comment, dto.Cost, dto.CreatedAt)
}

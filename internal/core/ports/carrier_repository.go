package ports

import (
	"context"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
)

// CarrierRepository is the write-side persistence contract for carriers.
type CarrierRepository interface {
	Add(ctx context.Context, aggregate *carrier.Carrier) error
	Update(ctx context.Context, aggregate *carrier.Carrier) error
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

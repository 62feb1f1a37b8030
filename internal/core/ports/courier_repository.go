package ports

import (
	"context"

	"github.com/parcelpro/tracking-service/internal/core/domain"
)

// CourierRepository provides read access to the courier registry.
// The registry is read-mostly; the core never mutates couriers beyond
// existence checks (seeding is an administrative operation).
type CourierRepository interface {
	// FindByID retrieves a courier, or domain.ErrCourierNotFound.
	FindByID(ctx context.Context, id string) (*domain.Courier, error)

	// List returns all registered couriers.
	List(ctx context.Context) ([]*domain.Courier, error)

	// Seed upserts the given couriers. Used for development fixtures.
	Seed(ctx context.Context, couriers []domain.Courier) error
}

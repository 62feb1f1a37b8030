package ports

import (
	"context"

	"github.com/parcelpro/tracking-service/internal/core/domain"
)

// ListParcelsFilter carries pagination parameters for listing parcels.
type ListParcelsFilter struct {
	Page    int // 1-based
	PerPage int // capped at 100 by the service
}

// ParcelRepository defines persistence operations for parcels.
//
// AppendEvent is a compare-and-swap write: it only applies when the
// stored parcel's current status still equals expectedStatus, so a
// concurrent update that slipped in between read and write loses the
// race instead of silently overwriting it.
type ParcelRepository interface {
	// Put inserts a new parcel. Returns domain.ErrDuplicateTrackingNumber
	// when the tracking number already exists.
	Put(ctx context.Context, p *domain.Parcel) error

	// Get retrieves a parcel by tracking number, or domain.ErrParcelNotFound.
	Get(ctx context.Context, trackingNumber string) (*domain.Parcel, error)

	// AppendEvent atomically appends event to the parcel's history,
	// conditioned on the current status. Returns domain.ErrParcelNotFound
	// or domain.ErrBusy when the precondition no longer holds.
	AppendEvent(ctx context.Context, trackingNumber string, expectedStatus domain.ParcelStatus, event domain.TrackingEvent) error

	// SetCourier records a courier assignment on the parcel document.
	SetCourier(ctx context.Context, trackingNumber, courierID string) error

	// ListByCourier returns all parcels assigned to courierID in creation order.
	ListByCourier(ctx context.Context, courierID string) ([]*domain.Parcel, error)

	// List returns a page of parcels in creation order and the total count.
	List(ctx context.Context, filter ListParcelsFilter) ([]*domain.Parcel, int64, error)
}

package ports

import (
	"context"
	"time"

	"github.com/parcelpro/tracking-service/internal/core/domain"
)

// PartyInput holds sender or recipient contact details.
type PartyInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// CreateShipmentInput carries all data needed to create a new parcel.
type CreateShipmentInput struct {
	Sender            PartyInput
	Recipient         PartyInput
	Weight            float64
	Description       string
	ServiceType       string
	EstimatedDelivery time.Time // optional; zero value = derived from service type
}

// UpdateStatusInput carries a requested status transition.
type UpdateStatusInput struct {
	TrackingNumber string
	Status         string
	Location       string
	Description    string
}

// ListParcelsInput carries pagination for the list endpoint.
type ListParcelsInput struct {
	Page    int
	PerPage int
}

// ListParcelsResult is returned by ListParcels.
type ListParcelsResult struct {
	Items      []*domain.Parcel
	Total      int64
	Page       int
	PerPage    int
	TotalPages int
}

// ParcelService defines the use-case operations of the tracking core.
type ParcelService interface {
	// CreateShipment validates input, allocates a tracking number, and
	// persists the parcel with its initial "created" history event.
	CreateShipment(ctx context.Context, input CreateShipmentInput) (*domain.Parcel, error)

	// Track returns the parcel and its full history.
	Track(ctx context.Context, trackingNumber string) (*domain.Parcel, error)

	// AssignCourier sets the parcel's courier and appends an "assigned"
	// event. The courier must exist in the registry.
	AssignCourier(ctx context.Context, trackingNumber, courierID string) (*domain.Parcel, error)

	// UpdateStatus validates the transition against the state machine and
	// appends a new history event. Either the full append succeeds or the
	// parcel is left unchanged.
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.Parcel, error)

	// ListByCourier returns the parcels assigned to a courier.
	ListByCourier(ctx context.Context, courierID string) ([]*domain.Parcel, error)

	// ListParcels returns a page of all parcels.
	ListParcels(ctx context.Context, input ListParcelsInput) (*ListParcelsResult, error)

	// ListCouriers returns all registered couriers.
	ListCouriers(ctx context.Context) ([]*domain.Courier, error)
}

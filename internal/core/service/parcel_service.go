package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/parcelpro/tracking-service/internal/core/domain"
	"github.com/parcelpro/tracking-service/internal/core/ports"
)

const (
	trackingPrefix    = "PP"
	maxCreateAttempts = 3
	defaultPerPage    = 10
	maxPerPage        = 100
)

// KeyLocker serializes writers on a single tracking number. Acquire
// blocks up to the locker's configured timeout and returns a release
// function, or domain.ErrBusy when the key stays contended.
type KeyLocker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// AuditRecorder receives successfully applied tracking events for the
// audit trail. Record must not block the request path.
type AuditRecorder interface {
	Record(trackingNumber string, event domain.TrackingEvent)
}

// ParcelService implements ports.ParcelService on top of the store,
// the courier registry, and a per-key locker.
type ParcelService struct {
	parcels  ports.ParcelRepository
	couriers ports.CourierRepository
	locker   KeyLocker
	recorder AuditRecorder
	logger   zerolog.Logger
	now      func() time.Time
}

func NewParcelService(
	parcels ports.ParcelRepository,
	couriers ports.CourierRepository,
	locker KeyLocker,
	recorder AuditRecorder,
	logger zerolog.Logger,
) *ParcelService {
	return &ParcelService{
		parcels:  parcels,
		couriers: couriers,
		locker:   locker,
		recorder: recorder,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateShipment validates the input, allocates a unique tracking
// number, and persists the parcel with its initial history event.
func (s *ParcelService) CreateShipment(ctx context.Context, input ports.CreateShipmentInput) (*domain.Parcel, error) {
	now := s.now()

	estimated := input.EstimatedDelivery
	if estimated.IsZero() {
		estimated = estimatedDelivery(input.ServiceType, now)
	}

	parcel, err := domain.NewParcel(
		toParty(input.Sender),
		toParty(input.Recipient),
		input.Weight,
		input.Description,
		input.ServiceType,
		estimated,
		now,
	)
	if err != nil {
		return nil, err
	}

	// The store's unique index is the final uniqueness guarantee; a
	// random-suffix collision is retried with a fresh number.
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		parcel.TrackingNumber = generateTrackingNumber()
		err = s.parcels.Put(ctx, parcel)
		if err == nil {
			s.logger.Info().
				Str("tracking_number", parcel.TrackingNumber).
				Str("service_type", parcel.ServiceType).
				Msg("parcel created")
			return parcel, nil
		}
		if !errors.Is(err, domain.ErrDuplicateTrackingNumber) {
			s.logger.Error().Err(err).Msg("failed to create parcel")
			return nil, err
		}
		s.logger.Warn().Str("tracking_number", parcel.TrackingNumber).Msg("tracking number collision, regenerating")
	}
	return nil, err
}

// Track returns the parcel and its full history.
func (s *ParcelService) Track(ctx context.Context, trackingNumber string) (*domain.Parcel, error) {
	return s.parcels.Get(ctx, trackingNumber)
}

// AssignCourier sets the parcel's courier and appends an "assigned"
// event through the same serialized append path as status updates.
// Assignment is itself a state-machine transition, so a parcel already
// in transit cannot be re-assigned.
func (s *ParcelService) AssignCourier(ctx context.Context, trackingNumber, courierID string) (*domain.Parcel, error) {
	courier, err := s.couriers.FindByID(ctx, courierID)
	if err != nil {
		return nil, err
	}

	release, err := s.locker.Acquire(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	defer release()

	parcel, err := s.parcels.Get(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}

	current := parcel.CurrentStatus()
	if err := domain.ValidateTransition(current, domain.StatusAssigned); err != nil {
		return nil, fmt.Errorf("assign courier: %w (from %s)", err, current)
	}

	history := domain.AppendEvent(parcel.History, domain.StatusAssigned, "system",
		"Assigned to courier "+courier.Name, s.now())
	event := history[len(history)-1]

	if err := s.parcels.AppendEvent(ctx, trackingNumber, current, event); err != nil {
		return nil, err
	}
	if err := s.parcels.SetCourier(ctx, trackingNumber, courierID); err != nil {
		return nil, err
	}

	s.recorder.Record(trackingNumber, event)
	s.logger.Info().
		Str("tracking_number", trackingNumber).
		Str("courier_id", courierID).
		Msg("courier assigned")

	parcel.CourierID = courierID
	parcel.History = history
	return parcel, nil
}

// UpdateStatus validates the requested transition against the state
// machine and appends a new history event. The read-validate-append
// sequence runs under the per-key lock, and the repository write is
// additionally conditioned on the observed status, so concurrent
// updates on one parcel resolve to exactly one winner.
func (s *ParcelService) UpdateStatus(ctx context.Context, input ports.UpdateStatusInput) (*domain.Parcel, error) {
	requested := domain.ParcelStatus(input.Status)

	release, err := s.locker.Acquire(ctx, input.TrackingNumber)
	if err != nil {
		return nil, err
	}
	defer release()

	parcel, err := s.parcels.Get(ctx, input.TrackingNumber)
	if err != nil {
		return nil, err
	}

	current := parcel.CurrentStatus()
	if err := domain.ValidateTransition(current, requested); err != nil {
		return nil, fmt.Errorf("update status: %w (from %s to %s)", err, current, requested)
	}

	history := domain.AppendEvent(parcel.History, requested, input.Location, input.Description, s.now())
	event := history[len(history)-1]

	if err := s.parcels.AppendEvent(ctx, input.TrackingNumber, current, event); err != nil {
		return nil, err
	}

	s.recorder.Record(input.TrackingNumber, event)
	s.logger.Info().
		Str("tracking_number", input.TrackingNumber).
		Str("status", input.Status).
		Msg("status updated")

	parcel.History = history
	return parcel, nil
}

// ListByCourier returns the courier's parcels in creation order.
func (s *ParcelService) ListByCourier(ctx context.Context, courierID string) ([]*domain.Parcel, error) {
	if _, err := s.couriers.FindByID(ctx, courierID); err != nil {
		return nil, err
	}
	return s.parcels.ListByCourier(ctx, courierID)
}

// ListParcels returns a page of all parcels in creation order.
func (s *ParcelService) ListParcels(ctx context.Context, input ports.ListParcelsInput) (*ports.ListParcelsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	items, total, err := s.parcels.List(ctx, ports.ListParcelsFilter{Page: page, PerPage: perPage})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return &ports.ListParcelsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

// ListCouriers returns the courier registry.
func (s *ParcelService) ListCouriers(ctx context.Context) ([]*domain.Courier, error) {
	return s.couriers.List(ctx)
}

func toParty(in ports.PartyInput) domain.Party {
	return domain.Party{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
	}
}

// generateTrackingNumber returns a tracking number in the format PP-XXXXXXXX.
func generateTrackingNumber() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%s-%08X", trackingPrefix, time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("%s-%08X", trackingPrefix, b)
}

// estimatedDelivery derives a delivery estimate from the service type
// when the caller did not provide one.
func estimatedDelivery(serviceType string, from time.Time) time.Time {
	base := time.Date(from.Year(), from.Month(), from.Day(), 18, 0, 0, 0, time.UTC)
	switch serviceType {
	case "express":
		return base.AddDate(0, 0, 1)
	default: // "standard" or unknown → 3 days
		return base.AddDate(0, 0, 3)
	}
}

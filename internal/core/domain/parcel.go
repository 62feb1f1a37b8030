package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidTransition       = errors.New("invalid status transition")
	ErrParcelNotFound          = errors.New("parcel not found")
	ErrCourierNotFound         = errors.New("courier not found")
	ErrDuplicateTrackingNumber = errors.New("tracking number already exists")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrForbidden               = errors.New("access forbidden")
	ErrBusy                    = errors.New("parcel is busy, retry later")
)

// ValidationError describes a rejected creation input. It carries the
// offending field so the transport layer can produce a useful message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}

// Party is a sender or recipient. Immutable once attached to a parcel;
// sender and recipient are independent values with no identity beyond
// their fields.
type Party struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
}

// Parcel is the core aggregate root. Its History is append-only and is
// the order of truth: the current status is always the status of the
// last history entry.
type Parcel struct {
	TrackingNumber    string          `json:"tracking_number" bson:"tracking_number"`
	Sender            Party           `json:"sender" bson:"sender"`
	Recipient         Party           `json:"recipient" bson:"recipient"`
	Weight            float64         `json:"weight" bson:"weight"`
	Description       string          `json:"description" bson:"description"`
	ServiceType       string          `json:"service_type" bson:"service_type"`
	CourierID         string          `json:"courier_id,omitempty" bson:"courier_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at" bson:"created_at"`
	EstimatedDelivery time.Time       `json:"estimated_delivery" bson:"estimated_delivery"`
	History           []TrackingEvent `json:"history" bson:"history"`
}

// CurrentStatus returns the status of the last history entry.
func (p *Parcel) CurrentStatus() ParcelStatus {
	if len(p.History) == 0 {
		return StatusCreated
	}
	return p.History[len(p.History)-1].Status
}

// NewParcel validates the creation input and builds a parcel whose
// history holds the single initial "created" event. The tracking number
// is assigned later by the service; uniqueness is the store's job.
func NewParcel(sender, recipient Party, weight float64, description, serviceType string, estimatedDelivery time.Time, now time.Time) (*Parcel, error) {
	if weight <= 0 {
		return nil, &ValidationError{Field: "weight", Reason: "must be greater than zero"}
	}
	if strings.TrimSpace(description) == "" {
		return nil, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if err := validateParty("sender", sender); err != nil {
		return nil, err
	}
	if err := validateParty("recipient", recipient); err != nil {
		return nil, err
	}

	return &Parcel{
		Sender:            sender,
		Recipient:         recipient,
		Weight:            weight,
		Description:       description,
		ServiceType:       serviceType,
		CreatedAt:         now,
		EstimatedDelivery: estimatedDelivery,
		History: []TrackingEvent{{
			Status:      StatusCreated,
			Location:    "system",
			Description: "Parcel created",
			Timestamp:   now,
		}},
	}, nil
}

func validateParty(field string, p Party) error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: field + ".name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(p.Address) == "" {
		return &ValidationError{Field: field + ".address", Reason: "must not be empty"}
	}
	return nil
}

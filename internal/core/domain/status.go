package domain

// ParcelStatus represents the lifecycle state of a parcel.
type ParcelStatus string

const (
	StatusCreated        ParcelStatus = "created"
	StatusAssigned       ParcelStatus = "assigned"
	StatusInTransit      ParcelStatus = "in_transit"
	StatusOutForDelivery ParcelStatus = "out_for_delivery"
	StatusDelivered      ParcelStatus = "delivered"
	StatusFailedDelivery ParcelStatus = "failed_delivery"
)

// validTransitions defines the allowed state machine transitions.
// delivered is terminal; failed_delivery re-enters the retry loop.
var validTransitions = map[ParcelStatus][]ParcelStatus{
	StatusCreated:        {StatusAssigned, StatusInTransit},
	StatusAssigned:       {StatusInTransit},
	StatusInTransit:      {StatusOutForDelivery},
	StatusOutForDelivery: {StatusDelivered, StatusFailedDelivery},
	StatusFailedDelivery: {StatusOutForDelivery},
}

// NextAllowedStatuses returns the set of statuses reachable from s.
// Unknown statuses yield an empty set, so validation fails closed.
func NextAllowedStatuses(s ParcelStatus) []ParcelStatus {
	allowed := validTransitions[s]
	out := make([]ParcelStatus, len(allowed))
	copy(out, allowed)
	return out
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s ParcelStatus) CanTransitionTo(next ParcelStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible from s.
func (s ParcelStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// ValidateTransition returns ErrInvalidTransition when next is not
// reachable from current.
func ValidateTransition(current, next ParcelStatus) error {
	if !current.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	return nil
}

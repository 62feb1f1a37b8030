package handler

import "time"

// --- Request types ---

type partyRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address" validate:"required"`
}

type createParcelRequest struct {
	Sender            partyRequest `json:"sender"             validate:"required"`
	Recipient         partyRequest `json:"recipient"          validate:"required"`
	Weight            float64      `json:"weight"             validate:"required,gt=0"`
	Description       string       `json:"description"        validate:"required"`
	ServiceType       string       `json:"service_type"       validate:"omitempty,oneof=standard express"`
	EstimatedDelivery *time.Time   `json:"estimated_delivery"`
}

type updateStatusRequest struct {
	Status      string `json:"status"      validate:"required,oneof=assigned in_transit out_for_delivery delivered failed_delivery"`
	Location    string `json:"location"    validate:"required"`
	Description string `json:"description"`
}

type assignCourierRequest struct {
	CourierID string `json:"courier_id" validate:"required"`
}

type loginRequest struct {
	CourierID string `json:"courier_id" validate:"required"`
	Password  string `json:"password"   validate:"required"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type partyResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address"`
}

type trackingEventResponse struct {
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

type parcelResponse struct {
	TrackingNumber    string                  `json:"tracking_number"`
	Status            string                  `json:"status"`
	Sender            partyResponse           `json:"sender"`
	Recipient         partyResponse           `json:"recipient"`
	Weight            float64                 `json:"weight"`
	Description       string                  `json:"description"`
	ServiceType       string                  `json:"service_type,omitempty"`
	CourierID         string                  `json:"courier_id,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
	EstimatedDelivery time.Time               `json:"estimated_delivery"`
	History           []trackingEventResponse `json:"history"`
}

type courierResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Vehicle string `json:"vehicle,omitempty"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Courier courierResponse `json:"courier"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

type listParcelsResponse struct {
	Data       []parcelResponse   `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// errorResponse mirrors the envelope rendered by the API error handler;
// it exists here so the route annotations can reference it.
type errorResponse struct {
	Error string `json:"error"`
}

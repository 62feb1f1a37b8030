package handler

import (
	"github.com/parcelpro/tracking-service/internal/core/domain"
	"github.com/parcelpro/tracking-service/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createParcelRequest) ports.CreateShipmentInput {
	in := ports.CreateShipmentInput{
		Sender:      toPartyInput(req.Sender),
		Recipient:   toPartyInput(req.Recipient),
		Weight:      req.Weight,
		Description: req.Description,
		ServiceType: req.ServiceType,
	}
	if req.EstimatedDelivery != nil {
		in.EstimatedDelivery = req.EstimatedDelivery.UTC()
	}
	return in
}

func toPartyInput(p partyRequest) ports.PartyInput {
	return ports.PartyInput{
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		Address: p.Address,
	}
}

// --- Domain → HTTP response ---

func toParcelResponse(p *domain.Parcel) parcelResponse {
	history := make([]trackingEventResponse, len(p.History))
	for i, e := range p.History {
		history[i] = trackingEventResponse{
			Status:      string(e.Status),
			Location:    e.Location,
			Description: e.Description,
			Timestamp:   e.Timestamp.UTC(),
		}
	}

	return parcelResponse{
		TrackingNumber:    p.TrackingNumber,
		Status:            string(p.CurrentStatus()),
		Sender:            toPartyResponse(p.Sender),
		Recipient:         toPartyResponse(p.Recipient),
		Weight:            p.Weight,
		Description:       p.Description,
		ServiceType:       p.ServiceType,
		CourierID:         p.CourierID,
		CreatedAt:         p.CreatedAt.UTC(),
		EstimatedDelivery: p.EstimatedDelivery.UTC(),
		History:           history,
	}
}

func toPartyResponse(p domain.Party) partyResponse {
	return partyResponse{
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		Address: p.Address,
	}
}

func toCourierResponse(c *domain.Courier) courierResponse {
	return courierResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Vehicle: c.Vehicle,
	}
}

func toParcelResponses(parcels []*domain.Parcel) []parcelResponse {
	out := make([]parcelResponse, len(parcels))
	for i, p := range parcels {
		out[i] = toParcelResponse(p)
	}
	return out
}

package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parcelpro/tracking-service/internal/api"
	"github.com/parcelpro/tracking-service/internal/api/handler"
	"github.com/parcelpro/tracking-service/internal/core/domain"
	"github.com/parcelpro/tracking-service/internal/core/ports"
)

// stubParcelService lets each test script the service layer's behavior.
type stubParcelService struct {
	createFn       func(ctx context.Context, input ports.CreateShipmentInput) (*domain.Parcel, error)
	trackFn        func(ctx context.Context, trackingNumber string) (*domain.Parcel, error)
	assignFn       func(ctx context.Context, trackingNumber, courierID string) (*domain.Parcel, error)
	updateFn       func(ctx context.Context, input ports.UpdateStatusInput) (*domain.Parcel, error)
	listByCourier  func(ctx context.Context, courierID string) ([]*domain.Parcel, error)
	listParcelsFn  func(ctx context.Context, input ports.ListParcelsInput) (*ports.ListParcelsResult, error)
	listCouriersFn func(ctx context.Context) ([]*domain.Courier, error)
}

func (s *stubParcelService) CreateShipment(ctx context.Context, input ports.CreateShipmentInput) (*domain.Parcel, error) {
	return s.createFn(ctx, input)
}

func (s *stubParcelService) Track(ctx context.Context, trackingNumber string) (*domain.Parcel, error) {
	return s.trackFn(ctx, trackingNumber)
}

func (s *stubParcelService) AssignCourier(ctx context.Context, trackingNumber, courierID string) (*domain.Parcel, error) {
	return s.assignFn(ctx, trackingNumber, courierID)
}

func (s *stubParcelService) UpdateStatus(ctx context.Context, input ports.UpdateStatusInput) (*domain.Parcel, error) {
	return s.updateFn(ctx, input)
}

func (s *stubParcelService) ListByCourier(ctx context.Context, courierID string) ([]*domain.Parcel, error) {
	return s.listByCourier(ctx, courierID)
}

func (s *stubParcelService) ListParcels(ctx context.Context, input ports.ListParcelsInput) (*ports.ListParcelsResult, error) {
	return s.listParcelsFn(ctx, input)
}

func (s *stubParcelService) ListCouriers(ctx context.Context) ([]*domain.Courier, error) {
	return s.listCouriersFn(ctx)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	return e
}

func sampleParcel() *domain.Parcel {
	created := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	return &domain.Parcel{
		TrackingNumber: "PP-7A8B9C2D",
		Sender:         domain.Party{Name: "A", Address: "X"},
		Recipient:      domain.Party{Name: "B", Address: "Y"},
		Weight:         2.5,
		Description:    "books",
		ServiceType:    "standard",
		CreatedAt:      created,
		History: []domain.TrackingEvent{
			{Status: domain.StatusCreated, Location: "system", Description: "Parcel created", Timestamp: created},
		},
	}
}

const createBody = `{
	"sender":    {"name": "A", "address": "X"},
	"recipient": {"name": "B", "address": "Y"},
	"weight": 2.5,
	"description": "books"
}`

func TestCreateParcel(t *testing.T) {
	svc := &stubParcelService{
		createFn: func(_ context.Context, input ports.CreateShipmentInput) (*domain.Parcel, error) {
			assert.Equal(t, 2.5, input.Weight)
			assert.Equal(t, "A", input.Sender.Name)
			return sampleParcel(), nil
		},
	}
	e := newTestEcho()
	e.POST("/parcels", handler.NewParcelHandler(svc).Create)

	req := httptest.NewRequest(http.MethodPost, "/parcels", strings.NewReader(createBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "PP-7A8B9C2D", body["tracking_number"])
	assert.Equal(t, "created", body["status"])
	assert.Len(t, body["history"], 1)
}

func TestCreateParcel_InvalidPayload(t *testing.T) {
	svc := &stubParcelService{
		createFn: func(context.Context, ports.CreateShipmentInput) (*domain.Parcel, error) {
			t.Fatal("service must not be called for invalid input")
			return nil, nil
		},
	}
	e := newTestEcho()
	e.POST("/parcels", handler.NewParcelHandler(svc).Create)

	cases := map[string]string{
		"missing weight":    `{"sender":{"name":"A","address":"X"},"recipient":{"name":"B","address":"Y"},"description":"books"}`,
		"negative weight":   `{"sender":{"name":"A","address":"X"},"recipient":{"name":"B","address":"Y"},"weight":-1,"description":"books"}`,
		"missing recipient": `{"sender":{"name":"A","address":"X"},"weight":2.5,"description":"books"}`,
		"bad service type":  `{"sender":{"name":"A","address":"X"},"recipient":{"name":"B","address":"Y"},"weight":2.5,"description":"books","service_type":"overnight"}`,
		"malformed json":    `{`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/parcels", strings.NewReader(payload))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestTrackParcel(t *testing.T) {
	svc := &stubParcelService{
		trackFn: func(_ context.Context, trackingNumber string) (*domain.Parcel, error) {
			assert.Equal(t, "PP-7A8B9C2D", trackingNumber)
			return sampleParcel(), nil
		},
	}
	e := newTestEcho()
	e.GET("/parcels/:tracking_number", handler.NewParcelHandler(svc).Track)

	req := httptest.NewRequest(http.MethodGet, "/parcels/PP-7A8B9C2D", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tracking_number":"PP-7A8B9C2D"`)
}

func TestTrackParcel_NotFound(t *testing.T) {
	svc := &stubParcelService{
		trackFn: func(context.Context, string) (*domain.Parcel, error) {
			return nil, domain.ErrParcelNotFound
		},
	}
	e := newTestEcho()
	e.GET("/parcels/:tracking_number", handler.NewParcelHandler(svc).Track)

	req := httptest.NewRequest(http.MethodGet, "/parcels/PP-MISSING1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateStatus(t *testing.T) {
	parcel := sampleParcel()
	parcel.History = append(parcel.History, domain.TrackingEvent{
		Status:    domain.StatusInTransit,
		Location:  "Hub A",
		Timestamp: parcel.CreatedAt.Add(time.Hour),
	})

	svc := &stubParcelService{
		updateFn: func(_ context.Context, input ports.UpdateStatusInput) (*domain.Parcel, error) {
			assert.Equal(t, "PP-7A8B9C2D", input.TrackingNumber)
			assert.Equal(t, "in_transit", input.Status)
			assert.Equal(t, "Hub A", input.Location)
			return parcel, nil
		},
	}
	e := newTestEcho()
	e.POST("/parcels/:tracking_number/status", handler.NewParcelHandler(svc).UpdateStatus)

	body := `{"status":"in_transit","location":"Hub A"}`
	req := httptest.NewRequest(http.MethodPost, "/parcels/PP-7A8B9C2D/status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"in_transit"`)
}

func TestUpdateStatus_InvalidTransitionConflicts(t *testing.T) {
	svc := &stubParcelService{
		updateFn: func(context.Context, ports.UpdateStatusInput) (*domain.Parcel, error) {
			return nil, domain.ErrInvalidTransition
		},
	}
	e := newTestEcho()
	e.POST("/parcels/:tracking_number/status", handler.NewParcelHandler(svc).UpdateStatus)

	body := `{"status":"delivered","location":"door"}`
	req := httptest.NewRequest(http.MethodPost, "/parcels/PP-7A8B9C2D/status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	svc := &stubParcelService{
		updateFn: func(context.Context, ports.UpdateStatusInput) (*domain.Parcel, error) {
			t.Fatal("service must not be called for an unknown status")
			return nil, nil
		},
	}
	e := newTestEcho()
	e.POST("/parcels/:tracking_number/status", handler.NewParcelHandler(svc).UpdateStatus)

	body := `{"status":"teleported","location":"Hub A"}`
	req := httptest.NewRequest(http.MethodPost, "/parcels/PP-7A8B9C2D/status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatus_BusyReturns503WithRetryAfter(t *testing.T) {
	svc := &stubParcelService{
		updateFn: func(context.Context, ports.UpdateStatusInput) (*domain.Parcel, error) {
			return nil, domain.ErrBusy
		},
	}
	e := newTestEcho()
	e.POST("/parcels/:tracking_number/status", handler.NewParcelHandler(svc).UpdateStatus)

	body := `{"status":"in_transit","location":"Hub A"}`
	req := httptest.NewRequest(http.MethodPost, "/parcels/PP-7A8B9C2D/status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestAssignCourier(t *testing.T) {
	parcel := sampleParcel()
	parcel.CourierID = "CR001"
	parcel.History = append(parcel.History, domain.TrackingEvent{
		Status:      domain.StatusAssigned,
		Location:    "system",
		Description: "Assigned to courier John Doe",
		Timestamp:   parcel.CreatedAt.Add(time.Minute),
	})

	svc := &stubParcelService{
		assignFn: func(_ context.Context, trackingNumber, courierID string) (*domain.Parcel, error) {
			assert.Equal(t, "PP-7A8B9C2D", trackingNumber)
			assert.Equal(t, "CR001", courierID)
			return parcel, nil
		},
	}
	e := newTestEcho()
	e.POST("/parcels/:tracking_number/assign-courier", handler.NewParcelHandler(svc).AssignCourier)

	body := `{"courier_id":"CR001"}`
	req := httptest.NewRequest(http.MethodPost, "/parcels/PP-7A8B9C2D/assign-courier", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"courier_id":"CR001"`)
	assert.Contains(t, rec.Body.String(), `"status":"assigned"`)
}

func TestAssignCourier_UnknownCourier(t *testing.T) {
	svc := &stubParcelService{
		assignFn: func(context.Context, string, string) (*domain.Parcel, error) {
			return nil, domain.ErrCourierNotFound
		},
	}
	e := newTestEcho()
	e.POST("/parcels/:tracking_number/assign-courier", handler.NewParcelHandler(svc).AssignCourier)

	body := `{"courier_id":"CR999"}`
	req := httptest.NewRequest(http.MethodPost, "/parcels/PP-7A8B9C2D/assign-courier", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListParcels_PassesPagination(t *testing.T) {
	svc := &stubParcelService{
		listParcelsFn: func(_ context.Context, input ports.ListParcelsInput) (*ports.ListParcelsResult, error) {
			assert.Equal(t, 2, input.Page)
			assert.Equal(t, 5, input.PerPage)
			return &ports.ListParcelsResult{
				Items:      []*domain.Parcel{sampleParcel()},
				Total:      6,
				Page:       2,
				PerPage:    5,
				TotalPages: 2,
			}, nil
		},
	}
	e := newTestEcho()
	e.GET("/parcels", handler.NewParcelHandler(svc).List)

	req := httptest.NewRequest(http.MethodGet, "/parcels?page=2&per_page=5", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data       []json.RawMessage `json:"data"`
		Pagination struct {
			Total      int64 `json:"total"`
			Page       int   `json:"page"`
			PerPage    int   `json:"per_page"`
			TotalPages int   `json:"total_pages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, int64(6), body.Pagination.Total)
	assert.Equal(t, 2, body.Pagination.TotalPages)
}

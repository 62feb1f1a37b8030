package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/parcelpro/tracking-service/internal/api/metrics"
	"github.com/parcelpro/tracking-service/internal/core/domain"
	"github.com/parcelpro/tracking-service/internal/core/ports"
)

// ParcelHandler handles HTTP requests for parcel operations.
type ParcelHandler struct {
	service ports.ParcelService
}

func NewParcelHandler(service ports.ParcelService) *ParcelHandler {
	return &ParcelHandler{service: service}
}

// Create handles POST /parcels.
//
// @Summary      Create a new parcel
// @Tags         parcels
// @Accept       json
// @Produce      json
// @Param        body  body      createParcelRequest  true  "Parcel details"
// @Success      201   {object}  parcelResponse
// @Failure      400   {object}  errorResponse
// @Router       /parcels [post]
func (h *ParcelHandler) Create(c echo.Context) error {
	var req createParcelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	parcel, err := h.service.CreateShipment(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.ParcelsCreatedTotal.WithLabelValues(parcel.ServiceType).Inc()
	return c.JSON(http.StatusCreated, toParcelResponse(parcel))
}

// Track handles GET /parcels/:tracking_number and its alias
// GET /parcels/track/:tracking_number.
//
// @Summary      Track a parcel by tracking number
// @Tags         parcels
// @Produce      json
// @Param        tracking_number  path      string  true  "Tracking number (e.g. PP-7A8B9C2D)"
// @Success      200              {object}  parcelResponse
// @Failure      404              {object}  errorResponse
// @Router       /parcels/{tracking_number} [get]
func (h *ParcelHandler) Track(c echo.Context) error {
	parcel, err := h.service.Track(c.Request().Context(), c.Param("tracking_number"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toParcelResponse(parcel))
}

// List handles GET /parcels with page/per_page query parameters.
//
// @Summary      List parcels
// @Tags         parcels
// @Produce      json
// @Param        page      query     int  false  "Page (1-based)"
// @Param        per_page  query     int  false  "Page size (max 100)"
// @Success      200       {object}  listParcelsResponse
// @Router       /parcels [get]
func (h *ParcelHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	result, err := h.service.ListParcels(c.Request().Context(), ports.ListParcelsInput{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listParcelsResponse{
		Data: toParcelResponses(result.Items),
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			PerPage:    result.PerPage,
			TotalPages: result.TotalPages,
		},
	})
}

// UpdateStatus handles POST /parcels/:tracking_number/status.
//
// @Summary      Advance a parcel's delivery status
// @Tags         parcels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tracking_number  path      string               true  "Tracking number"
// @Param        body             body      updateStatusRequest  true  "Requested transition"
// @Success      200              {object}  parcelResponse
// @Failure      404              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      503              {object}  errorResponse
// @Router       /parcels/{tracking_number}/status [post]
func (h *ParcelHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	parcel, err := h.service.UpdateStatus(c.Request().Context(), ports.UpdateStatusInput{
		TrackingNumber: c.Param("tracking_number"),
		Status:         req.Status,
		Location:       req.Location,
		Description:    req.Description,
	})
	metrics.StatusUpdateDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StatusUpdateErrorsTotal.WithLabelValues(updateErrorReason(err)).Inc()
		return err
	}

	metrics.StatusUpdatesTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, toParcelResponse(parcel))
}

// AssignCourier handles POST /parcels/:tracking_number/assign-courier.
//
// @Summary      Assign a courier to a parcel
// @Tags         parcels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tracking_number  path      string                true  "Tracking number"
// @Param        body             body      assignCourierRequest  true  "Courier to assign"
// @Success      200              {object}  parcelResponse
// @Failure      404              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Router       /parcels/{tracking_number}/assign-courier [post]
func (h *ParcelHandler) AssignCourier(c echo.Context) error {
	var req assignCourierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	parcel, err := h.service.AssignCourier(c.Request().Context(), c.Param("tracking_number"), req.CourierID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toParcelResponse(parcel))
}

func updateErrorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, domain.ErrParcelNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrBusy):
		return "busy"
	default:
		return "internal"
	}
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parcelpro/tracking-service/internal/core/ports"
)

// CourierHandler handles courier registry and login requests.
type CourierHandler struct {
	parcels ports.ParcelService
	auth    ports.AuthService
}

func NewCourierHandler(parcels ports.ParcelService, auth ports.AuthService) *CourierHandler {
	return &CourierHandler{parcels: parcels, auth: auth}
}

// List handles GET /couriers. Credential material never appears in the
// response.
//
// @Summary      List registered couriers
// @Tags         couriers
// @Produce      json
// @Success      200  {array}  courierResponse
// @Router       /couriers [get]
func (h *CourierHandler) List(c echo.Context) error {
	couriers, err := h.parcels.ListCouriers(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]courierResponse, len(couriers))
	for i, courier := range couriers {
		out[i] = toCourierResponse(courier)
	}
	return c.JSON(http.StatusOK, out)
}

// ListParcels handles GET /couriers/:courier_id/parcels.
//
// @Summary      List parcels assigned to a courier
// @Tags         couriers
// @Produce      json
// @Security     BearerAuth
// @Param        courier_id  path      string  true  "Courier ID (e.g. CR001)"
// @Success      200         {array}   parcelResponse
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /couriers/{courier_id}/parcels [get]
func (h *CourierHandler) ListParcels(c echo.Context) error {
	parcels, err := h.parcels.ListByCourier(c.Request().Context(), c.Param("courier_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toParcelResponses(parcels))
}

// Login handles POST /couriers/login.
//
// @Summary      Courier login
// @Tags         couriers
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Courier credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Router       /couriers/login [post]
func (h *CourierHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, courier, err := h.auth.Login(c.Request().Context(), req.CourierID, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:   token,
		Courier: toCourierResponse(courier),
	})
}

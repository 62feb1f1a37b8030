package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/parcelpro/tracking-service/docs"
	"github.com/parcelpro/tracking-service/internal/api/handler"
	"github.com/parcelpro/tracking-service/internal/api/middleware"
	"github.com/parcelpro/tracking-service/internal/core/ports"
)

// RouterDeps carries everything the router needs to register routes.
type RouterDeps struct {
	Parcels   ports.ParcelService
	Auth      ports.AuthService
	Mongo     *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("parcelpro"))

	// --- Handlers ---
	parcelHandler := handler.NewParcelHandler(deps.Parcels)
	courierHandler := handler.NewCourierHandler(deps.Parcels, deps.Auth)
	healthHandler := handler.NewHealthHandler(deps.Mongo, deps.Redis)

	auth := middleware.Auth(deps.JWTSecret)
	scoped := middleware.CourierScope()

	// --- Parcel routes ---
	e.POST("/parcels", parcelHandler.Create)
	e.GET("/parcels", parcelHandler.List)
	e.GET("/parcels/:tracking_number", parcelHandler.Track)
	e.GET("/parcels/track/:tracking_number", parcelHandler.Track) // tracker-client alias
	e.POST("/parcels/:tracking_number/status", parcelHandler.UpdateStatus, auth)
	e.POST("/parcels/:tracking_number/assign-courier", parcelHandler.AssignCourier, auth)

	// --- Courier routes ---
	e.POST("/couriers/login", courierHandler.Login)
	e.GET("/couriers", courierHandler.List)
	e.GET("/couriers/:courier_id/parcels", courierHandler.ListParcels, auth, scoped)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/parcelpro/tracking-service/internal/api"
	"github.com/parcelpro/tracking-service/internal/core/service"
	"github.com/parcelpro/tracking-service/internal/fixtures"
	"github.com/parcelpro/tracking-service/internal/infrastructure/config"
	mongodb "github.com/parcelpro/tracking-service/internal/infrastructure/db/mongo"
	redisdb "github.com/parcelpro/tracking-service/internal/infrastructure/db/redis"
	"github.com/parcelpro/tracking-service/internal/infrastructure/queue"
	"github.com/parcelpro/tracking-service/pkg/logger"
)

// @title        ParcelPro Tracking API
// @version      1.0
// @description  Parcel creation, tracking, courier assignment, and delivery status updates.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "parcel-tracking",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Dependencies ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	parcelRepo := mongodb.NewParcelRepository(db)
	if err := parcelRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}
	courierRepo := mongodb.NewCourierRepository(db)

	if cfg.SeedDemoData {
		couriers, err := fixtures.DemoCouriers()
		if err != nil {
			log.Fatal().Err(err).Msg("fixture preparation failed")
		}
		if err := courierRepo.Seed(ctx, couriers); err != nil {
			log.Fatal().Err(err).Msg("courier seed failed")
		}
		log.Info().Int("count", len(couriers)).Msg("demo couriers seeded")
	}

	locker := redisdb.NewLocker(rdb, cfg.LockTimeout)

	recorder := queue.NewRecorder(cfg.AuditWorkers, db, log)
	recorder.Start(ctx)

	parcelService := service.NewParcelService(parcelRepo, courierRepo, locker, recorder, log)
	authService := service.NewAuthService(courierRepo, cfg.JWTSecret, 0)

	e := api.NewRouter(api.RouterDeps{
		Parcels:   parcelService,
		Auth:      authService,
		Mongo:     db,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	// --- Serve until interrupted ---
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")
	if err := e.Shutdown(context.Background()); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}

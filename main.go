package main

import (
	"context"
	"time"

	"github.com/Rafiffarihan13/SaveFood/config"
	"github.com/Rafiffarihan13/SaveFood/internal/auth"
	"github.com/Rafiffarihan13/SaveFood/internal/handler"
	"github.com/Rafiffarihan13/SaveFood/internal/middleware"
	"github.com/Rafiffarihan13/SaveFood/internal/refresh"
	"github.com/Rafiffarihan13/SaveFood/internal/seed"
	"github.com/Rafiffarihan13/SaveFood/internal/service"
	"github.com/Rafiffarihan13/SaveFood/internal/store"
	"github.com/Rafiffarihan13/SaveFood/pkg/logger"
	"github.com/Rafiffarihan13/SaveFood/pkg/session"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Development()); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.L()

	sessions, err := session.Open(cfg.SessionDBPath)
	if err != nil {
		log.Fatal("failed to open session store", zap.Error(err))
	}

	// Stores
	listings := store.NewListingStore()
	ledger := store.NewReservationLedger()
	identities := store.NewIdentityStore()
	wishlists := store.NewWishlistStore()

	if cfg.SeedDemoData {
		if err := seed.Load(identities, listings, log, time.Now()); err != nil {
			log.Fatal("failed to seed demo data", zap.Error(err))
		}
	}

	// Services
	catalogSvc := service.NewCatalogService(listings, ledger, identities, log)
	reservationSvc := service.NewReservationService(ledger, listings, identities, log)
	wishlistSvc := service.NewWishlistService(wishlists, listings, identities)
	authSvc := auth.New(identities, sessions, log)

	// Background status refresh
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go refresh.NewTicker(listings, cfg.RefreshInterval, log).Run(ctx)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "savefood"})
	})

	handler.NewListingHandler(catalogSvc, identities).RegisterRoutes(e)
	handler.NewReservationHandler(reservationSvc, catalogSvc).RegisterRoutes(e)
	handler.NewAuthHandler(authSvc).RegisterRoutes(e)
	handler.NewWishlistHandler(wishlistSvc).RegisterRoutes(e)

	log.Info("SaveFood starting", zap.String("port", cfg.ServerPort))
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/anasbeautylab/beautylab-backend/api/middleware"
	"github.com/anasbeautylab/beautylab-backend/api/routes"
	"github.com/anasbeautylab/beautylab-backend/internal/analytics"
	"github.com/anasbeautylab/beautylab-backend/internal/auth"
	"github.com/anasbeautylab/beautylab-backend/internal/bookings"
	"github.com/anasbeautylab/beautylab-backend/internal/catalog"
	"github.com/anasbeautylab/beautylab-backend/internal/gallery"
	"github.com/anasbeautylab/beautylab-backend/internal/media"
	"github.com/anasbeautylab/beautylab-backend/internal/settings"
	"github.com/anasbeautylab/beautylab-backend/internal/users"
	"github.com/anasbeautylab/beautylab-backend/pkg/config"
	"github.com/anasbeautylab/beautylab-backend/pkg/db"
	"github.com/anasbeautylab/beautylab-backend/pkg/logger"
	"github.com/anasbeautylab/beautylab-backend/pkg/migrate"
	"github.com/anasbeautylab/beautylab-backend/pkg/redis"
	"github.com/anasbeautylab/beautylab-backend/pkg/storage"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	// Redis backs rate limiting only; the API runs without it.
	var redisClient *redis.Client
	var redisPinger db.Pinger
	var rateStore middleware.RateLimiterStore
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		redisPinger = redisClient
		rateStore = redisClient
	} else {
		logg.Warn(context.Background(), "redis disabled, rate limiting is off")
	}

	blobStore, err := storage.New(context.Background(), cfg.Storage, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap blob storage", err)
		os.Exit(1)
	}

	usersRepo := users.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:  usersRepo,
		JWTConfig: cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	galleryService, err := gallery.NewService(gallery.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create gallery service", err)
		os.Exit(1)
	}

	imagePipeline, err := gallery.NewImagePipeline(media.NewTransformer(cfg.Media), blobStore)
	if err != nil {
		logg.Error(context.Background(), "failed to create image pipeline", err)
		os.Exit(1)
	}

	catalogRepo := catalog.NewRepository(dbClient.DB())
	catalogService, err := catalog.NewService(catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	bookingService, err := bookings.NewService(bookings.ServiceParams{
		Repo:        bookings.NewRepository(dbClient.DB()),
		CatalogRepo: catalogRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create booking service", err)
		os.Exit(1)
	}

	analyticsService, err := analytics.NewService(analytics.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create analytics service", err)
		os.Exit(1)
	}

	settingsService, err := settings.NewService(settings.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create settings service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:    cfg,
			Logger:    logg,
			DBPinger:  dbClient,
			RedisP:    redisPinger,
			RateStore: rateStore,
			Store:     blobStore,
			Users:     usersRepo,
			Auth:      authService,
			Gallery:   galleryService,
			Images:    imagePipeline,
			Catalog:   catalogService,
			Bookings:  bookingService,
			Analytics: analyticsService,
			Settings:  settingsService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

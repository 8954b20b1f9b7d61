package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/anasbeautylab/beautylab-backend/internal/users"
	"github.com/anasbeautylab/beautylab-backend/pkg/config"
	"github.com/anasbeautylab/beautylab-backend/pkg/db"
	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	"github.com/anasbeautylab/beautylab-backend/pkg/logger"
	"github.com/anasbeautylab/beautylab-backend/pkg/migrate"
	"github.com/anasbeautylab/beautylab-backend/pkg/security"
)

// Seeds the bootstrap admin account so a fresh deployment has a login.
// Does nothing when any user already exists.
func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	email := flag.String("email", "admin@example.com", "bootstrap admin email")
	password := flag.String("password", "password123", "bootstrap admin password")
	name := flag.String("name", "Administrator", "bootstrap admin display name")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":   cfg.App.Env,
		"email": *email,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run dev migrations", err)
		os.Exit(1)
	}

	repo := users.NewRepository(dbClient.DB())

	count, err := repo.Count(ctx)
	if err != nil {
		logg.Error(ctx, "failed to count users", err)
		os.Exit(1)
	}
	if count > 0 {
		logg.Info(ctx, "users already exist, nothing to seed")
		return
	}

	hash, err := security.HashPassword(*password, cfg.Password)
	if err != nil {
		logg.Error(ctx, "failed to hash bootstrap password", err)
		os.Exit(1)
	}

	created, err := repo.Create(ctx, users.CreateUserDTO{
		Email:        *email,
		PasswordHash: hash,
		Name:         *name,
		Role:         enums.UserRoleAdmin,
	})
	if err != nil {
		logg.Error(ctx, "failed to create bootstrap admin", err)
		os.Exit(1)
	}

	logg.Info(logg.WithFields(ctx, map[string]any{"user_id": created.ID.String()}), "bootstrap admin created")
}

package main

import (
	"context"
	"log"
	"os"

	"userauth_app/internal/cli"
	"userauth_app/internal/config"
	"userauth_app/internal/feature/auth/adapters"
	"userauth_app/internal/feature/auth/usecase"
	"userauth_app/internal/logging"
	"userauth_app/internal/platform/db"
	"userauth_app/internal/platform/hash"
	"userauth_app/internal/platform/kvstore"
)

func main() {
	cfg := config.LoadFromEnv()
	logger := logging.New(os.Stderr, cfg.LogLevel)
	ctx := context.Background()

	// DB (embedded SQLite, migrated idempotently)
	gdb, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	// Repository / stores
	userRepo := adapters.NewUserSQLite(gdb)
	sessionStore := kvstore.NewSQLite(gdb)

	// Usecase
	authSvc := usecase.NewAuthService(userRepo, sessionStore, hash.NewBcrypt(), logger)

	// Session restoration runs exactly once, before any shell interaction.
	if err := authSvc.Restore(ctx); err != nil {
		logger.Warn(ctx, "session restore failed, continuing anonymous", "error", err)
	}

	app := cli.NewApp(authSvc, os.Stdin, os.Stdout, logger)
	app.Run(ctx)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"workorders/cmd"
	httpadapter "workorders/internal/adapters/in/http"
	"workorders/internal/adapters/out/postgres"
	"workorders/internal/adapters/out/postgres/fixtures"
	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	configs := getConfigs()

	db, err := postgres.Connect(ctx, postgres.DSN(
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	))
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := prepareDatabase(ctx, db, configs, logger); err != nil {
		log.Fatalf("Error preparing database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err := startWebServer(ctx, app, configs.HTTPPort); err != nil {
		log.Errorf("HTTP server stopped: %v", err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	return cmd.Config{
		HTTPPort:            envOrDefault("HTTP_PORT", "8080"),
		DBHost:              envOrDefault("DB_HOST", "localhost"),
		DBPort:              envOrDefault("DB_PORT", "5432"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBSslMode:           envOrDefault("DB_SSLMODE", "disable"),
		SeedFixtures:        envBool("SEED_FIXTURES"),
		OverdueScanSchedule: envOrDefault("OVERDUE_SCAN_SCHEDULE", jobs.DefaultOverdueScanSchedule),
		ConflictRetries:     envUint("CONFLICT_RETRIES", commands.DefaultConflictRetries),
	}
}

func envOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func envBool(key string) bool {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return false
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return parsed
}

func envUint(key string, fallback uint64) uint64 {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return parsed
}

func prepareDatabase(ctx context.Context, db *gorm.DB, configs cmd.Config, logger *slog.Logger) error {
	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if !configs.SeedFixtures {
		return nil
	}

	seeded, err := fixtures.Seed(ctx, db, time.Now())
	if err != nil {
		return fmt.Errorf("seed fixtures: %w", err)
	}
	logger.InfoContext(ctx, "Fixtures seeded", "orders", seeded)
	return nil
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	if err := httpadapter.Register(e, app.CreateHTTPServer()); err != nil {
		return fmt.Errorf("register HTTP handlers: %w", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}

	return runErr
}

package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/saiuttej/books-backend/internal/adapters/database/pgsql"
	"github.com/saiuttej/books-backend/internal/core/services"
	"github.com/saiuttej/books-backend/internal/handlers"
	"github.com/saiuttej/books-backend/internal/middleware"
	"github.com/saiuttej/books-backend/internal/platform/config"
	"github.com/saiuttej/books-backend/internal/platform/database"
)

// @title Books Backend API
// @version 1.0
// @description Multi-tenant invoicing and quoting backend.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(repos, cfg)
	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending database migrations through a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}
	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Database migrations applied successfully")
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	return dbErr
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", middleware.OrganizationHeader)
	return corsCfg
}

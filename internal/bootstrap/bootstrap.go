package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/clock"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAudit "github.com/acadex/registry/internal/app/audit"
	appControllers "github.com/acadex/registry/internal/app/controllers"
	appMigrations "github.com/acadex/registry/internal/app/migrations"
	"github.com/acadex/registry/internal/app/models/dto"
	appRepos "github.com/acadex/registry/internal/app/repositories"
	appRoutes "github.com/acadex/registry/internal/app/routes"
	appServices "github.com/acadex/registry/internal/app/services"
	"github.com/acadex/registry/internal/config"
	"github.com/acadex/registry/internal/db"
	appMiddleware "github.com/acadex/registry/internal/middleware"
	pkgAuth "github.com/acadex/registry/internal/pkg/auth"
	"github.com/acadex/registry/internal/pkg/logger"
	"github.com/acadex/registry/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services             *appServices.Services
	StudentController    *appControllers.StudentController
	CourseController     *appControllers.CourseController
	FacultyController    *appControllers.FacultyController
	EnrollmentController *appControllers.EnrollmentController
	PaymentController    *appControllers.PaymentController
	ActorMiddleware      *appMiddleware.ActorMiddleware
	Repos                *appRepos.Repositories
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	// Create default data after migrations
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer seedCancel()
	if err := seed.CreateDefaultData(seedCtx, dbPool, lgr); err != nil {
		lgr.Warn().Err(err).Msg("Errors occurred while creating default data")
	}

	return database, nil
}

// BuildDependencies wires repositories, the audit recorder, services,
// controllers and middleware.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	repos := appRepos.NewRepositories(database.Pool)

	wallClock := clock.WallClock
	recorder := appAudit.NewRecorder(repos.AuditRepository, appAudit.DefaultTrackedFields(), wallClock)

	services := appServices.NewServices(database, repos, recorder, wallClock)

	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Auth.Secret,
		TokenIssuer: cfg.Auth.Issuer,
	})
	if !jwtService.Enabled() {
		lgr.Warn().Msg("Actor attribution disabled: no auth secret configured")
	}

	deps := &Dependencies{
		Services:             services,
		StudentController:    appControllers.NewStudentController(services.StudentService),
		CourseController:     appControllers.NewCourseController(services.CourseService),
		FacultyController:    appControllers.NewFacultyController(services.FacultyService),
		EnrollmentController: appControllers.NewEnrollmentController(services.EnrollmentService),
		PaymentController:    appControllers.NewPaymentController(services.PaymentService),
		ActorMiddleware:      appMiddleware.NewActorMiddleware(jwtService),
		Repos:                repos,
		Logger:               lgr,
	}

	return deps, nil
}

// SetupRouter builds the gin engine and registers all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := dto.RegisterCustomValidations(); err != nil {
		lgr.Warn().Err(err).Msg("Failed to register custom validations")
	}

	router := gin.New()
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(
		router,
		deps.StudentController,
		deps.CourseController,
		deps.FacultyController,
		deps.EnrollmentController,
		deps.PaymentController,
		deps.ActorMiddleware,
	)

	lgr.Info().Msg("Router configured")
	return router
}

package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/tanvir-rahman/studentinfo/internal/app/controllers"
	"github.com/tanvir-rahman/studentinfo/internal/app/report"
	appRepos "github.com/tanvir-rahman/studentinfo/internal/app/repositories"
	appRoutes "github.com/tanvir-rahman/studentinfo/internal/app/routes"
	"github.com/tanvir-rahman/studentinfo/internal/app/schema"
	appServices "github.com/tanvir-rahman/studentinfo/internal/app/services"
	"github.com/tanvir-rahman/studentinfo/internal/config"
	"github.com/tanvir-rahman/studentinfo/internal/db"
	appMiddleware "github.com/tanvir-rahman/studentinfo/internal/middleware"
	"github.com/tanvir-rahman/studentinfo/internal/pkg/logger"
	"github.com/tanvir-rahman/studentinfo/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                *appRepos.Repositories
	Services             *appServices.Services
	StudentController    *appControllers.StudentController
	CourseController     *appControllers.CourseController
	EnrollmentController *appControllers.EnrollmentController
	RecordController     *appControllers.RecordController
	ReportController     *appControllers.ReportController
	Exporter             *report.Exporter
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

// SetupDatabase opens the store, ensures the schema and seeds initial data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.SQLiteDB, error) {
	lgr.Info().Str("path", cfg.Database.Path).Msg("Opening database...")
	database, err := db.NewSQLiteDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// A broken schema leaves the whole application unusable, so any failure
	// here is fatal to startup.
	if err := schema.Ensure(ctx, database.DB); err != nil {
		lgr.Error().Err(err).Msg("Schema creation failed")
		database.Close()
		return nil, fmt.Errorf("schema creation failed: %w", err)
	}
	lgr.Info().Msg("Database schema ensured.")

	if err := seed.IfEmpty(ctx, database, lgr); err != nil {
		lgr.Error().Err(err).Msg("Seeding initial data failed")
		database.Close()
		return nil, fmt.Errorf("seeding initial data failed: %w", err)
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.SQLiteDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.DB)

	var err error
	deps.Exporter, err = report.NewExporter(cfg.Report.ExportDir)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize report exporter")
		return nil, fmt.Errorf("failed to initialize report exporter: %w", err)
	}

	deps.Services = appServices.NewServices(database, deps.Repos, deps.Exporter)

	deps.StudentController = appControllers.NewStudentController(deps.Services.Student)
	deps.CourseController = appControllers.NewCourseController(deps.Services.Course)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.Services.Enrollment)
	deps.RecordController = appControllers.NewRecordController(deps.Services.Grade, deps.Services.Attendance)
	deps.ReportController = appControllers.NewReportController(deps.Services.Report)

	return deps, nil
}

// SetupRouter configures the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(
		router,
		deps.StudentController,
		deps.CourseController,
		deps.EnrollmentController,
		deps.RecordController,
		deps.ReportController,
	)

	lgr.Info().Msg("Router configured")
	return router
}

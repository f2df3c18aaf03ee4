package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appControllers "github.com/yigit/alumni/internal/app/controllers"
	appMigrations "github.com/yigit/alumni/internal/app/migrations"
	appRepos "github.com/yigit/alumni/internal/app/repositories"
	appRoutes "github.com/yigit/alumni/internal/app/routes"
	appServices "github.com/yigit/alumni/internal/app/services"
	"github.com/yigit/alumni/internal/config"
	"github.com/yigit/alumni/internal/db"
	appMiddleware "github.com/yigit/alumni/internal/middleware"
	"github.com/yigit/alumni/internal/pkg/auth"
	"github.com/yigit/alumni/internal/pkg/logger"
	"github.com/yigit/alumni/internal/seed"
)

// ServiceName tags every log line
const ServiceName = "alumni-api"

// MetricsPath serves the Prometheus registry
const MetricsPath = "/metrics"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                       *appRepos.Repositories
	Services                    *appServices.Services
	MentorshipProgramController *appControllers.MentorshipProgramController
	UserController              *appControllers.UserController
	HealthController            *appControllers.HealthController
	Registry                    *prometheus.Registry
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	format := logger.FormatConsole
	if strings.EqualFold(cfg.Logging.Format, string(logger.FormatJSON)) {
		format = logger.FormatJSON
	}
	logger.Configure(logger.Config{
		Level:   cfg.Logging.Level,
		Format:  format,
		Service: ServiceName,
	})

	logger.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", string(format)).Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase connects to PostgreSQL, applies pending migrations and
// seeds demo data when the configuration asks for it.
func SetupDatabase(ctx context.Context, cfg *config.Config) (*db.PostgresDB, error) {
	logger.Info().Msg("Establishing database connection...")
	postgresDB, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	logger.Info().Msg("Database connection successfully established.")

	if cfg.Database.AutoMigrate {
		if err := runMigrations(cfg); err != nil {
			postgresDB.Close()
			return nil, err
		}
	}

	if cfg.Database.Seed {
		hasher := auth.NewPasswordHasher(cfg.Security.BcryptCost)
		seedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		if err := seed.CreateDemoData(seedCtx, postgresDB.Pool, hasher); err != nil {
			logger.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return postgresDB, nil
}

func runMigrations(cfg *config.Config) error {
	logger.Info().Msg("Running database migrations...")
	migrator, err := appMigrations.NewMigrator(cfg.GetPostgresConnectionString())
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logger.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	logger.Info().Uint("version", version).Bool("dirty", dirty).Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, postgresDB *db.PostgresDB) *Dependencies {
	deps := &Dependencies{}

	deps.Repos = appRepos.NewRepositories(postgresDB.Pool, appServices.MentorColumns())
	deps.Services = appServices.NewServices(deps.Repos, auth.NewPasswordHasher(cfg.Security.BcryptCost))

	opts := appControllers.Options{
		StrictPayloads: cfg.Validation.StrictPayloads,
		PageSize:       cfg.Pagination.PageSize,
	}
	deps.MentorshipProgramController = appControllers.NewMentorshipProgramController(deps.Services.MentorshipProgram, opts)
	deps.UserController = appControllers.NewUserController(deps.Services.User, opts)
	deps.HealthController = appControllers.NewHealthController(postgresDB)

	deps.Registry = NewRegistry()

	return deps
}

// NewRegistry returns a Prometheus registry carrying the runtime collectors
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// corsConfig turns the configured origins into a gin-contrib/cors config.
// A "*" entry allows every origin.
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", appMiddleware.RequestIDHeader},
		ExposeHeaders: []string{appMiddleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	}
	return c
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	switch {
	case cfg.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case strings.EqualFold(cfg.Server.Mode, "test"):
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	logger.Info().Str("ginMode", gin.Mode()).Msg("Gin mode set")

	router := gin.New()
	router.Use(
		appMiddleware.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		appMiddleware.NewMetrics(deps.Registry).Handler(),
		cors.New(corsConfig(cfg.Server.CORSOrigins)),
	)
	router.NoRoute(appMiddleware.NoRoute)

	router.GET(MetricsPath, gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{Registry: deps.Registry})))

	appRoutes.SetupRouter(router,
		deps.MentorshipProgramController,
		deps.UserController,
		deps.HealthController,
	)

	return router
}

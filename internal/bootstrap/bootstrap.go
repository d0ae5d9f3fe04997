package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/eduhub/internal/app/controllers"
	appMigrations "github.com/yigit/eduhub/internal/app/migrations"
	appRepos "github.com/yigit/eduhub/internal/app/repositories"
	appRoutes "github.com/yigit/eduhub/internal/app/routes"
	appServices "github.com/yigit/eduhub/internal/app/services"
	"github.com/yigit/eduhub/internal/config"
	"github.com/yigit/eduhub/internal/db"
	appMiddleware "github.com/yigit/eduhub/internal/middleware"
	pkgAuth "github.com/yigit/eduhub/internal/pkg/auth"
	"github.com/yigit/eduhub/internal/pkg/helpers"
	"github.com/yigit/eduhub/internal/pkg/logger"
	"github.com/yigit/eduhub/internal/seed"
)

// Databases holds both store handles
type Databases struct {
	Mongo *db.MongoDB
	MySQL *db.MySQLDB
}

// Close releases both stores
func (d *Databases) Close(ctx context.Context) {
	if d.Mongo != nil {
		if err := d.Mongo.Close(ctx); err != nil {
			logger.Error().Err(err).Msg("Error disconnecting mongo")
		}
	}
	if d.MySQL != nil {
		if err := d.MySQL.Close(); err != nil {
			logger.Error().Err(err).Msg("Error closing mysql")
		}
	}
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    *appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware // nil unless the admin guard is enabled
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
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

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabases connects both stores, applies document store migrations and seeds default data.
func SetupDatabases(cfg *config.Config, lgr zerolog.Logger) (*Databases, error) {
	lgr.Info().Msg("Establishing mongo connection...")
	mongoDB, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to mongo")
		return nil, err
	}
	lgr.Info().Str("database", cfg.Mongo.Database).Msg("Mongo connection successfully established.")

	lgr.Info().Msg("Establishing mysql connection...")
	mysqlDB, err := db.NewMySQLDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to mysql")
		_ = mongoDB.Close(context.Background())
		return nil, err
	}
	lgr.Info().Msg("MySQL connection successfully established.")

	dbs := &Databases{Mongo: mongoDB, MySQL: mysqlDB}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running document store migrations...")
	if err := appMigrations.NewMigrator(mongoDB.Database).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbs.Close(context.Background())
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Document store migrations successfully applied.")

	if err := seed.CreateDefaultData(ctx, cfg, appRepos.NewUserRepository(mongoDB.Database), lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbs, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbs *Databases, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbs.Mongo.Database, dbs.MySQL)
	deps.Services = appServices.NewServices(deps.Repos)

	if cfg.JWT.ProtectAdmin {
		deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
			SecretKey:      cfg.JWT.Secret,
			AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
			TokenIssuer:    cfg.JWT.Issuer,
		})
		deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
		lgr.Info().Msg("Admin routes require a bearer token")
	}

	deps.Controllers = &appRoutes.Controllers{
		User:       appControllers.NewUserController(deps.Services.UserService),
		Discussion: appControllers.NewDiscussionController(deps.Services.DiscussionService),
		Event:      appControllers.NewEventController(deps.Services.EventService),
		Article:    appControllers.NewArticleController(deps.Services.ArticleService),
		Question:   appControllers.NewQuestionController(deps.Services.QuestionService),
		Dashboard:  appControllers.NewDashboardController(deps.Services.DashboardService, deps.Services.CatalogService),
		Health: appControllers.NewHealthController(map[string]appControllers.Pinger{
			"mongo": dbs.Mongo.Ping,
			"mysql": dbs.MySQL.Ping,
		}),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}

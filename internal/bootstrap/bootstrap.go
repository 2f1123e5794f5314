package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/gradchat/gradchat/internal/app/controllers"
	appMigrations "github.com/gradchat/gradchat/internal/app/migrations"
	appRepos "github.com/gradchat/gradchat/internal/app/repositories"
	appRoutes "github.com/gradchat/gradchat/internal/app/routes"
	appServices "github.com/gradchat/gradchat/internal/app/services"
	"github.com/gradchat/gradchat/internal/config"
	"github.com/gradchat/gradchat/internal/db"
	appMiddleware "github.com/gradchat/gradchat/internal/middleware"
	pkgAuth "github.com/gradchat/gradchat/internal/pkg/auth"
	"github.com/gradchat/gradchat/internal/pkg/completion"
	"github.com/gradchat/gradchat/internal/pkg/filestorage"
	"github.com/gradchat/gradchat/internal/pkg/helpers"
	"github.com/gradchat/gradchat/internal/pkg/logger"
	"github.com/gradchat/gradchat/internal/pkg/validation"
	"github.com/gradchat/gradchat/internal/pkg/websocket"
	"github.com/gradchat/gradchat/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         *appServices.AuthService
	IdentityService     *appServices.IdentityService
	ProfileService      *appServices.ProfileService
	FeedService         *appServices.FeedService
	DirectoryService    *appServices.DirectoryService
	ChatService         *appServices.ChatService
	AuthController      *appControllers.AuthController
	ProfileController   *appControllers.ProfileController
	FeedController      *appControllers.FeedController
	DirectoryController *appControllers.DirectoryController
	ChatController      *appControllers.ChatController
	UploadController    *appControllers.UploadController
	WSHandler           *websocket.Handler
	Hub                 *websocket.Hub
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	Logger              zerolog.Logger
	FileStorage         *filestorage.LocalStorage
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

	lgr := log.Logger // Get the configured global logger
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

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Create Default Data (after migrations), development mode only
	if strings.ToLower(cfg.Server.Mode) != "production" {
		if err := seed.CreateDefaultData(context.Background(), database.Pool, lgr); err != nil {
			// Log the error but don't necessarily fail the startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	// Purge expired and long-revoked refresh tokens on startup
	if deleted, err := deps.Repos.TokenRepository.CleanupExpiredTokens(context.Background()); err != nil {
		lgr.Warn().Err(err).Msg("Refresh token cleanup failed, proceeding anyway")
	} else if deleted > 0 {
		lgr.Info().Int64("deleted", deleted).Msg("Stale refresh tokens purged")
	}

	// Initialize File Storage
	// The baseURL must match the static file serving endpoint
	var err error
	baseUrl := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseUrl + "/uploads"
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	// Live event feed hub
	deps.Hub = websocket.NewHub(lgr)

	// Completion client for the mentor chatbot
	completionClient := completion.NewClient(completion.Config{
		APIKey:      cfg.Completion.APIKey,
		BaseURL:     cfg.Completion.BaseURL,
		Model:       cfg.Completion.Model,
		MaxTokens:   cfg.Completion.MaxTokens,
		Temperature: cfg.Completion.Temperature,
		Timeout:     helpers.ParseDuration(cfg.Completion.Timeout, 30*time.Second),
	})

	// Initialize services
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.AccountRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.IdentityService = appServices.NewIdentityService(deps.Repos.ProfileRepository, lgr)
	deps.ProfileService = appServices.NewProfileService(deps.Repos.ProfileRepository, deps.IdentityService, lgr)
	deps.FeedService = appServices.NewFeedService(
		deps.Repos.PostRepository,
		deps.Repos.EventRepository,
		deps.Hub,
		lgr,
	)
	deps.DirectoryService = appServices.NewDirectoryService(deps.Repos.ProfileRepository, lgr)
	deps.ChatService = appServices.NewChatService(completionClient, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	// Initialize controllers
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.ProfileController = appControllers.NewProfileController(deps.ProfileService, lgr)
	deps.FeedController = appControllers.NewFeedController(deps.FeedService, lgr)
	deps.DirectoryController = appControllers.NewDirectoryController(deps.DirectoryService, lgr)
	deps.ChatController = appControllers.NewChatController(deps.ChatService, lgr)
	deps.UploadController = appControllers.NewUploadController(deps.FileStorage, lgr)

	deps.WSHandler = websocket.NewHandler(deps.Hub, deps.Repos.EventRepository, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	// Register domain validators on Gin's binding engine
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.RegisterCustomValidators(v); err != nil {
			lgr.Error().Err(err).Msg("Failed to register custom validators")
		}
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.RequestMetrics())

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ProfileController,
		deps.FeedController,
		deps.DirectoryController,
		deps.ChatController,
		deps.UploadController,
		deps.WSHandler,
		deps.AuthMiddleware,
		cfg.Server.StoragePath,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}

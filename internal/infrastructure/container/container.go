package container

import (
	"fmt"
	"time"

	"github.com/JSharma2K/cofounded/internal/config"
	"github.com/JSharma2K/cofounded/internal/delivery/http"
	"github.com/JSharma2K/cofounded/internal/delivery/http/handler"
	"github.com/JSharma2K/cofounded/internal/delivery/http/middleware"
	"github.com/JSharma2K/cofounded/internal/infrastructure/database"
	"github.com/JSharma2K/cofounded/internal/infrastructure/gemini"
	"github.com/JSharma2K/cofounded/internal/infrastructure/mail"
	"github.com/JSharma2K/cofounded/internal/infrastructure/realtime"
	"github.com/JSharma2K/cofounded/internal/infrastructure/server"
	"github.com/JSharma2K/cofounded/internal/repository/postgres"
	redisrepo "github.com/JSharma2K/cofounded/internal/repository/redis"
	"github.com/JSharma2K/cofounded/internal/usecase/auth"
	"github.com/JSharma2K/cofounded/internal/usecase/feed"
	"github.com/JSharma2K/cofounded/internal/usecase/match"
	"github.com/JSharma2K/cofounded/internal/usecase/profile"
	"github.com/JSharma2K/cofounded/internal/usecase/report"
	"github.com/JSharma2K/cofounded/internal/usecase/swipe"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Hub    *realtime.Hub
	Gemini *gemini.GeminiClient
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize Gemini client. Match intro suggestions degrade to a
	// built-in fallback without it.
	geminiClient, err := gemini.NewGeminiClient(cfg.GeminiAPIKey)
	if err != nil {
		fmt.Printf("Warning: Failed to initialize Gemini client: %v\n", err)
		geminiClient = nil
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	intentRepo := postgres.NewIntentRepository(db)
	swipeRepo := postgres.NewSwipeRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	codeRepo := redisrepo.NewCodeRepository(redisClient)
	sessionRepo := redisrepo.NewSessionRepository(redisClient)

	// Initialize realtime plumbing
	publisher := realtime.NewRedisPublisher(redisClient)
	hub := realtime.NewHub(redisClient)

	mailer := mail.New(&cfg.Mail)

	// Initialize use cases
	authUseCase := auth.NewUseCase(
		userRepo,
		codeRepo,
		sessionRepo,
		mailer,
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiryMinutes)*time.Minute,
		cfg.OTP.TTL,
	)

	profileUseCase := profile.NewUseCase(
		userRepo,
		profileRepo,
		intentRepo,
	)

	feedUseCase := feed.NewUseCase(
		userRepo,
		profileRepo,
		intentRepo,
	)

	swipeUseCase := swipe.NewUseCase(
		swipeRepo,
		matchRepo,
		userRepo,
		profileRepo,
		publisher,
		geminiClient,
	)

	matchUseCase := match.NewUseCase(
		matchRepo,
		messageRepo,
		userRepo,
		profileRepo,
		publisher,
	)

	reportUseCase := report.NewUseCase(
		reportRepo,
		userRepo,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	feedHandler := handler.NewFeedHandler(feedUseCase)
	swipeHandler := handler.NewSwipeHandler(swipeUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	reportHandler := handler.NewReportHandler(reportUseCase)
	wsHandler := handler.NewWSHandler(hub, matchUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		profileHandler,
		feedHandler,
		swipeHandler,
		matchHandler,
		reportHandler,
		wsHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Hub:    hub,
		Gemini: geminiClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Hub != nil {
		c.Hub.Close()
	}

	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			fmt.Printf("Error closing Redis: %v\n", err)
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}

package app

import (
	"context"
	"errors"
	"fmt"

	"movieblend_backend/database"
	"movieblend_backend/internal/auth"
	"movieblend_backend/internal/config"
	"movieblend_backend/internal/email"
	"movieblend_backend/internal/handlers"
	"movieblend_backend/internal/logger"
	"movieblend_backend/internal/middleware"
	"movieblend_backend/internal/models"
	"movieblend_backend/internal/repositories"
	"movieblend_backend/internal/routes"
	"movieblend_backend/internal/services"
	"movieblend_backend/internal/validator"
	"movieblend_backend/internal/workers"
	"movieblend_backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	if err := database.SeedGenres(gormDB); err != nil {
		logger.Fatal("Failed to seed genre dictionary", "error", err)
	}
	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// 1. Инициализируем WebSocket-менеджер (он же FriendshipNotifier)
	wsManager := ws.NewWebSocketManager()
	go wsManager.Run()
	wsHandler := ws.NewWebSocketHandler(wsManager)

	// 2. Инициализируем сервисы
	serviceContainer := initializeServices(cfg, gormDB, wsManager)

	// 3. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer)

	// 4. Запускаем фоновый пересчет жанровых счетчиков
	prefsWorker := workers.NewPrefsWorker(
		serviceContainer.PlaylistService,
		repositories.NewGenrePrefRepository(gormDB),
		cfg.Blend.WorkerInterval,
	)
	prefsWorker.Start(context.Background())

	// 5. Инициализируем Gin и регистрируем маршруты
	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, notifier services.FriendshipNotifier) *services.ServiceContainer {
	emailService := buildEmailProvider(cfg)

	// --- Инициализация репозиториев ---
	userRepo := repositories.NewUserRepository(gormDB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(gormDB)
	friendshipRepo := repositories.NewFriendshipRepository(gormDB)
	genreRepo := repositories.NewGenreRepository(gormDB)
	movieRepo := repositories.NewMovieRepository(gormDB)
	playlistRepo := repositories.NewPlaylistRepository(gormDB)

	// --- Инициализация сервисов ---
	authService := services.NewAuthService(userRepo, playlistRepo, refreshTokenRepo, emailService)
	userService := services.NewUserService(userRepo)
	friendshipService := services.NewFriendshipService(friendshipRepo, userRepo, emailService, notifier)
	movieService := services.NewMovieService(movieRepo, genreRepo)
	playlistService := services.NewPlaylistService(playlistRepo, movieRepo)
	blendService := services.NewBlendService(playlistService, friendshipRepo, genreRepo, movieRepo)

	return &services.ServiceContainer{
		AuthService:       authService,
		UserService:       userService,
		FriendshipService: friendshipService,
		MovieService:      movieService,
		PlaylistService:   playlistService,
		BlendService:      blendService,
		EmailService:      emailService,
	}
}

// buildEmailProvider собирает SMTP-провайдер из конфига.
// Без настроенного SMTP-хоста письма глушатся моком.
func buildEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP host is not configured, using mock email provider")
		return &MockEmailProvider{}
	}

	smtpConfig := email.DefaultConfig()
	smtpConfig.Host = cfg.Email.SMTPHost
	smtpConfig.Port = cfg.Email.SMTPPort
	smtpConfig.Username = cfg.Email.SMTPUsername
	smtpConfig.Password = cfg.Email.SMTPPassword
	smtpConfig.FromEmail = cfg.Email.FromEmail
	smtpConfig.FromName = cfg.Email.FromName
	smtpConfig.UseTLS = cfg.Email.UseTLS

	templateManager := email.NewTemplateManager()
	if cfg.Email.TemplatesDir != "" {
		if err := templateManager.LoadTemplates(cfg.Email.TemplatesDir); err != nil {
			logger.Warn("Failed to load email templates, using built-in", "error", err.Error())
		}
	}

	return email.NewSMTPProvider(smtpConfig, templateManager)
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:       handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler:       handlers.NewUserHandler(baseHandler, services.UserService, services.AuthService),
		FriendshipHandler: handlers.NewFriendshipHandler(baseHandler, services.FriendshipService),
		MovieHandler:      handlers.NewMovieHandler(baseHandler, services.MovieService),
		PlaylistHandler:   handlers.NewPlaylistHandler(baseHandler, services.PlaylistService),
		BlendHandler:      handlers.NewBlendHandler(baseHandler, services.BlendService),
		HealthHandler:     handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var adminUser models.User
	result := tx.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		tx.Rollback()
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Username:     "admin",
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}

	if err := tx.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("✅ Successfully created first admin user", "email", adminEmail)

	return tx.Commit().Error
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio_backend/database"
	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/email"
	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/imageprocessor"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/routes"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/storage"
	"portfolio_backend/internal/validator"
	"portfolio_backend/internal/workers"
	"portfolio_backend/pkg/apperrors"
	"portfolio_backend/web"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	apperrors.SetDebug(cfg.IsDevelopment())
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Connect(cfg.Database, cfg.Server.Env)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	logger.Info("Database connected")

	provider, err := newMailProvider(cfg.Email)
	if err != nil {
		logger.Fatal("Failed to initialize email provider", "error", err)
	}
	dispatcher := workers.NewMailDispatcher(provider, cfg.Email.QueueSize)
	dispatcher.Start(context.Background())

	ginRouter, err := SetupRouter(cfg, gormDB, dispatcher)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              address,
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info(fmt.Sprintf("Server starting on %s", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	// Письма, принятые до остановки, отправляются
	dispatcher.Stop()
	if err := provider.Close(); err != nil {
		logger.Error("Failed to close email provider", "error", err)
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Failed to close database", "error", err)
	}
	logger.Info("Server stopped")
}

// SetupRouter собирает сервисы, хэндлеры и маршруты поверх готового соединения с БД
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, mailQueue services.MailQueue) (*gin.Engine, error) {
	storageInstance, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type, "base_path", cfg.Storage.BasePath)

	customValidator := validator.New()

	// 1. Сервисы
	serviceContainer, err := initializeServices(cfg, customValidator, storageInstance, mailQueue)
	if err != nil {
		return nil, err
	}

	// 2. Хэндлеры
	appHandlers := initializeHandlers(cfg, customValidator, serviceContainer)

	// 3. Gin и шаблоны
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	ginRouter := initializeGinRouter(cfg, gormDB)
	ginRouter.HTMLRender = renderer

	// 4. Маршруты
	routes.RegisterRoutes(ginRouter, appHandlers, middleware.AdminAuthMiddleware(serviceContainer.AuthService))

	return ginRouter, nil
}

func initializeServices(
	cfg *config.Config,
	v *validator.Validator,
	storageInstance storage.Storage,
	mailQueue services.MailQueue,
) (*services.ServiceContainer, error) {
	// --- Репозитории ---
	experienceRepo := repositories.NewExperienceRepository()
	educationRepo := repositories.NewEducationRepository()
	projectRepo := repositories.NewProjectRepository()
	serviceRepo := repositories.NewServiceRepository()
	contactRepo := repositories.NewContactRepository()

	// --- Письма и токены ---
	contactMessages, err := email.NewContactMessages(cfg.Site.OwnerName, cfg.Site.OperatorEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare contact emails: %w", err)
	}
	if cfg.Site.OperatorEmail == "" {
		logger.Warn("SITE_OPERATOR_EMAIL is not set, operator notifications will not be delivered")
	}

	secret := cfg.JWT.Secret
	if secret == "" {
		logger.Warn("JWT_SECRET is not set, using a random secret; admin tokens will not survive a restart")
		secret = uuid.NewString() + uuid.NewString()
	}
	tokens := auth.NewTokenManager(secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	authService, err := services.NewAuthService(cfg.Admin, tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize admin auth: %w", err)
	}

	// --- Сервисы ---
	return &services.ServiceContainer{
		ContentService: services.NewContentService(
			experienceRepo, educationRepo, projectRepo, serviceRepo,
			cfg.Site.ProjectsPerPage, cfg.Site.HomeProjects,
		),
		ContactService:      services.NewContactService(contactRepo, v, contactMessages, mailQueue),
		ExperienceService:   services.NewExperienceService(experienceRepo),
		EducationService:    services.NewEducationService(educationRepo),
		ProjectService:      services.NewProjectService(projectRepo),
		ServiceEntryService: services.NewServiceEntryService(serviceRepo),
		AuthService:         authService,
		FileService:         services.NewFileService(storageInstance, cfg.Site.ResumeFile, cfg.Storage.MaxSize, imageprocessor.NewProcessor(85)),
	}, nil
}

func initializeHandlers(cfg *config.Config, v *validator.Validator, s *services.ServiceContainer) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(v)

	return &handlers.AppHandlers{
		PageHandler:       handlers.NewPageHandler(baseHandler, s.ContentService, s.ContactService, s.FileService, cfg.Site),
		HealthHandler:     handlers.NewHealthHandler(baseHandler),
		AuthHandler:       handlers.NewAuthHandler(baseHandler, s.AuthService),
		ExperienceHandler: handlers.NewExperienceHandler(baseHandler, s.ExperienceService),
		EducationHandler:  handlers.NewEducationHandler(baseHandler, s.EducationService),
		ProjectHandler:    handlers.NewProjectHandler(baseHandler, s.ProjectService),
		ServiceHandler:    handlers.NewServiceHandler(baseHandler, s.ServiceEntryService),
		ContactHandler:    handlers.NewContactHandler(baseHandler, s.ContactService),
		FileHandler:       handlers.NewFileHandler(baseHandler, s.FileService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	router.MaxMultipartMemory = cfg.Storage.MaxSize + 1<<20
	return router
}

// newMailProvider: SMTP через gomail или запись писем в лог, если почта выключена
func newMailProvider(cfg config.EmailConfig) (email.Provider, error) {
	if !cfg.Enabled {
		logger.Warn("Email is disabled, contact notifications will be written to the log")
		return email.NewLogProvider(), nil
	}

	provider := email.NewGomailProvider(email.FromAppConfig(cfg))
	if err := provider.Validate(); err != nil {
		return nil, err
	}
	logger.Info("Email provider initialized", "host", cfg.SMTPHost, "port", cfg.SMTPPort)
	return provider, nil
}

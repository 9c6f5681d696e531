package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bank-portal.backend/internal/config"
	"bank-portal.backend/internal/infrastructure/jobs"
	"bank-portal.backend/internal/infrastructure/repositories"
	"bank-portal.backend/internal/interfaces/http/handlers"
	"bank-portal.backend/internal/interfaces/http/middleware"
	"bank-portal.backend/internal/interfaces/ws"
	"bank-portal.backend/internal/usecases"
	"bank-portal.backend/pkg/jwt"
	"bank-portal.backend/pkg/logger"
	"bank-portal.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize websocket ticket service
	ticketService := jwt.NewTicketService(cfg.WS.TicketSecret, cfg.WS.TicketTTL)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	loanRepo := repositories.NewLoanRepository(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Session.EncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize websocket hub
	hub := ws.NewHub()

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, cfg.Admin)
	adminUsecase := usecases.NewAdminUsecase(userRepo, accountRepo)
	accountUsecase := usecases.NewAccountUsecase(accountRepo, transactionRepo)
	messageUsecase := usecases.NewMessageUsecase(messageRepo, userRepo, hub, cfg.Admin)
	loanUsecase := usecases.NewLoanUsecase(loanRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, sessionStore, cfg.Session)
	adminHandler := handlers.NewAdminHandler(adminUsecase, messageUsecase)
	accountHandler := handlers.NewAccountHandler(accountUsecase)
	messageHandler := handlers.NewMessageHandler(messageUsecase)
	loanHandler := handlers.NewLoanHandler(loanUsecase)
	wsTicketHandler := handlers.NewWSTicketHandler(ticketService)
	wsHandler := ws.NewHandler(hub, ticketService, cfg.WS.AllowedOrigins)

	// Auth middleware
	requireAuth := middleware.RequireAuth(sessionStore)
	requireAdmin := middleware.RequireAdmin()
	requireApproved := middleware.RequireApproved(userRepo)

	// Start background workers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go hub.Run(ctx)

	provisioningJob := jobs.NewAccountProvisioningJob(userRepo, adminUsecase)
	go provisioningJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r, cfg.WS.AllowedOrigins)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		authHandler:     authHandler,
		adminHandler:    adminHandler,
		accountHandler:  accountHandler,
		messageHandler:  messageHandler,
		loanHandler:     loanHandler,
		wsTicketHandler: wsTicketHandler,
		wsHandler:       wsHandler,
		requireAuth:     requireAuth,
		requireAdmin:    requireAdmin,
		requireApproved: requireApproved,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		provisioningJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 SPB Banking Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/libraryservice/backend/docs"
	"github.com/libraryservice/backend/internal/auth/identity"
	"github.com/libraryservice/backend/internal/auth/password"
	"github.com/libraryservice/backend/internal/auth/policy"
	"github.com/libraryservice/backend/internal/auth/token"
	"github.com/libraryservice/backend/internal/config"
	"github.com/libraryservice/backend/internal/logger"
	"github.com/libraryservice/backend/internal/repositories"
	"github.com/libraryservice/backend/internal/server"
	"github.com/libraryservice/backend/internal/services"
	"go.uber.org/zap"
)

// @title Library Service API
// @version 1.0
// @description API for library book lending and member management

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Library Service")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db, cfg.Migrations); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize auth components
	tokenService, err := token.NewService(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.AccessTokenExpiry)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize token service", zap.Error(err))
	}
	hasher := password.NewHasher(cfg.Security.BcryptCost)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, logger.Logger)
	bookRepo := repositories.NewBookRepository(db, logger.Logger)
	bookLogRepo := repositories.NewBookLogRepository(db, logger.Logger)

	resolver := identity.NewResolver(userRepo, hasher, logger.Logger)
	gate := policy.NewGate(tokenService, resolver, logger.Logger)

	// Initialize services
	authService := services.NewAuthService(userRepo, resolver, hasher, tokenService, logger.Logger)
	bookService := services.NewBookService(bookRepo, bookLogRepo, logger.Logger)
	memberService := services.NewMemberService(userRepo, bookRepo, bookLogRepo, hasher, logger.Logger)

	// Setup router
	router := server.NewRouter(server.Options{
		AllowedOrigins:         cfg.CORS.AllowedOrigins,
		RequestsPerMinute:      cfg.RateLimit.RequestsPerMinute,
		LoginRequestsPerMinute: cfg.RateLimit.LoginRequestsPerMinute,
	}, server.Dependencies{
		AuthService:   authService,
		BookService:   bookService,
		MemberService: memberService,
		Gate:          gate,
		DB:            db,
		Logger:        logger.Logger,
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations applies the SQL migrations found in dir
func runMigrations(db *sql.DB, dir string) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "library_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Try parent directory if running from cmd
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if _, err := os.Stat("../../" + dir); err == nil {
			dir = "../../" + dir
		}
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

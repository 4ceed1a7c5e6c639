package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/di"
	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/handler"
	appmw "github.com/SarvanMaurya123/JobPortalBackendcode/internal/middleware"
	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/migrations"
	"github.com/SarvanMaurya123/JobPortalBackendcode/pkg/config"
	"github.com/SarvanMaurya123/JobPortalBackendcode/pkg/database"
	"github.com/SarvanMaurya123/JobPortalBackendcode/pkg/logger"
	pkgmw "github.com/SarvanMaurya123/JobPortalBackendcode/pkg/middleware"
	"github.com/SarvanMaurya123/JobPortalBackendcode/pkg/telemetry"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(&logger.Config{
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting Job Portal API...")

	ctx := context.Background()

	// Initialize OpenTelemetry
	telemetryCfg := &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.App.Name,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
	}
	if _, err := telemetry.Init(ctx, telemetryCfg); err != nil {
		appLog.Warn(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	}
	defer telemetry.Shutdown(ctx)

	// Initialize database connection
	dbCfg := &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		ConnectTimeout:  5 * time.Second,
		MaxRetries:      3,
		RetryInterval:   1 * time.Second,
		EnableTracing:   cfg.OTel.Enabled,
	}
	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
	}
	defer db.Close()
	appLog.Info(fmt.Sprintf("Database connected (pool: min=%d, max=%d)", dbCfg.MinConns, dbCfg.MaxConns))

	// Apply schema migrations
	if err := migrations.Run(ctx, db.StdDB()); err != nil {
		appLog.Fatal(fmt.Sprintf("Migrations failed: %v", err))
	}

	// Require an explicit secret outside development
	jwtSecret := cfg.JWT.Secret
	if jwtSecret == "change-me-in-production" {
		if cfg.IsDevelopment() {
			appLog.Warn("ACCESS_TOKEN_SECRET not set, using dev-only default (NEVER use in production)")
		} else {
			appLog.Fatal("ACCESS_TOKEN_SECRET environment variable is required in production")
		}
	}

	// Build dependency injection container
	container := di.NewContainer(&di.ContainerConfig{
		DB:          db,
		Logger:      appLog,
		TokenSecret: jwtSecret,
		TokenIssuer: cfg.JWT.Issuer,
		TokenTTL:    cfg.JWT.AccessTokenTTL,
		SessionCookie: handler.SessionCookie{
			Name:   cfg.Cookie.Name,
			MaxAge: cfg.Cookie.MaxAge,
			Secure: cfg.IsProduction(),
		},
	})

	// Setup Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(pkgmw.RequestID())

	if cfg.OTel.Enabled {
		router.Use(telemetry.TracingMiddleware(cfg.App.Name))
		router.Use(telemetry.TraceHeaderMiddleware())
	}

	// Health check endpoints
	router.GET("/health", container.HealthHandler.Health)
	router.GET("/ready", container.HealthHandler.Ready)

	// API routes
	v1 := router.Group("/api/v1")
	{
		jobseeker := v1.Group("/jobseeker")
		{
			jobseeker.POST("/register", container.JobseekerHandler.Register)
			jobseeker.POST("/login", container.JobseekerHandler.Login)

			protected := jobseeker.Group("")
			protected.Use(appmw.RequireAuth(container.JobseekerAuth, cfg.Cookie.Name))
			{
				protected.POST("/logout", container.JobseekerHandler.Logout)
				protected.GET("/me", container.JobseekerHandler.Me)
			}
		}

		employer := v1.Group("/employer")
		{
			employer.POST("/register", container.EmployerHandler.Register)
			employer.POST("/login", container.EmployerHandler.Login)

			protected := employer.Group("")
			protected.Use(appmw.RequireAuth(container.EmployerAuth, cfg.Cookie.Name))
			{
				protected.POST("/logout", container.EmployerHandler.Logout)
				protected.GET("/me", container.EmployerHandler.Me)
			}
		}
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLog.Info(fmt.Sprintf("Job Portal API listening on %s", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal(fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	appLog.Info("Server exited gracefully")
}

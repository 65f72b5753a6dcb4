package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	"github.com/roamops/roamops/application/usecase/auth"
	"github.com/roamops/roamops/application/usecase/payroll"
	"github.com/roamops/roamops/infrastructure/adapter/postgres"
	"github.com/roamops/roamops/infrastructure/config"
	"github.com/roamops/roamops/infrastructure/http/handler"
	"github.com/roamops/roamops/infrastructure/http/middleware"
	"github.com/roamops/roamops/infrastructure/service/jwt"
	"github.com/roamops/roamops/infrastructure/service/lock"
	"github.com/roamops/roamops/infrastructure/service/logger"
	"github.com/roamops/roamops/infrastructure/service/password"
	"github.com/roamops/roamops/infrastructure/service/ratelimit"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	structuredLogger := logger.NewStructuredLogger(logger.LoggerConfig{
		Level:               cfg.LogLevel,
		Format:              cfg.LogFormat,
		CorrelationIDHeader: middleware.CorrelationIDHeader,
		ServiceName:         cfg.ServiceName,
	})
	structuredLogger.Info(ctx, "Application starting", map[string]interface{}{
		"env": cfg.Environment,
	})

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	structuredLogger.Info(ctx, "Database connection established", nil)

	redisOpt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}
	redisClient := redis.NewClient(redisOpt)
	defer redisClient.Close()

	redisCtx, redisCancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	structuredLogger.Info(ctx, "Redis connection established", nil)

	rateLimitService := ratelimit.NewRateLimitService(ratelimit.RateLimitConfig{
		Enabled:       cfg.RateLimitEnabled,
		IPAttempts:    cfg.RateLimitIPAttempts,
		IPWindow:      cfg.RateLimitIPWindow,
		UserAttempts:  cfg.RateLimitUserAttempts,
		UserWindow:    cfg.RateLimitUserWindow,
		BlockDuration: cfg.RateLimitBlockDuration,
	}, redisClient, structuredLogger)

	tokenService, err := jwt.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL)
	if err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	passwordService := password.NewBcryptPasswordService(10)

	store := postgres.NewPrivilegedStore(db)
	employeeLocker := lock.NewRedisEmployeeLocker(redisClient, structuredLogger)

	payrollUseCase := payroll.NewPayrollUseCase(store, employeeLocker)
	authUseCase := auth.NewLoginUseCase(
		store.Employees(),
		tokenService,
		passwordService,
		rateLimitService,
		structuredLogger,
		cfg.AccessTokenTTL,
	)

	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(rateLimitService, structuredLogger)

	authHandler := handler.NewAuthHandler(authUseCase)
	payrollHandler := handler.NewPayrollHandler(payrollUseCase, structuredLogger)

	router := mux.NewRouter()
	router.Handle("/v1/auth/login",
		rateLimitMiddleware.RateLimit(http.HandlerFunc(authHandler.Login))).Methods(http.MethodPost)
	router.HandleFunc("/v1/auth/me", authMiddleware.RequireAuth(authHandler.Me)).Methods(http.MethodGet)

	api := router.PathPrefix("/v1/payroll").Subrouter()
	api.HandleFunc("/requests", authMiddleware.RequireAdmin(payrollHandler.ListPendingRequests)).Methods(http.MethodGet)
	api.HandleFunc("/requests/{id}/approve", authMiddleware.RequireAdmin(payrollHandler.ApproveRequest)).Methods(http.MethodPost)
	api.HandleFunc("/requests/{id}/deny", authMiddleware.RequireAdmin(payrollHandler.DenyRequest)).Methods(http.MethodPost)
	api.HandleFunc("/entries", authMiddleware.RequireAdmin(payrollHandler.ListEntries)).Methods(http.MethodGet)
	api.HandleFunc("/entries", authMiddleware.RequireAdmin(payrollHandler.AddEntry)).Methods(http.MethodPost)
	api.HandleFunc("/entries/{id}", authMiddleware.RequireAdmin(payrollHandler.ManualEdit)).Methods(http.MethodPatch)
	api.HandleFunc("/entries/{id}", authMiddleware.RequireAdmin(payrollHandler.DeleteEntry)).Methods(http.MethodDelete)
	api.HandleFunc("/locks", authMiddleware.RequireAdmin(payrollHandler.LockStatus)).Methods(http.MethodGet)
	api.HandleFunc("/locks", authMiddleware.RequireAdmin(payrollHandler.ToggleLock)).Methods(http.MethodPost)
	api.HandleFunc("/audit", authMiddleware.RequireAdmin(payrollHandler.ListAuditLogs)).Methods(http.MethodGet)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"status":"healthy"}`)
	}).Methods(http.MethodGet)

	// Compose middleware: CorrelationID then CORS (if enabled)
	var rootHandler http.Handler = middleware.CorrelationIDMiddleware(router)
	if cfg.CORSEnabled && len(cfg.CORSAllowedOrigins) > 0 {
		rootHandler = middleware.CORSMiddleware(rootHandler, cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials)
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
		Handler:      rootHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		structuredLogger.Info(ctx, "Starting server", map[string]interface{}{
			"host": cfg.ServerHost,
			"port": cfg.ServerPort,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			structuredLogger.Error(ctx, "Server failed to start", err, map[string]interface{}{
				"host": cfg.ServerHost,
				"port": cfg.ServerPort,
			})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	structuredLogger.Info(ctx, "Shutting down server...", nil)

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		structuredLogger.Error(ctx, "Server forced to shutdown", err, nil)
	}
	structuredLogger.Info(ctx, "Server exited", nil)
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"etuition/internal/auth"
	"etuition/internal/cache"
	"etuition/internal/checkout"
	"etuition/internal/config"
	"etuition/internal/data"
	"etuition/internal/db"
	"etuition/internal/events"
	"etuition/internal/handler"
	"etuition/internal/logging"
	"etuition/internal/middleware"
	"etuition/internal/model"
	"etuition/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	logger := logging.New(zapLogger)

	cfg, err := config.New()
	if err != nil {
		logger.Fatal(ctx, "cannot create config", zap.Error(err))
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "cannot create db", zap.Error(err))
	}
	defer pool.Close()

	verifier, err := auth.NewFirebaseVerifier(ctx, cfg.FirebaseCredentialsFile)
	if err != nil {
		logger.Fatal(ctx, "cannot create token verifier", zap.Error(err))
	}

	var responseCache handler.Cache = cache.Noop{}
	if cfg.RedisURL != "" {
		redisConn := redis.NewClient(&redis.Options{
			Addr: cfg.RedisURL,
		})
		defer redisConn.Close()
		responseCache = cache.NewRedisCache(redisConn)
	}

	var publisher service.EventPublisher = events.NoopSender{}
	if len(cfg.KafkaBrokers) > 0 {
		sender := events.NewEventSender(cfg.KafkaBrokers, cfg.KafkaEventTopic)
		defer sender.Close()
		publisher = sender
	}

	userRepo := data.NewUserRepository(pool)
	tuitionRepo := data.NewTuitionRepository(pool)
	applicationRepo := data.NewApplicationRepository(pool)
	paymentRepo := data.NewPaymentRepository(pool)

	provider := checkout.NewStripeProvider(cfg.StripeSecretKey)

	userService := service.NewUserService(userRepo)
	tuitionService := service.NewTuitionService(tuitionRepo, userRepo)
	applicationService := service.NewApplicationService(applicationRepo, tuitionRepo, publisher)
	paymentService := service.NewPaymentService(paymentRepo, applicationRepo, provider, publisher, cfg.StripeDomain)

	userHandler := handler.NewUserHandler(userService, responseCache)
	tuitionHandler := handler.NewTuitionHandler(tuitionService, responseCache)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	identity := middleware.NewIdentity(verifier)
	admin := middleware.NewRequireRole(userService, model.RoleAdmin)

	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, 1<<20) // 1 MB
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	userHandler.RegisterRoutes(r, identity, admin)
	tuitionHandler.RegisterRoutes(r, identity, admin)
	applicationHandler.RegisterRoutes(r, identity, admin)
	paymentHandler.RegisterRoutes(r, identity, admin)

	port := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info(ctx, "Starting server", zap.String("port", port))

	srv := &http.Server{
		Addr:         port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "cannot start http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal(ctx, "server forced to shutdown", zap.Error(err))
	}
	logger.Info(ctx, "Server stopped")
}

//	@title			KSR Files API
//	@version		1.0
//	@description	Upload, serve and delete product images and videos.
//
//	@host		localhost:3003
//	@BasePath	/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT Bearer token. Format: **Bearer {token}**

//go:generate swag init -g cmd/api/main.go -d ../../ -o ../../docs/swagger

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/ksr/files/internal/auth"
	"github.com/ksr/files/internal/config"
	"github.com/ksr/files/internal/db"
	"github.com/ksr/files/internal/health"
	"github.com/ksr/files/internal/logger"
	"github.com/ksr/files/internal/media"
	appMiddleware "github.com/ksr/files/internal/middleware"
	"github.com/ksr/files/internal/product"
	"github.com/ksr/files/internal/response"
	"github.com/ksr/files/internal/user"

	_ "github.com/ksr/files/docs/swagger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(cfg.LogLevel, cfg.LogFormat)

	if cfg.IsProduction() && cfg.JWTSecret == config.DefaultJWTSecret {
		fatal(log, "refusing to start", errors.New("JWT_SECRET must be set in production"))
	}

	if err := media.Bootstrap(cfg.StorageRoot); err != nil {
		fatal(log, "storage bootstrap failed", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		fatal(log, "database connection failed", err)
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		fatal(log, "database migration failed", err)
	}

	// Wire dependencies: repository → service → handler
	userSvc := user.NewService(user.NewRepository(pool))
	validator := auth.NewValidator(auth.NewRepository(pool), userSvc, time.Now, log)

	images := media.NewStore(media.Image, cfg.StorageRoot, cfg.PublicBaseURL, log)
	videos := media.NewStore(media.Video, cfg.StorageRoot, cfg.PublicBaseURL, log)
	productHandler := product.NewHandler(product.NewService(images, videos, log))
	healthHandler := health.NewHandler(pool)

	limiter := appMiddleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(appMiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(limiter.Handler)
	r.NotFound(response.NotFound)

	r.Get("/health", healthHandler.Check)
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI at /swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Handle("/public/*", http.StripPrefix("/public", media.PublicHandler(cfg.StorageRoot)))

	r.Route("/v1/products", func(r chi.Router) {
		r.Use(appMiddleware.RequireAuth(cfg.JWTSecret, validator))
		productHandler.Routes(r)
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       5 * time.Minute,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("server listening",
			slog.String("addr", srv.Addr),
			slog.String("env", cfg.AppEnv),
			slog.String("storage_root", cfg.StorageRoot),
		)
		log.Info("swagger UI", slog.String("url", "http://localhost:"+cfg.Port+"/swagger/"))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal(log, "server error", err)
		}
	}()

	<-quit
	log.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", slog.String("error", err.Error()))
		return
	}

	log.Info("server stopped")
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, slog.String("error", err.Error()))
	os.Exit(1)
}

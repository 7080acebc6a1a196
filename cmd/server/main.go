// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/arenahub/tournament/internal/auth/provider/google"
	authRepository "github.com/arenahub/tournament/internal/auth/repository"
	authRouter "github.com/arenahub/tournament/internal/auth/router"
	"github.com/arenahub/tournament/internal/config"
	"github.com/arenahub/tournament/internal/database"
	"github.com/arenahub/tournament/internal/health"
	"github.com/arenahub/tournament/internal/middleware"
	"github.com/arenahub/tournament/internal/session"
	teamRouter "github.com/arenahub/tournament/internal/team/router"
	"github.com/arenahub/tournament/internal/upload"
	"github.com/arenahub/tournament/pkg/logger"
	"github.com/arenahub/tournament/pkg/retry"
)

func main() {
	// Seed the process env from .env when present (local development).
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := database.New()
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			zlog.Errorw("failed to close database", "error", closeErr)
		}
	}()

	if err := database.Migrate(db); err != nil {
		zlog.Fatalw("failed to apply migrations", "error", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	dialCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := retry.Do(dialCtx, retry.DefaultConfig(), func() error {
		return redisClient.Ping(dialCtx).Err()
	}); err != nil {
		zlog.Fatalw("failed to connect to redis", "error", err)
	}
	sessions := session.NewRedisStore(redisClient)

	providerCtx, cancelProvider := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelProvider()
	googleProvider, err := google.New(providerCtx, cfg.Auth)
	if err != nil {
		zlog.Fatalw("failed to init google provider", "error", err)
	}

	var uploader upload.Uploader
	if cfg.Upload.CloudinaryURL != "" {
		uploader, err = upload.NewCloudinaryUploader(cfg.Upload.CloudinaryURL)
		if err != nil {
			zlog.Fatalw("failed to init cloudinary uploader", "error", err)
		}
	} else {
		zlog.Warnw("CLOUDINARY_URL not set; screenshot submissions will fail")
		uploader = upload.Disabled{}
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(zlog))
	r.Use(middleware.Logger(zlog))
	r.Use(middleware.Principal(sessions, authRepository.New(db)))

	authRouter.RegisterRoutes(r, db, googleProvider, sessions, cfg.Auth.SessionTTL, zlog)
	teamRouter.RegisterRoutes(r, db, uploader, cfg.Upload, zlog)

	healthHandler := health.New(db, redisClient, zlog)
	r.GET("/health", healthHandler.Check)

	r.GET("/", func(c *gin.Context) {
		_, authenticated := middleware.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{
			"title":         "Freefire Tournament",
			"message":       "Welcome to the tournament!",
			"authenticated": authenticated,
		})
	})

	addr := cfg.Server.GetAddress()
	zlog.Infow("starting server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatalw("server failed", "error", err)
	}
}

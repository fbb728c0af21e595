package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/securecargo/website-api/internal/api"
	"github.com/securecargo/website-api/internal/core/ports"
	"github.com/securecargo/website-api/internal/core/service"
	"github.com/securecargo/website-api/internal/infrastructure/config"
	mongodb "github.com/securecargo/website-api/internal/infrastructure/db/mongo"
	redisdb "github.com/securecargo/website-api/internal/infrastructure/db/redis"
	"github.com/securecargo/website-api/internal/infrastructure/mail"
	"github.com/securecargo/website-api/internal/pkg/ratelimit"
	"github.com/securecargo/website-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.UsingDefaultSecret() {
		log.Warn().Msg("JWT_SECRET not set, falling back to the hardcoded default; set it before exposing this deployment")
	}

	// --- Stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	userRepo := mongodb.NewUserRepository(db)
	serviceRepo := mongodb.NewServiceRepository(db)
	galleryRepo := mongodb.NewGalleryRepository(db)
	logoRepo := mongodb.NewLogoRepository(db)
	submissionRepo := mongodb.NewSubmissionRepository(db)

	// --- Rate limiter: shared via Redis when configured, else per-process ---
	var limiter ports.RateLimiter
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer client.Close()
		rdb = client
		limiter = redisdb.NewRateLimiter(client, cfg.RateLimit.Max, cfg.RateLimit.Window)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis-backed rate limiter")
	} else {
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window)
		log.Info().Msg("using in-memory rate limiter (single instance only)")
	}

	// --- Mail relay (optional) ---
	var mailer ports.Mailer
	if smtpCfg := smtpConfig(cfg); smtpCfg.Enabled() {
		notifier := mail.NewNotifier(mail.NewSMTPMailer(smtpCfg), log)
		notifier.Start(ctx)
		mailer = notifier
		log.Info().Str("host", smtpCfg.Host).Msg("contact email relay enabled")
	} else {
		log.Info().Msg("contact email relay disabled (SMTP not configured)")
	}

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour, log)
	contentService := service.NewContentService(serviceRepo, galleryRepo, logoRepo, log)
	intakeService := service.NewIntakeService(submissionRepo, limiter, mailer, log)

	if err := authService.EnsureDefaultAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("default admin bootstrap failed")
	}

	e := api.NewRouter(api.Dependencies{
		Auth:    authService,
		Content: contentService,
		Intake:  intakeService,
		Mongo:   db,
		Redis:   rdb,
		BaseURL: cfg.PublicBaseURL,
		Logger:  log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func smtpConfig(cfg *config.Config) mail.Config {
	return mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		To:       cfg.SMTP.To,
	}
}

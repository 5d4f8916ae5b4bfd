package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	apicontext "github.com/dtroode/statementbox/internal/api/http/context"
	"github.com/dtroode/statementbox/internal/api/http/router"
	httpServer "github.com/dtroode/statementbox/internal/api/http/server"
	"github.com/dtroode/statementbox/internal/classifier"
	"github.com/dtroode/statementbox/internal/config"
	"github.com/dtroode/statementbox/internal/logger"
	"github.com/dtroode/statementbox/internal/mail"
	"github.com/dtroode/statementbox/internal/model"
	"github.com/dtroode/statementbox/internal/pdftext"
	"github.com/dtroode/statementbox/internal/ratelimit"
	"github.com/dtroode/statementbox/internal/repository/postgres"
	"github.com/dtroode/statementbox/internal/server"
	"github.com/dtroode/statementbox/internal/service"
	storage "github.com/dtroode/statementbox/internal/storage/minio"
	"github.com/dtroode/statementbox/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const (
	rateLimitPruneInterval = time.Minute
	tokenCleanupInterval   = time.Hour
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat).With("build", buildVersion)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN,
		postgres.WithMaxConns(cfg.Database.MaxConns),
		postgres.WithMaxConnIdleTime(cfg.Database.MaxConnIdleTime),
	)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	sessionRepo := postgres.NewSessionRepository(db)
	fileRepo := postgres.NewFileRepository(db)
	emailTokenRepo := postgres.NewEmailTokenRepository(db)

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
		Region: cfg.Storage.Region,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket,
		storage.WithRetry(cfg.Outbound.MaxRetries),
		storage.WithTimeout(cfg.Outbound.Timeout),
		storage.WithRegion(cfg.Storage.Region),
	)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	limiter, closeLimiter := newRateLimiter(ctx, cfg, logger)
	defer closeLimiter()

	mailer := newMailer(cfg, logger)
	tokenManager := token.NewJWT(cfg.JWT.Secret, token.ParseExpiresIn(cfg.JWT.ExpiresIn))

	sessionService := service.NewSession(sessionRepo, fileRepo, storageClient, tokenManager, cfg.Session.TTL, logger)
	emailTokenService := service.NewEmailToken(emailTokenRepo, cfg.EmailToken.TTL, logger)
	authService := service.NewAuth(sessionRepo, sessionService, emailTokenService, tokenManager, mailer, limiter, cfg.AppBaseURL, logger)
	fileService := service.NewFile(sessionRepo, fileRepo, storageClient, classifier.Default(), pdftext.NewExtractor(),
		service.FileLimits{MaxFiles: cfg.Upload.MaxFiles, MaxFileSize: cfg.Upload.MaxFileSize}, logger)

	r := router.New(sessionService, authService, fileService, tokenManager, db, apicontext.NewManager(), logger,
		router.WithUploadLimits(cfg.Upload.MaxFiles, cfg.Upload.MaxFileSize),
		router.WithTrustedProxies(cfg.HTTP.TrustedProxies),
	)
	engine, err := r.Register()
	if err != nil {
		logger.Fatal("failed to build router", "error", err)
	}
	srv := httpServer.NewHTTPServer(engine, fmt.Sprintf(":%s", cfg.HTTP.Port))

	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(2)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)
	go func() {
		defer wg.Done()
		cleanupEmailTokens(ctx, emailTokenRepo, logger)
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

// newRateLimiter returns the Redis limiter when RATE_LIMIT_REDIS_ADDR is set
// and the in-process one otherwise.
func newRateLimiter(ctx context.Context, cfg *config.Config, logger *logger.Logger) (model.RateLimiter, func()) {
	if cfg.RateLimit.RedisAddr != "" {
		limiter, err := ratelimit.NewRedis(ctx, ratelimit.RedisConfig{
			Addr:     cfg.RateLimit.RedisAddr,
			Password: cfg.RateLimit.RedisPassword,
			DB:       cfg.RateLimit.RedisDB,
		}, cfg.RateLimit.Window, cfg.RateLimit.Max)
		if err != nil {
			logger.Fatal("failed to connect rate limit store", "error", err)
		}
		logger.Info("Rate limiter: using redis", "addr", cfg.RateLimit.RedisAddr)
		return limiter, func() {
			if err := limiter.Close(); err != nil {
				logger.Error("failed to close rate limit store", "error", err)
			}
		}
	}

	limiter := ratelimit.NewMemory(cfg.RateLimit.Window, cfg.RateLimit.Max)
	go limiter.RunPruner(ctx, rateLimitPruneInterval)
	return limiter, func() {}
}

func newMailer(cfg *config.Config, logger *logger.Logger) model.Mailer {
	if cfg.SMTP.Host == "" {
		logger.Warn("SMTP_HOST is empty, magic links will only be logged")
		return mail.NewLogOnly(logger)
	}

	mailer, err := mail.NewSMTP(mail.SMTPConfig{
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port,
		Username:   cfg.SMTP.Username,
		Password:   cfg.SMTP.Password,
		From:       cfg.SMTP.From,
		Timeout:    cfg.SMTP.Timeout,
		MaxRetries: cfg.Outbound.MaxRetries,
	}, logger)
	if err != nil {
		logger.Fatal("failed to create smtp mailer", "error", err)
	}
	return mailer
}

func cleanupEmailTokens(ctx context.Context, repo *postgres.EmailTokenRepository, logger *logger.Logger) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			deleted, err := repo.DeleteExpired(ctx, now)
			if err != nil {
				logger.Error("failed to delete expired email tokens", "error", err)
				continue
			}
			if deleted > 0 {
				logger.Info("deleted expired email tokens", "count", deleted)
			}
		}
	}
}

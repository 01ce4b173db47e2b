package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/littleroamers/roamers/cmd/migrate"
	"github.com/littleroamers/roamers/config"
	"github.com/littleroamers/roamers/internal/controller/restapi"
	"github.com/littleroamers/roamers/internal/infrastructure/processor"
	"github.com/littleroamers/roamers/internal/repo/persistent"
	"github.com/littleroamers/roamers/internal/usecase/activity"
	"github.com/littleroamers/roamers/internal/usecase/stats"
	"github.com/littleroamers/roamers/internal/usecase/upload"
	"github.com/littleroamers/roamers/internal/usecase/walk"
	"github.com/littleroamers/roamers/pkg/httpserver"
	"github.com/littleroamers/roamers/pkg/logger"
	"github.com/littleroamers/roamers/pkg/postgres"
	"github.com/littleroamers/roamers/pkg/rediscache"
	"github.com/littleroamers/roamers/pkg/s3client"
)

func Run(cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Logger
	l := logger.New(cfg.Log.Level)

	// Sentry, optional
	sentryEnabled := cfg.Sentry.DSN != ""
	if sentryEnabled {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			l.Fatal(fmt.Errorf("app - Run - sentry.Init: %w", err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	// Repository

	// s3
	s3Ctx, s3Cancel := context.WithTimeout(ctx, cfg.S3.CfgLoadTimeout)
	defer s3Cancel()
	s3c, err := s3client.New(s3Ctx, cfg.S3.Endpoint, cfg.S3.Region, cfg.S3.AccessKey, cfg.S3.SecretKey)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - s3client.New: %w", err))
	}

	// postgres
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.PoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pg.Close()

	// migrations
	if err := migrate.Migrate(cfg.PG.URL, migrate.Migrations); err != nil {
		l.Fatal(fmt.Errorf("app - Run - migrate.Migrate: %w", err))
	}

	// redis
	cache, err := rediscache.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, "roamers")
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - rediscache.New: %w", err))
	}
	defer cache.Close()

	// Failed blob deletions are invisible to users, so they are
	// reported out-of-band.
	var deleteFailureHook persistent.DeleteFailureHook
	if sentryEnabled {
		deleteFailureHook = func(key string, err error) {
			sentry.CaptureException(fmt.Errorf("blob delete failed for key %s: %w", key, err))
		}
	}

	blobRepo := persistent.NewBlobRepo(s3c, cfg.S3.Bucket, cfg.S3.KeyPrefix, l, deleteFailureHook)
	activityRepo := persistent.NewActivityRepo(pg)
	walkRepo := persistent.NewWalkRepo(pg)
	statsRepo := persistent.NewStatsRepo(pg)

	// Use-Case
	uploadUseCase := upload.New(blobRepo, processor.New(), cfg.Upload.MaxSizeMB, l)
	activityUseCase := activity.New(activityRepo, blobRepo, pg, l)
	walkUseCase := walk.New(walkRepo, l)
	statsUseCase := stats.New(statsRepo, cache, cfg.Redis.StatsTTL, l)

	// HTTP Server
	httpServer := httpserver.New(l, httpserver.Port(cfg.HTTP.Port), httpserver.Prefork(cfg.HTTP.UsePreforkMode))
	restapi.NewRouter(httpServer.App, cfg, uploadUseCase, activityUseCase, walkUseCase, statsUseCase, l)

	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err = httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	server "github.com/dhanmoti/vedic-chart-backend-2/internal/adapters/primary/http"
	healthcheckController "github.com/dhanmoti/vedic-chart-backend-2/internal/adapters/primary/http/controllers/healthcheck"
	horoscopeController "github.com/dhanmoti/vedic-chart-backend-2/internal/adapters/primary/http/controllers/horoscope"
	alerterAdapter "github.com/dhanmoti/vedic-chart-backend-2/internal/adapters/secondary/alerter"
	"github.com/dhanmoti/vedic-chart-backend-2/internal/adapters/secondary/jhora"
	kafkaAdapter "github.com/dhanmoti/vedic-chart-backend-2/internal/adapters/secondary/kafka"
	"github.com/dhanmoti/vedic-chart-backend-2/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/dhanmoti/vedic-chart-backend-2/internal/adapters/secondary/storage/redis"
	s3Adapter "github.com/dhanmoti/vedic-chart-backend-2/internal/adapters/secondary/storage/s3"
	"github.com/dhanmoti/vedic-chart-backend-2/internal/pkg/logger"
	cachePort "github.com/dhanmoti/vedic-chart-backend-2/internal/ports/cache"
	servicePort "github.com/dhanmoti/vedic-chart-backend-2/internal/ports/service"
	horoscopeRepo "github.com/dhanmoti/vedic-chart-backend-2/internal/repository/horoscope"
	jobsService "github.com/dhanmoti/vedic-chart-backend-2/internal/services/jobs"
	horoscopeService "github.com/dhanmoti/vedic-chart-backend-2/internal/usecases/horoscope"
)

type App struct {
	Name string
	Cfg  *Config
	Log  *slog.Logger
}

func New(name string, cfg *Config) *App {
	return &App{
		Name: name,
		Cfg:  cfg,
		Log:  logger.New(name, cfg.Log),
	}
}

func (a *App) Run(ctx context.Context) error {
	a.Log.Info("running vedic-chart-backend")

	db, err := a.initPostgres()
	if err != nil {
		return fmt.Errorf("failed to init postgres: %w", err)
	}

	persistenceLayer := pg.NewDB(db)
	repo := horoscopeRepo.New(persistenceLayer, a.Log)

	engine := jhora.NewClient(a.Cfg.Jhora, a.Log)

	var alerter servicePort.IAlerterService
	if client := alerterAdapter.NewClient(a.Cfg.Alerter, a.Log); client != nil {
		alerter = client
	}

	svc := horoscopeService.New(engine, repo, a.Log)
	if alerter != nil {
		svc.WithAlerter(alerter)
	}

	var responseCache cachePort.Cache
	if a.Cfg.CacheEnabled {
		redisClient, err := a.Cfg.Redis.NewConnection()
		if err != nil {
			return fmt.Errorf("failed to init redis: %w", err)
		}
		responseCache = redisAdapter.NewClient(redisClient)
		svc.WithCache(responseCache, a.Cfg.Redis.CacheTTL())
		a.Log.Info("horoscope cache enabled", "ttl", a.Cfg.Redis.CacheTTL())
	}

	var producer *kafkaAdapter.Producer
	if a.Cfg.Kafka.Enabled() {
		producer, err = kafkaAdapter.NewProducer(a.Cfg.Kafka, a.Log)
		if err != nil {
			return fmt.Errorf("failed to init kafka producer: %w", err)
		}
		svc.WithProducer(producer)
	}

	if a.Cfg.S3.Enabled() {
		minioClient, err := a.Cfg.S3.NewClient()
		if err != nil {
			return fmt.Errorf("failed to init s3 client: %w", err)
		}
		svc.WithArchive(s3Adapter.NewClient(minioClient, a.Cfg.S3.Bucket, a.Log))
		a.Log.Info("raw chart archive enabled", "bucket", a.Cfg.S3.Bucket)
	}

	horoscopeCtrl := horoscopeController.New(svc, a.Log)
	healthCheck := healthcheckController.New(db, a.Log)

	httpServer := server.NewHTTPServer(a.Cfg.Server, a.Log, healthCheck, horoscopeCtrl)

	scheduler := jobsService.NewScheduler(a.Log, alerter)
	scheduler.Register(jobsService.NewEngineHealth(engine, a.Cfg.EngineHealthInterval, a.Log))

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("starting http server",
			"host", a.Cfg.Server.Host,
			"port", a.Cfg.Server.Port)

		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	a.Log.Info("starting job scheduler")
	if err := scheduler.Start(gCtx); err != nil {
		a.Log.Error("failed to start job scheduler", "error", err)
	}

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.Log.Info("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			a.Log.Error("failed to shutdown http server", "error", err)
		}

		if responseCache != nil {
			if err := responseCache.Close(); err != nil {
				a.Log.Error("failed to close cache", "error", err)
			}
		}

		if producer != nil {
			if err := producer.Close(); err != nil {
				a.Log.Error("failed to close kafka producer", "error", err)
			}
		}

		if err := db.Close(); err != nil {
			a.Log.Error("failed to close database", "error", err)
		}

		a.Log.Info("application shutdown completed")
		return nil
	})

	if err := g.Wait(); err != nil {
		a.Log.Error("application error", "error", err)
		return err
	}

	return nil
}

func (a *App) initPostgres() (*sqlx.DB, error) {
	db, err := a.Cfg.Postgres.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	a.Log.Info("postgres connected successfully")

	if err := pg.RunMigrations(db, a.Log); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

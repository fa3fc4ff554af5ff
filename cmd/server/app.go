package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/task-api/internal/cache"
	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/events"
	"github.com/phrazzld/task-api/internal/grpcapi"
	"github.com/phrazzld/task-api/internal/platform/postgres"
	"github.com/phrazzld/task-api/internal/service"
	"github.com/redis/go-redis/v9"
)

// dependencyPingTimeout bounds the startup connectivity checks.
const dependencyPingTimeout = 5 * time.Second

// infrastructure holds the external clients opened at startup.
type infrastructure struct {
	db        *sql.DB
	redis     redis.UniversalClient
	publisher events.Publisher
}

// close releases the clients in reverse order of opening.
func (i *infrastructure) close() error {
	var errs []error
	if closer, ok := i.publisher.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close publisher: %w", err))
		}
	}
	if i.redis != nil {
		if err := i.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if i.db != nil {
		if err := i.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	return errors.Join(errs...)
}

// connectInfrastructure opens the database, applies migrations, connects to
// Redis and sets up the event publisher. On failure everything opened so far
// is closed again.
func connectInfrastructure(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*infrastructure, error) {
	infra := &infrastructure{}

	db, err := postgres.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	infra.db = db
	logger.Info("database configured", slog.String("url", postgres.MaskURL(cfg.Database.URL)))

	err = postgres.Migrate(ctx, db, postgres.MigrateOptions{
		Attempts: cfg.Database.MigrationRetries,
		Delay:    cfg.Database.MigrationDelay,
		Logger:   logger,
	})
	if err != nil {
		_ = infra.close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	infra.redis = cache.NewRedisClient(cfg.Cache)
	pingCtx, cancel := context.WithTimeout(ctx, dependencyPingTimeout)
	err = infra.redis.Ping(pingCtx).Err()
	cancel()
	if err != nil {
		_ = infra.close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("redis connected", slog.Any("addrs", cfg.Cache.Addrs))

	publisher, err := newPublisher(cfg.Events, logger)
	if err != nil {
		_ = infra.close()
		return nil, err
	}
	infra.publisher = publisher

	return infra, nil
}

// newPublisher builds the publisher selected by cfg.Driver.
func newPublisher(cfg config.EventsConfig, logger *slog.Logger) (events.Publisher, error) {
	if cfg.Driver == "memory" {
		p := events.NewInMemoryPublisher(logger)
		p.RegisterHandler(events.LogHandler(logger))
		logger.Info("using in-memory event publisher")
		return p, nil
	}

	p, err := events.DialRabbitMQ(cfg.URL, cfg.Exchange, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}
	logger.Info("rabbitmq publisher ready", slog.String("exchange", cfg.Exchange))
	return p, nil
}

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	infra  *infrastructure

	cache            *cache.RedisCache
	taskService      service.TaskService
	analyticsService service.AnalyticsService

	httpServer *http.Server
	grpcServer *grpcapi.Server
}

// newApplication wires the stores, services and servers on top of infra.
// It does no I/O.
func newApplication(cfg *config.Config, logger *slog.Logger, infra *infrastructure) (*application, error) {
	if cfg == nil || infra == nil {
		return nil, fmt.Errorf("%w: config and infrastructure are required", service.ErrNilDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}

	taskStore := postgres.NewPostgresTaskStore(infra.db, logger)
	redisCache := cache.NewRedisCache(infra.redis, cfg.Cache.Prefix, logger)

	taskService, err := service.NewTaskService(taskStore, redisCache, infra.publisher, logger,
		service.WithCacheTTL(cfg.Cache.TTL))
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	analyticsService, err := service.NewAnalyticsService(taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics service: %w", err)
	}

	grpcServer, err := grpcapi.NewServer(analyticsService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	app := &application{
		config:           cfg,
		logger:           logger,
		infra:            infra,
		cache:            redisCache,
		taskService:      taskService,
		analyticsService: analyticsService,
		grpcServer:       grpcServer,
	}
	app.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           app.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return app, nil
}

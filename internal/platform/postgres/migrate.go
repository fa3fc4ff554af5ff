package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationTableName is the name of the table used by goose to track migrations.
const MigrationTableName = "schema_migrations"

// goose keeps its configuration in package globals.
var gooseMu sync.Mutex

// slogGooseLogger adapts goose's Printf/Fatalf logger to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf logs at error level and does not exit; goose reports the failure
// through its returned error as well.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// MigrateOptions controls how Migrate waits for the database to come up.
type MigrateOptions struct {
	// Attempts is the total number of tries, including the first.
	Attempts int
	// Delay is the fixed wait between attempts.
	Delay time.Duration
	// PingTimeout bounds each connectivity check. Defaults to 5s.
	PingTimeout time.Duration
	Logger      *slog.Logger
}

// Migrate applies all embedded migrations. Each attempt pings the database and
// then runs goose up; failures are retried with a constant delay until
// Attempts is exhausted, at which point the last error is returned.
func Migrate(ctx context.Context, db *sql.DB, opts MigrateOptions) error {
	if opts.Attempts < 1 {
		opts.Attempts = 1
	}
	if opts.Delay <= 0 {
		opts.Delay = time.Second
	}
	if opts.PingTimeout <= 0 {
		opts.PingTimeout = 5 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	log := opts.Logger.With(
		slog.String("component", "migrations"),
		slog.String("correlation_id", uuid.NewString()),
	)

	backoff := retry.WithMaxRetries(uint64(opts.Attempts-1), retry.NewConstant(opts.Delay))

	attempt := 0
	start := time.Now()
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := migrateOnce(ctx, db, opts.PingTimeout, log); err != nil {
			log.Warn("database unavailable for migrations",
				slog.Int("attempt", attempt),
				slog.Int("max_attempts", opts.Attempts),
				slog.String("error", err.Error()))
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		log.Error("migrations failed",
			slog.Int("attempts", attempt),
			slog.String("error", err.Error()))
		return fmt.Errorf("apply migrations after %d attempts: %w", attempt, err)
	}

	log.Info("database migrations applied",
		slog.Int("attempts", attempt),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}

func migrateOnce(ctx context.Context, db *sql.DB, pingTimeout time.Duration, log *slog.Logger) error {
	if err := Ping(ctx, db, pingTimeout); err != nil {
		return fmt.Errorf("ping: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(&slogGooseLogger{logger: log})
	goose.SetTableName(MigrationTableName)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

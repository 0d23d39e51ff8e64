package common

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"

	"github.com/joseph-ayodele/doc-ingestor/gen/ent"
	"github.com/joseph-ayodele/doc-ingestor/internal/repository"
)

// DBResult bundles the opened ent client with whatever backs it.
type DBResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool // nil for sqlite
	Cleanup func()
}

// InitDatabase opens either the configured Postgres database or, when inmem
// is set, a throwaway in-memory SQLite database with the schema migrated.
// The batch CLI uses the latter so a run needs no external services.
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if inmem {
		return initSQLite(ctx, logger)
	}

	if cfg.Database.DSN == "" {
		return nil, NewAppError("CONFIG_ERROR", "DB_URL is required (or pass --inmem)", ErrInvalidInput)
	}
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	return &DBResult{
		Client: entc,
		Pool:   pool,
		Cleanup: func() {
			repository.Close(entc, pool, logger)
		},
	}, nil
}

func initSQLite(ctx context.Context, logger *slog.Logger) (*DBResult, error) {
	db, err := sql.Open("sqlite", "file:docingestor?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// in-memory DB vanishes when the last connection closes
	db.SetMaxIdleConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	entc := ent.NewClient(ent.Driver(drv))

	if err := entc.Schema.Create(ctx); err != nil {
		_ = entc.Close()
		return nil, fmt.Errorf("migrate sqlite schema: %w", err)
	}
	logger.Info("using in-memory sqlite database")

	return &DBResult{
		Client: entc,
		Cleanup: func() {
			if cerr := entc.Close(); cerr != nil {
				logger.Error("failed to close ent client", "error", cerr)
			}
		},
	}, nil
}

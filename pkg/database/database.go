package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ehtasham11/nutritional-AI/pkg/config"
)

func Connect(ctx context.Context, dbCfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dbCfg.URL)
	if err != nil {
		return nil, err
	}

	cfg.MinConns = int32(dbCfg.MinConns)
	cfg.MaxConns = int32(dbCfg.MaxConns)
	cfg.MaxConnLifetime = dbCfg.MaxLifetime
	cfg.HealthCheckPeriod = 30 * time.Second

	return pgxpool.NewWithConfig(ctx, cfg)
}

// CreateTables applies the schema on startup. Statements are idempotent so
// repeated boots are safe.
func CreateTables(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id                 BIGSERIAL PRIMARY KEY,
			first_name         TEXT NOT NULL,
			last_name          TEXT NOT NULL,
			email              TEXT NOT NULL UNIQUE,
			password_hash      TEXT NOT NULL,
			is_active          BOOLEAN NOT NULL DEFAULT false,
			confirmation_token TEXT UNIQUE,
			created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS appointments (
			id             BIGSERIAL PRIMARY KEY,
			doctor         TEXT NOT NULL,
			specialization TEXT NOT NULL,
			date           TEXT NOT NULL,
			time           TEXT NOT NULL,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

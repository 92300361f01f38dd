package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB is the shared database handle, initialized by Init.
var DB *sql.DB

const schema = `
CREATE TABLE IF NOT EXISTS summarizations (
	id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	link TEXT NOT NULL,
	startat DOUBLE PRECISION NOT NULL,
	endat DOUBLE PRECISION NOT NULL,
	transcript TEXT NOT NULL,
	summary TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Init opens the connection described by dsn, verifies it, and bootstraps
// the schema.
func Init(dsn string) error {
	if dsn == "" {
		return fmt.Errorf("database DSN is empty")
	}

	database, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	database.SetMaxOpenConns(10)
	database.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := database.PingContext(ctx); err != nil {
		_ = database.Close()
		return fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := database.ExecContext(ctx, schema); err != nil {
		_ = database.Close()
		return fmt.Errorf("create summarizations table: %w", err)
	}

	DB = database
	return nil
}

// Close closes the shared handle.
func Close() error {
	if DB == nil {
		return nil
	}
	return DB.Close()
}

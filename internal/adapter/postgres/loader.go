// Package postgres persists normalized sensor readings in a relational sink.
//
// Readings are keyed by their deterministic ID, so replays and consumer
// rebalances resolve to ON CONFLICT DO NOTHING rather than duplicate rows.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/hanbit-labs/korea-sensor-etl/internal/domain"
)

// Loader writes normalized readings to PostgreSQL.
// It implements pipeline.BatchLoader.
type Loader struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open connects to PostgreSQL and verifies the connection.
func Open(databaseURL string, logger *slog.Logger) (*Loader, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("verify postgres connection: %w", err)
	}

	return &Loader{db: db, logger: logger}, nil
}

const insertReading = `
INSERT INTO sensor_readings (id, source, payload, ingested_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (id) DO NOTHING`

// LoadBatch inserts a batch of events inside a single transaction. Events
// whose ID already exists are skipped, making replays idempotent.
func (l *Loader) LoadBatch(ctx context.Context, events []domain.OutputEvent) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertReading)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, event := range events {
		source := event.Headers["source"]
		if _, err := stmt.ExecContext(ctx, string(event.Key), source, event.Value); err != nil {
			return fmt.Errorf("insert reading %s: %w", event.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

func (l *Loader) Close() error {
	return l.db.Close()
}

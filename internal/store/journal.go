// Package store provides the local journal of appended result rows.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	boterrors "github.com/jmanning1991/reddit-stock-sentiment-bot/internal/errors"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/models"
)

// Journal mirrors every appended LogRow into a local SQLite database so a
// deployment keeps an audit trail even when the external sheet is the
// system of record. Append-only; no read path is exposed.
type Journal struct {
	db *sql.DB
}

// NewJournal opens (or creates) the journal database at dbPath.
func NewJournal(dbPath string) (*Journal, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	j := &Journal{db: db}
	if err := j.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize journal schema: %w", err)
	}
	return j, nil
}

func (j *Journal) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS log_rows (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		ticker TEXT NOT NULL,
		company TEXT NOT NULL,
		title TEXT NOT NULL,
		sentiment TEXT NOT NULL,
		yesterday_close REAL,
		current_price REAL,
		percent_change REAL,
		url TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_log_rows_ticker ON log_rows(ticker);
	`
	_, err := j.db.Exec(schema)
	return err
}

// Append inserts one row into the journal.
func (j *Journal) Append(ctx context.Context, row models.LogRow) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO log_rows (timestamp, ticker, company, title, sentiment, yesterday_close, current_price, percent_change, url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.Timestamp, row.Ticker, row.Company, row.Title, string(row.Sentiment),
		nullable(row.PreviousClose), nullable(row.CurrentPrice), nullable(row.PercentChange), row.URL,
	)
	if err != nil {
		return boterrors.NewDeliveryError("journal", err)
	}
	return nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

func nullable(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

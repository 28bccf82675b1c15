package db

import (
	"context"
	"fmt"
	"time"

	"github.com/colecostanza/Anki-Automated-Quizzes/internal/config"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS quiz_history (
	deck     TEXT    NOT NULL,
	card_id  INTEGER NOT NULL,
	asked_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (deck, card_id)
);

CREATE TABLE IF NOT EXISTS quiz_results (
	deck        TEXT    NOT NULL,
	card_id     INTEGER NOT NULL,
	session_id  TEXT    NOT NULL,
	is_correct  BOOLEAN NOT NULL,
	answered_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_quiz_results_deck ON quiz_results (deck);
`

func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL",
		cfg.Path, cfg.BusyTimeout.Milliseconds())
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

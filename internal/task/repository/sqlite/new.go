package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"task-reminder-bot/internal/task/repository"
	"task-reminder-bot/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS user_counters (
	user_id TEXT PRIMARY KEY,
	next_id INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS tasks (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id    TEXT    NOT NULL,
	task_id    INTEGER NOT NULL,
	chat_id    INTEGER NOT NULL,
	content    TEXT    NOT NULL,
	due_at     INTEGER NOT NULL,
	status     TEXT    NOT NULL DEFAULT 'pending',
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL,
	UNIQUE (user_id, task_id)
);

CREATE TABLE IF NOT EXISTS reminders (
	id         TEXT PRIMARY KEY,
	task_rowid INTEGER NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
	kind       TEXT    NOT NULL,
	fires_at   INTEGER NOT NULL,
	sent       INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_tasks_user_due ON tasks (user_id, due_at);
CREATE INDEX IF NOT EXISTS idx_reminders_due  ON reminders (sent, fires_at);
`

// Open opens (creating if needed) the SQLite database at path and applies the
// schema. WAL keeps the webhook handler and the reminder poller from blocking
// each other.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)",
		path,
	)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return db, nil
}

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the task domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}

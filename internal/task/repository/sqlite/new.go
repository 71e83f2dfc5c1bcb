package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"personal-secretary/internal/task/repository"
	"personal-secretary/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the task domain and ensures
// the schema exists.
func New(db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	r := &implRepository{db: db, l: l}
	if err := r.initSchema(); err != nil {
		return nil, fmt.Errorf("task schema init: %w", err)
	}
	return r, nil
}

// Open opens (and creates if needed) the SQLite database file.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return db, nil
}

func (r *implRepository) initSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS tasks (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		title            TEXT    NOT NULL,
		description      TEXT    NOT NULL DEFAULT '',
		importance       INTEGER NOT NULL DEFAULT 3,
		urgency          INTEGER NOT NULL DEFAULT 3,
		due_date         TEXT    NOT NULL DEFAULT '',
		due_time         TEXT    NOT NULL DEFAULT '',
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		status           TEXT    NOT NULL DEFAULT 'pending',
		task_type        TEXT    NOT NULL DEFAULT 'checklist',
		completed_at     TIMESTAMP,
		created_at       TIMESTAMP NOT NULL,
		updated_at       TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks(due_date);
	CREATE INDEX IF NOT EXISTS idx_tasks_status   ON tasks(status);`

	_, err := r.db.Exec(schema)
	return err
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}

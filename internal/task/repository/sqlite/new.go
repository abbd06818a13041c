package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"smart-task-scheduler/internal/task/repository"
	"smart-task-scheduler/pkg/log"
)

const createTasksTable = `
	CREATE TABLE IF NOT EXISTS tasks (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		id         TEXT    NOT NULL UNIQUE,
		title      TEXT    NOT NULL,
		priority   TEXT    NOT NULL,
		deadline   TEXT    NOT NULL,
		created_at INTEGER NOT NULL
	)`

type implRepository struct {
	db    *sql.DB
	l     log.Logger
	now   func() time.Time
	newID func() string
}

// OpenInMemory opens a private in-memory SQLite database named name and
// creates the schema. The pool is pinned to a single connection because every
// new connection to an in-memory database would see an empty database. The
// data is gone once the returned *sql.DB is closed.
func OpenInMemory(ctx context.Context, name string) (*sql.DB, error) {
	if name == "" {
		name = "tasks"
	}
	dsn := fmt.Sprintf("file:%s?mode=memory", url.PathEscape(name))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, createTasksTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tasks table: %w", err)
	}
	return db, nil
}

// New creates a SQLite-backed Repository on db.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	return &implRepository{
		db:    db,
		l:     l,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}

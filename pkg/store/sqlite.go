package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrisonrobin/tasklist/pkg/model"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	position INTEGER PRIMARY KEY,
	id       TEXT    NOT NULL,
	date     TEXT    NOT NULL,
	time     TEXT    NOT NULL,
	priority TEXT    NOT NULL,
	due_tag  TEXT    NOT NULL
);
CREATE TABLE IF NOT EXISTS task_lines (
	position INTEGER NOT NULL REFERENCES tasks(position) ON DELETE CASCADE,
	line_no  INTEGER NOT NULL,
	text     TEXT    NOT NULL,
	PRIMARY KEY (position, line_no)
);`

// SQLite stores the list in a SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path.
func NewSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Load(ctx context.Context) ([]model.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT position, id, date, time, priority, due_tag FROM tasks ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	byPosition := make(map[int64]int)
	for rows.Next() {
		var (
			pos              int64
			t                model.Task
			priority, dueTag string
		)
		if err := rows.Scan(&pos, &t.ID, &t.Date, &t.Time, &priority, &dueTag); err != nil {
			return nil, err
		}
		t.Priority = model.Priority(priority)
		t.DueTag = model.DueTag(dueTag)
		byPosition[pos] = len(tasks)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	lines, err := s.db.QueryContext(ctx,
		`SELECT position, text FROM task_lines ORDER BY position, line_no`)
	if err != nil {
		return nil, err
	}
	defer lines.Close()
	for lines.Next() {
		var (
			pos  int64
			text string
		)
		if err := lines.Scan(&pos, &text); err != nil {
			return nil, err
		}
		i, ok := byPosition[pos]
		if !ok {
			return nil, fmt.Errorf("task line references missing task at position %d", pos)
		}
		tasks[i].Lines = append(tasks[i].Lines, text)
	}
	return tasks, lines.Err()
}

// Save replaces the stored list inside one transaction.
func (s *SQLite) Save(ctx context.Context, tasks []model.Task) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM task_lines`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return err
	}
	for pos, t := range tasks {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (position, id, date, time, priority, due_tag) VALUES (?, ?, ?, ?, ?, ?)`,
			pos, t.ID, t.Date, t.Time, string(t.Priority), string(t.DueTag),
		); err != nil {
			return fmt.Errorf("insert task %d: %w", pos+1, err)
		}
		for n, line := range t.Lines {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO task_lines (position, line_no, text) VALUES (?, ?, ?)`,
				pos, n, line,
			); err != nil {
				return fmt.Errorf("insert line %d of task %d: %w", n+1, pos+1, err)
			}
		}
	}
	return tx.Commit()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/fixgalleria/fixgalleria/internal/model"
)

// tasksKey is the kv key holding the JSON-serialized task array.
const tasksKey = "tasks"

// LoadTasks reads the persisted task list. Absent or malformed stored data
// yields an empty list rather than an error: the store is the only writer of
// this key, but a corrupted value should never make the app unusable.
func (s Store) LoadTasks(ctx context.Context) ([]model.Task, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var raw string
	err = db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, tasksKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeTasks([]byte(raw)), nil
}

// SaveTasks serializes the full task list and writes it back under the
// "tasks" key. Replace-all on every mutation; lists are small and human-entered.
func (s Store) SaveTasks(ctx context.Context, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	b, err := json.Marshal(tasks)
	if err != nil {
		return err
	}

	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `INSERT OR REPLACE INTO kv(k, v) VALUES(?, ?)`, tasksKey, string(b))
	return err
}

// decodeTasks parses a stored task array, dropping records that don't hold up:
// empty text, duplicate ids. A failed parse yields an empty list.
func decodeTasks(b []byte) []model.Task {
	var tasks []model.Task
	if err := json.Unmarshal(b, &tasks); err != nil {
		return nil
	}
	seen := map[int]bool{}
	out := tasks[:0]
	for _, t := range tasks {
		if strings.TrimSpace(t.Text) == "" {
			continue
		}
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out
}

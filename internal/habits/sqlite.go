// Package habits provides the habit store the UI reads and writes through.
package habits

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver, WAL-friendly

	"cadence/internal/domain"
)

// sqliteClient stores habits in a local SQLite database in WAL mode. The
// database is opened per call with a single connection; the WAL files next to
// the database are what the UI's refresh loop watches for changes.
type sqliteClient struct {
	dbPath string
	dsn    string
}

// NewSQLiteClient constructs a read-write store at dbPath, creating the
// database and its schema on first use.
func NewSQLiteClient(ctx context.Context, dbPath string) (Client, error) {
	trimmed := strings.TrimSpace(dbPath)
	if trimmed == "" {
		return nil, fmt.Errorf("NewSQLiteClient requires a non-empty dbPath")
	}
	c := &sqliteClient{
		dbPath: trimmed,
		dsn:    buildSQLiteDSN(trimmed),
	}
	if err := c.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// buildSQLiteDSN creates a read-write WAL DSN for the given path.
func buildSQLiteDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "rwc")
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "3000")
	q.Set("_foreign_keys", "on")
	u.RawQuery = q.Encode()
	return u.String()
}

func (c *sqliteClient) openDB(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", c.dsn)
	if err != nil {
		return nil, storageError("open sqlite db", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, storageError("ping sqlite db", err)
	}
	return db, nil
}

func (c *sqliteClient) ensureSchema(ctx context.Context) error {
	db, err := c.openDB(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	const schema = `
		CREATE TABLE IF NOT EXISTS habits (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			frequency  TEXT NOT NULL,
			owner_id   TEXT NOT NULL,
			notes      TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS completions (
			habit_id TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
			day      TEXT NOT NULL,
			PRIMARY KEY (habit_id, day)
		);
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return storageError("create schema", err)
	}
	return nil
}

func (c *sqliteClient) List(ctx context.Context) ([]Habit, error) {
	db, err := c.openDB(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := db.QueryContext(ctx, `
		SELECT id, title, frequency, owner_id, notes, created_at
		FROM habits
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, storageError("query habits", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []Habit
	for rows.Next() {
		var h Habit
		if err := rows.Scan(&h.ID, &h.Title, &h.Frequency, &h.OwnerID, &h.Notes, &h.CreatedAt); err != nil {
			return nil, storageError("scan habit", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (c *sqliteClient) Get(ctx context.Context, id string) (Habit, error) {
	db, err := c.openDB(ctx)
	if err != nil {
		return Habit{}, err
	}
	defer func() {
		_ = db.Close()
	}()

	row := db.QueryRowContext(ctx, `
		SELECT id, title, frequency, owner_id, notes, created_at
		FROM habits
		WHERE id = ?
	`, id)

	var h Habit
	if err := row.Scan(&h.ID, &h.Title, &h.Frequency, &h.OwnerID, &h.Notes, &h.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Habit{}, notFoundError(id)
		}
		return Habit{}, storageError("scan habit", err)
	}
	return h, nil
}

func (c *sqliteClient) Create(ctx context.Context, draft NewHabit) (string, error) {
	if err := domain.ValidateTitle(draft.Title); err != nil {
		return "", err
	}
	freq, err := domain.ParseFrequency(draft.Frequency)
	if err != nil {
		return "", err
	}
	if err := freq.Validate(); err != nil {
		return "", err
	}
	if strings.TrimSpace(draft.OwnerID) == "" {
		return "", invalidDataError("owner id is required")
	}

	db, err := c.openDB(ctx)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = db.Close()
	}()

	id := newHabitID()
	createdAt := time.Now().UTC().Format(time.RFC3339)
	_, err = db.ExecContext(ctx, `
		INSERT INTO habits (id, title, frequency, owner_id, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, draft.Title, freq.String(), draft.OwnerID, draft.Notes, createdAt)
	if err != nil {
		return "", storageError("insert habit", err)
	}
	return id, nil
}

func (c *sqliteClient) UpdateNotes(ctx context.Context, id, notes string) error {
	db, err := c.openDB(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	res, err := db.ExecContext(ctx, `UPDATE habits SET notes = ? WHERE id = ?`, notes, id)
	if err != nil {
		return storageError("update notes", err)
	}
	return requireRowAffected(res, id)
}

func (c *sqliteClient) Delete(ctx context.Context, id string) error {
	db, err := c.openDB(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	// Completions are removed explicitly rather than via the FK cascade so
	// the delete behaves the same regardless of the foreign_keys pragma.
	if _, err := db.ExecContext(ctx, `DELETE FROM completions WHERE habit_id = ?`, id); err != nil {
		return storageError("delete completions", err)
	}
	res, err := db.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return storageError("delete habit", err)
	}
	return requireRowAffected(res, id)
}

func (c *sqliteClient) SetDone(ctx context.Context, id string, day time.Time, done bool) error {
	db, err := c.openDB(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	key := DayKey(day)
	if done {
		_, err = db.ExecContext(ctx, `
			INSERT OR IGNORE INTO completions (habit_id, day) VALUES (?, ?)
		`, id, key)
	} else {
		_, err = db.ExecContext(ctx, `
			DELETE FROM completions WHERE habit_id = ? AND day = ?
		`, id, key)
	}
	if err != nil {
		return storageError("set done", err)
	}
	return nil
}

func (c *sqliteClient) CompletedOn(ctx context.Context, day time.Time) (map[string]bool, error) {
	db, err := c.openDB(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := db.QueryContext(ctx, `
		SELECT habit_id FROM completions WHERE day = ?
	`, DayKey(day))
	if err != nil {
		return nil, storageError("query completions", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	done := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, storageError("scan completion", err)
		}
		done[id] = true
	}
	return done, rows.Err()
}

func (c *sqliteClient) Completions(ctx context.Context, habitID string) ([]Completion, error) {
	db, err := c.openDB(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := db.QueryContext(ctx, `
		SELECT habit_id, day FROM completions WHERE habit_id = ? ORDER BY day
	`, habitID)
	if err != nil {
		return nil, storageError("query habit completions", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []Completion
	for rows.Next() {
		var comp Completion
		if err := rows.Scan(&comp.HabitID, &comp.Day); err != nil {
			return nil, storageError("scan completion", err)
		}
		out = append(out, comp)
	}
	return out, rows.Err()
}

func requireRowAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return storageError("rows affected", err)
	}
	if n == 0 {
		return notFoundError(id)
	}
	return nil
}

func newHabitID() string {
	return "hb-" + uuid.NewString()[:8]
}

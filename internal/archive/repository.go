package archive

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"clock_tui/internal/lapledger"
	"clock_tui/internal/timekeeper"

	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("session not found")

type Repository struct {
	db *sql.DB
}

// NewRepository opens (and creates if needed) the sqlite archive at path.
func NewRepository(path string) (*Repository, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create archive dir")
		}
	}
	return open(path)
}

// OpenExisting opens the archive at path without creating it. A missing
// file yields an error matching os.ErrNotExist.
func OpenExisting(path string) (*Repository, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrap(err, "stat archive")
	}
	return open(path)
}

func open(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, errors.Wrap(err, "open archive")
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping archive")
	}

	repo := &Repository{db: db}
	if err := repo.init(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "init archive schema")
	}

	return repo, nil
}

func (r *Repository) init() error {
	sessionsQuery := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		started_at TEXT NOT NULL,
		ended_at TEXT NOT NULL,
		total_seconds INTEGER NOT NULL
	)
	`
	if _, err := r.db.Exec(sessionsQuery); err != nil {
		return err
	}

	lapsQuery := `
	CREATE TABLE IF NOT EXISTS laps (
		session_id TEXT NOT NULL,
		lap_index INTEGER NOT NULL,
		lap_seconds INTEGER NOT NULL,
		total_seconds INTEGER NOT NULL,
		PRIMARY KEY (session_id, lap_index),
		FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
	)
	`
	_, err := r.db.Exec(lapsQuery)
	return err
}

// Save writes s and its laps in one transaction. An empty ID is replaced with
// a new uuid, which is set on s only once the session is committed.
func (r *Repository) Save(ctx context.Context, s *Session) error {
	id := s.ID
	if id == "" {
		id = uuid.NewString()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin save")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO sessions (id, started_at, ended_at, total_seconds) VALUES (?, ?, ?, ?)",
		id,
		s.StartedAt.UTC().Format(time.RFC3339),
		s.EndedAt.UTC().Format(time.RFC3339),
		int64(s.TotalSeconds),
	)
	if err != nil {
		return errors.Wrapf(err, "insert session %s", id)
	}

	for _, l := range s.Laps {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO laps (session_id, lap_index, lap_seconds, total_seconds) VALUES (?, ?, ?, ?)",
			id, int64(l.Index), int64(l.Lap.TotalSeconds()), int64(l.Cumulative.TotalSeconds()),
		)
		if err != nil {
			return errors.Wrapf(err, "insert lap %d of session %s", l.Index, id)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit save")
	}
	s.ID = id
	return nil
}

// List returns sessions newest first. A limit of zero or less returns all.
func (r *Repository) List(ctx context.Context, limit int) ([]Session, error) {
	query := "SELECT id, started_at, ended_at, total_seconds FROM sessions ORDER BY ended_at DESC, rowid DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query sessions")
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var startedAt, endedAt string
		var total int64
		if err := rows.Scan(&s.ID, &startedAt, &endedAt, &total); err != nil {
			return nil, errors.Wrap(err, "scan session")
		}
		s.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		s.EndedAt, _ = time.Parse(time.RFC3339, endedAt)
		s.TotalSeconds = uint64(total)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate sessions")
	}
	rows.Close()

	for i := range sessions {
		laps, err := r.laps(ctx, sessions[i].ID)
		if err != nil {
			return nil, err
		}
		sessions[i].Laps = laps
	}
	return sessions, nil
}

func (r *Repository) laps(ctx context.Context, sessionID string) ([]lapledger.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT lap_index, lap_seconds, total_seconds FROM laps WHERE session_id = ? ORDER BY lap_index",
		sessionID,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "query laps of session %s", sessionID)
	}
	defer rows.Close()

	var laps []lapledger.Record
	for rows.Next() {
		var index, lap, total int64
		if err := rows.Scan(&index, &lap, &total); err != nil {
			return nil, errors.Wrap(err, "scan lap")
		}
		laps = append(laps, lapledger.Record{
			Index:      uint32(index),
			Lap:        timekeeper.FromSeconds(uint64(lap)),
			Cumulative: timekeeper.FromSeconds(uint64(total)),
		})
	}
	return laps, errors.Wrap(rows.Err(), "iterate laps")
}

// Delete removes a session and its laps. It returns ErrNotFound when no
// session has the given id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return errors.Wrapf(err, "delete session %s", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "delete session %s", id)
	}
	if n == 0 {
		return errors.Wrapf(ErrNotFound, "delete session %s", id)
	}
	return nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// Package persistence keeps a SQLite journal of editing sessions.
//
// The journal records what each stroke did, not the resulting map: it is a
// diagnostics trail and cannot be used to restore a grid.
package persistence

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hexmap/internal/world"
)

// Journal wraps a SQLite connection holding edit sessions.
type Journal struct {
	conn *sqlx.DB
}

// Session describes one run of an edit script against a fresh grid.
type Session struct {
	ID        string `db:"id"`
	Script    string `db:"script"`
	Width     int    `db:"width"`
	Height    int    `db:"height"`
	Seed      int64  `db:"seed"`
	CreatedAt int64  `db:"created_at"` // Unix seconds
	Strokes   int    `db:"strokes"`
}

// Created returns the session start time.
func (s Session) Created() time.Time {
	return time.Unix(s.CreatedAt, 0)
}

// StrokeRecord is one journaled stroke. Session is filled in on read.
type StrokeRecord struct {
	Session string `db:"session_id"`
	Index   int    `db:"idx"`
	Name    string `db:"name"`
	Col     int    `db:"col"`
	Row     int    `db:"row"`
	Brush   int    `db:"brush"`
	Cells   int    `db:"cells"`
	Changed bool   `db:"changed"`
	Regions int    `db:"regions"`
}

// Open opens or creates a journal database at the given path.
func Open(path string) (*Journal, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	j := &Journal{conn: conn}
	if err := j.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return j, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.conn.Close()
}

func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		script TEXT NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS strokes (
		session_id TEXT NOT NULL REFERENCES sessions(id),
		idx INTEGER NOT NULL,
		name TEXT NOT NULL,
		col INTEGER NOT NULL,
		row INTEGER NOT NULL,
		brush INTEGER NOT NULL,
		cells INTEGER NOT NULL,
		changed INTEGER NOT NULL,
		regions INTEGER NOT NULL,
		PRIMARY KEY (session_id, idx)
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at);
	`
	_, err := j.conn.Exec(schema)
	return err
}

// BeginSession registers a new session for script run against g and returns
// its id.
func (j *Journal) BeginSession(script string, g *world.Grid, seed int64) (string, error) {
	id := uuid.NewString()
	_, err := j.conn.Exec(
		"INSERT INTO sessions (id, script, width, height, seed, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		id, script, g.Width(), g.Height(), seed, time.Now().Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}
	slog.Debug("journal session started", "session", id, "script", script)
	return id, nil
}

// RecordStrokes appends strokes to a session in one transaction.
func (j *Journal) RecordStrokes(session string, strokes []StrokeRecord) error {
	if len(strokes) == 0 {
		return nil
	}

	tx, err := j.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT INTO strokes
		(session_id, idx, name, col, row, brush, cells, changed, regions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range strokes {
		changed := 0
		if r.Changed {
			changed = 1
		}
		_, err := stmt.Exec(session, r.Index, r.Name, r.Col, r.Row,
			r.Brush, r.Cells, changed, r.Regions)
		if err != nil {
			return fmt.Errorf("insert stroke %d: %w", r.Index, err)
		}
	}

	return tx.Commit()
}

// RecordStroke appends a single stroke.
func (j *Journal) RecordStroke(session string, r StrokeRecord) error {
	return j.RecordStrokes(session, []StrokeRecord{r})
}

// Sessions lists all sessions, newest first, with their stroke counts.
func (j *Journal) Sessions() ([]Session, error) {
	var sessions []Session
	err := j.conn.Select(&sessions, `
		SELECT s.id, s.script, s.width, s.height, s.seed, s.created_at,
		       (SELECT COUNT(*) FROM strokes t WHERE t.session_id = s.id) AS strokes
		FROM sessions s
		ORDER BY s.created_at DESC, s.rowid DESC`)
	return sessions, err
}

// Session looks up one session by id.
func (j *Journal) Session(id string) (Session, error) {
	var s Session
	err := j.conn.Get(&s, `
		SELECT s.id, s.script, s.width, s.height, s.seed, s.created_at,
		       (SELECT COUNT(*) FROM strokes t WHERE t.session_id = s.id) AS strokes
		FROM sessions s WHERE s.id = ?`, id)
	if err != nil {
		return Session{}, fmt.Errorf("session %s: %w", id, err)
	}
	return s, nil
}

// Strokes returns the strokes of a session in the order they were played.
func (j *Journal) Strokes(session string) ([]StrokeRecord, error) {
	var strokes []StrokeRecord
	err := j.conn.Select(&strokes, `
		SELECT session_id, idx, name, col, row, brush, cells, changed, regions
		FROM strokes WHERE session_id = ? ORDER BY idx`, session)
	return strokes, err
}

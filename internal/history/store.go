package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"importcut/internal/config"
)

// Session is one recorded import: the drop that started it and the files it
// resolved to.
type Session struct {
	ID          string
	DisplayName string
	SourceURL   string
	CutPath     string
	MediaPath   string
	FrameRate   float64
	CreatedAt   time.Time
}

// Store manages import history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const schema = `CREATE TABLE IF NOT EXISTS import_sessions (
    id TEXT PRIMARY KEY,
    display_name TEXT NOT NULL,
    source_url TEXT,
    cut_path TEXT NOT NULL,
    media_path TEXT,
    frame_rate REAL NOT NULL,
    created_at TEXT NOT NULL
)`

// Open initializes or connects to the history database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.LogDir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts a session, assigning an ID and timestamp when absent.
func (s *Store) Record(ctx context.Context, session Session) (*Session, error) {
	if strings.TrimSpace(session.CutPath) == "" {
		return nil, errors.New("session has no cut path")
	}
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO import_sessions (
            id, display_name, source_url, cut_path, media_path, frame_rate, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		session.ID,
		session.DisplayName,
		nullableString(session.SourceURL),
		session.CutPath,
		nullableString(session.MediaPath),
		session.FrameRate,
		session.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return &session, nil
}

// GetByID fetches a session by identifier; a missing ID yields (nil, nil).
func (s *Store) GetByID(ctx context.Context, id string) (*Session, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM import_sessions WHERE id = ?`, id)
	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// List returns sessions newest first.
func (s *Store) List(ctx context.Context) ([]*Session, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+sessionColumns+` FROM import_sessions ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// Count returns the number of recorded sessions.
func (s *Store) Count(ctx context.Context) (int, error) {
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM import_sessions`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return count, nil
}

// Clear removes all sessions.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM import_sessions`)
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	return res.RowsAffected()
}

const sessionColumns = "id, display_name, source_url, cut_path, media_path, frame_rate, created_at"

func scanSession(scanner interface{ Scan(dest ...any) error }) (*Session, error) {
	var (
		id         string
		name       string
		sourceURL  sql.NullString
		cutPath    string
		mediaPath  sql.NullString
		frameRate  float64
		createdRaw string
	)
	if err := scanner.Scan(&id, &name, &sourceURL, &cutPath, &mediaPath, &frameRate, &createdRaw); err != nil {
		return nil, err
	}

	session := &Session{
		ID:          id,
		DisplayName: name,
		SourceURL:   sourceURL.String,
		CutPath:     cutPath,
		MediaPath:   mediaPath.String,
		FrameRate:   frameRate,
	}
	if created, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		session.CreatedAt = created
	}
	return session, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

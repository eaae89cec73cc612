// Package storage provides SQLite persistence for recorded move
// sessions. It uses the pure-Go modernc.org/sqlite driver, so no CGO is
// required.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite database holding sessions and their moves.
type Store struct {
	db   *sql.DB
	path string
}

// Session is one recorded interaction with a cube: its size, the
// scramble it started from, and (via Moves) the notation applied since.
type Session struct {
	ID        string
	CubeSize  int
	Scramble  string
	CreatedAt time.Time
}

// DefaultPath returns the database location under the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".nxcube", "nxcube.db"), nil
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot enable foreign keys: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			cube_size  INTEGER NOT NULL,
			scramble   TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS session_moves (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(session_id),
			seq        INTEGER NOT NULL,
			notation   TEXT NOT NULL,
			applied_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_session_moves_order
			ON session_moves(session_id, seq);
	`
	_, err := s.db.Exec(schema)
	return err
}

// CreateSession records a new session and returns its id.
func (s *Store) CreateSession(cubeSize int, scramble string) (string, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(`
		INSERT INTO sessions (session_id, cube_size, scramble, created_at)
		VALUES (?, ?, ?, ?)
	`, id, cubeSize, scramble, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("storage: cannot create session: %w", err)
	}
	return id, nil
}

// AppendMove stores the next applied notation token for a session.
func (s *Store) AppendMove(sessionID string, seq int, notation string) error {
	_, err := s.db.Exec(`
		INSERT INTO session_moves (session_id, seq, notation, applied_at)
		VALUES (?, ?, ?, ?)
	`, sessionID, seq, notation, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("storage: cannot append move: %w", err)
	}
	return nil
}

// Session loads a single session by id.
func (s *Store) Session(sessionID string) (Session, error) {
	var sess Session
	var createdAt string
	err := s.db.QueryRow(`
		SELECT session_id, cube_size, scramble, created_at
		FROM sessions WHERE session_id = ?
	`, sessionID).Scan(&sess.ID, &sess.CubeSize, &sess.Scramble, &createdAt)
	if err != nil {
		return Session{}, fmt.Errorf("storage: cannot load session %s: %w", sessionID, err)
	}
	sess.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return sess, nil
}

// Sessions lists all sessions, newest first.
func (s *Store) Sessions() ([]Session, error) {
	rows, err := s.db.Query(`
		SELECT session_id, cube_size, scramble, created_at
		FROM sessions ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var createdAt string
		if err := rows.Scan(&sess.ID, &sess.CubeSize, &sess.Scramble, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan session: %w", err)
		}
		sess.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// Moves returns a session's notation tokens in application order.
func (s *Store) Moves(sessionID string) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT notation FROM session_moves
		WHERE session_id = ? ORDER BY seq ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load moves: %w", err)
	}
	defer rows.Close()

	var moves []string
	for rows.Next() {
		var notation string
		if err := rows.Scan(&notation); err != nil {
			return nil, fmt.Errorf("storage: cannot scan move: %w", err)
		}
		moves = append(moves, notation)
	}
	return moves, rows.Err()
}

package scaffold

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

const stateSchema = `
CREATE TABLE IF NOT EXISTS scaffold_steps (
	project      TEXT NOT NULL,
	step         TEXT NOT NULL,
	completed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (project, step)
);
`

// StateStore records completed scaffold steps so an interrupted run can
// resume where it stopped.
type StateStore struct {
	db *sql.DB
	mu sync.Mutex
}

func OpenState(dbPath string) (*StateStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		return nil, err
	}

	if _, err := db.Exec(stateSchema); err != nil {
		return nil, fmt.Errorf("failed to execute schema: %w", err)
	}

	return &StateStore{db: db}, nil
}

func (s *StateStore) Done(project, step string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM scaffold_steps WHERE project = ? AND step = ?`,
		project, step,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *StateStore) MarkDone(project, step string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO scaffold_steps (project, step) VALUES (?, ?)`,
		project, step,
	)
	return err
}

// Reset forgets every recorded step for a project.
func (s *StateStore) Reset(project string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`DELETE FROM scaffold_steps WHERE project = ?`, project)
	return err
}

func (s *StateStore) Close() error {
	return s.db.Close()
}

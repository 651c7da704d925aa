// Package repository provides data access for per-portfolio ledger stores.
// Each portfolio owns one SQLite file; a Store is the handle to it.
package repository

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/database"
)

// Store is the handle to one portfolio's ledger store. After Teardown every
// operation on the handle fails with apperrors.ErrStoreUnavailable.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	path   string
	closed bool
}

// OpenStore opens (creating if necessary) the SQLite store at the given path
// and applies pending schema migrations. The parent directory is created if
// it does not exist.
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
		}
	}

	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	return &Store{db: db, path: path}, nil
}

// DB returns the underlying connection, or ErrStoreUnavailable once the
// store has been closed or torn down.
func (s *Store) DB() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, apperrors.ErrStoreUnavailable
	}
	return s.db, nil
}

// Path returns the store's file path.
func (s *Store) Path() string {
	return s.path
}

// Close releases the store's database connection without removing the
// underlying file. Subsequent operations fail with ErrStoreUnavailable.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// Teardown releases the store's resources and permanently removes the
// persisted data file. Best effort: the handle is marked unavailable even if
// the file removal fails.
func (s *Store) Teardown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		if err := s.db.Close(); err != nil {
			// Still attempt to remove the file below.
			_ = os.Remove(s.path)
			return fmt.Errorf("failed to close store: %w", err)
		}
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove store file: %w", err)
	}
	return nil
}

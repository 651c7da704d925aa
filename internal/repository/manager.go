package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/apperrors"
)

const storeExtension = ".db"

// StoreManager maps portfolio names to their ledger store files under a
// single data directory, keeping at most one open handle per portfolio.
// Portfolio existence is defined by the presence of the store file.
type StoreManager struct {
	dir string

	mu     sync.Mutex
	stores map[string]*Store
}

// NewStoreManager creates a StoreManager rooted at the given data directory.
// The directory is created lazily when the first store is opened.
func NewStoreManager(dir string) *StoreManager {
	return &StoreManager{
		dir:    dir,
		stores: make(map[string]*Store),
	}
}

// storePath maps a portfolio name to its store file path.
func (m *StoreManager) storePath(name string) string {
	return filepath.Join(m.dir, name+storeExtension)
}

// Get returns the store for an existing portfolio, opening it if needed.
// Returns apperrors.ErrPortfolioNotFound if no store file exists.
func (m *StoreManager) Get(name string) (*Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[name]; ok {
		return store, nil
	}

	path := m.storePath(name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrPortfolioNotFound, name)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	store, err := OpenStore(path)
	if err != nil {
		return nil, err
	}
	m.stores[name] = store
	return store, nil
}

// GetOrCreate returns the store for a portfolio, creating the store file if
// the portfolio does not exist yet.
func (m *StoreManager) GetOrCreate(name string) (*Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[name]; ok {
		return store, nil
	}

	store, err := OpenStore(m.storePath(name))
	if err != nil {
		return nil, err
	}
	m.stores[name] = store
	return store, nil
}

// Exists reports whether a portfolio store file is present.
func (m *StoreManager) Exists(name string) bool {
	_, err := os.Stat(m.storePath(name))
	return err == nil
}

// List returns the names of all portfolios in the data directory, sorted.
func (m *StoreManager) List() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), storeExtension) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), storeExtension))
	}
	sort.Strings(names)
	return names, nil
}

// Remove tears down a portfolio's store, removing its persisted data.
// Returns false when no such portfolio exists; removal of a missing
// portfolio is not an error.
func (m *StoreManager) Remove(name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	store, open := m.stores[name]
	if open {
		delete(m.stores, name)
		return true, store.Teardown()
	}

	path := m.storePath(name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	if err := os.Remove(path); err != nil {
		return true, fmt.Errorf("failed to remove store file: %w", err)
	}
	return true, nil
}

// CloseAll closes every open store handle without removing data.
// Called on server shutdown.
func (m *StoreManager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for name, store := range m.stores {
		_ = store.Close()
		delete(m.stores, name)
	}
}

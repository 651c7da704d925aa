package testutil

import (
	"path/filepath"
	"testing"

	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/repository"
)

// SetupTestStore creates a file-backed portfolio store in a temporary
// directory. The store is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    store := testutil.SetupTestStore(t)
//	    // store is ready to use with schema migrated
//	}
func SetupTestStore(t *testing.T) *repository.Store {
	t.Helper()

	store, err := repository.OpenStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// SetupTestManager creates a StoreManager rooted in a temporary directory,
// so each test gets an isolated portfolio universe.
func SetupTestManager(t *testing.T) *repository.StoreManager {
	t.Helper()

	manager := repository.NewStoreManager(t.TempDir())

	t.Cleanup(manager.CloseAll)

	return manager
}

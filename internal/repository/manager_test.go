package repository_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/repository"
)

func TestStoreManager_Get(t *testing.T) {
	t.Run("returns not found for missing portfolio", func(t *testing.T) {
		manager := repository.NewStoreManager(t.TempDir())
		defer manager.CloseAll()

		_, err := manager.Get("missing")
		if !errors.Is(err, apperrors.ErrPortfolioNotFound) {
			t.Errorf("Expected ErrPortfolioNotFound, got %v", err)
		}
	})

	t.Run("opens an existing portfolio store", func(t *testing.T) {
		manager := repository.NewStoreManager(t.TempDir())
		defer manager.CloseAll()

		if _, err := manager.GetOrCreate("savings"); err != nil {
			t.Fatalf("GetOrCreate() returned unexpected error: %v", err)
		}

		store, err := manager.Get("savings")
		if err != nil {
			t.Fatalf("Get() returned unexpected error: %v", err)
		}
		if store == nil {
			t.Fatal("Expected a store handle, got nil")
		}
	})

	t.Run("returns the same handle for repeated lookups", func(t *testing.T) {
		manager := repository.NewStoreManager(t.TempDir())
		defer manager.CloseAll()

		first, err := manager.GetOrCreate("savings")
		if err != nil {
			t.Fatalf("GetOrCreate() returned unexpected error: %v", err)
		}
		second, err := manager.Get("savings")
		if err != nil {
			t.Fatalf("Get() returned unexpected error: %v", err)
		}

		if first != second {
			t.Error("Expected cached store handle to be reused")
		}
	})
}

func TestStoreManager_List(t *testing.T) {
	t.Run("returns empty slice when data directory is missing", func(t *testing.T) {
		manager := repository.NewStoreManager(filepath.Join(t.TempDir(), "never-created"))
		defer manager.CloseAll()

		names, err := manager.List()
		if err != nil {
			t.Fatalf("List() returned unexpected error: %v", err)
		}
		if len(names) != 0 {
			t.Errorf("Expected no portfolios, got %v", names)
		}
	})

	t.Run("returns portfolio names sorted", func(t *testing.T) {
		manager := repository.NewStoreManager(t.TempDir())
		defer manager.CloseAll()

		for _, name := range []string{"zeta", "alpha", "mid"} {
			if _, err := manager.GetOrCreate(name); err != nil {
				t.Fatalf("GetOrCreate(%q) returned unexpected error: %v", name, err)
			}
		}

		names, err := manager.List()
		if err != nil {
			t.Fatalf("List() returned unexpected error: %v", err)
		}

		expected := []string{"alpha", "mid", "zeta"}
		if !reflect.DeepEqual(names, expected) {
			t.Errorf("Expected %v, got %v", expected, names)
		}
	})

	t.Run("ignores non-store files in the data directory", func(t *testing.T) {
		dir := t.TempDir()
		manager := repository.NewStoreManager(dir)
		defer manager.CloseAll()

		if _, err := manager.GetOrCreate("savings"); err != nil {
			t.Fatalf("GetOrCreate() returned unexpected error: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
			t.Fatalf("Failed to write stray file: %v", err)
		}

		names, err := manager.List()
		if err != nil {
			t.Fatalf("List() returned unexpected error: %v", err)
		}
		if !reflect.DeepEqual(names, []string{"savings"}) {
			t.Errorf("Expected only savings, got %v", names)
		}
	})
}

func TestStoreManager_Remove(t *testing.T) {
	t.Run("removes an open store and its file", func(t *testing.T) {
		dir := t.TempDir()
		manager := repository.NewStoreManager(dir)
		defer manager.CloseAll()

		if _, err := manager.GetOrCreate("savings"); err != nil {
			t.Fatalf("GetOrCreate() returned unexpected error: %v", err)
		}

		removed, err := manager.Remove("savings")
		if err != nil {
			t.Fatalf("Remove() returned unexpected error: %v", err)
		}
		if !removed {
			t.Error("Expected Remove() to report true for an existing portfolio")
		}
		if _, err := os.Stat(filepath.Join(dir, "savings.db")); !os.IsNotExist(err) {
			t.Error("Expected store file to be deleted")
		}
		if manager.Exists("savings") {
			t.Error("Expected portfolio to no longer exist")
		}
	})

	t.Run("returns false for a missing portfolio", func(t *testing.T) {
		manager := repository.NewStoreManager(t.TempDir())
		defer manager.CloseAll()

		removed, err := manager.Remove("missing")
		if err != nil {
			t.Fatalf("Remove() returned unexpected error: %v", err)
		}
		if removed {
			t.Error("Expected Remove() to report false for a missing portfolio")
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		manager := repository.NewStoreManager(t.TempDir())
		defer manager.CloseAll()

		if _, err := manager.GetOrCreate("savings"); err != nil {
			t.Fatalf("GetOrCreate() returned unexpected error: %v", err)
		}

		if removed, err := manager.Remove("savings"); err != nil || !removed {
			t.Fatalf("First Remove() = (%v, %v), expected (true, nil)", removed, err)
		}
		if removed, err := manager.Remove("savings"); err != nil || removed {
			t.Fatalf("Second Remove() = (%v, %v), expected (false, nil)", removed, err)
		}
	})
}

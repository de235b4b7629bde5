// Package testutil provides shared fixtures for freight tests: a migrated
// in-memory session store and a fluent builder for category catalogs.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/freight/internal/storage"
)

// SetupTestDB creates a migrated in-memory session store that is closed when
// the test ends.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return store
}

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/freight/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestStorage returns a migrated in-memory store closed at test end.
func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	require.ErrorIs(t, err, ErrEmptyString)
}

func TestSQLiteStorage_FileBacked(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "nested", "sessions.db")

	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))
	assert.Equal(t, dbPath, store.Path())

	state := model.ClassificationState{
		SelectedCategory: model.CategoryFragile,
		EnabledModes:     model.NewModeSet(model.ModeAir, model.ModeRoad),
	}
	require.NoError(t, store.SaveSession(ctx, "s-1", state))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer reopened.Close()
	require.NoError(t, reopened.Migrate(ctx))

	record, err := reopened.GetSession(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, state, record.State)
}

func TestSQLiteStorage_MigrateIsIdempotent(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Migrate(ctx))

	version, err := store.schemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestSQLiteStorage_NilContext(t *testing.T) {
	store := createTestStorage(t)

	//nolint:staticcheck // exercising the nil guard
	err := store.SaveSession(nil, "s-1", model.ClassificationState{SelectedCategory: model.CategoryGeneral})
	require.ErrorIs(t, err, ErrNilContext)
}

package storage

import (
	"context"
	"testing"

	"github.com/Veraticus/freight/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStorage_SaveAndGetSession(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	initial := model.ClassificationState{
		SelectedCategory: model.CategoryGeneral,
		EnabledModes:     model.AllModes(),
	}
	require.NoError(t, store.SaveSession(ctx, "session-a", initial))

	record, err := store.GetSession(ctx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, "session-a", record.ID)
	assert.Equal(t, initial, record.State)
	assert.False(t, record.CreatedAt.IsZero())

	updated := model.ClassificationState{
		SelectedCategory: model.CategoryHazmat,
		EnabledModes:     model.NewModeSet(model.ModeSea, model.ModeRoad),
	}
	require.NoError(t, store.SaveSession(ctx, "session-a", updated))

	record, err = store.GetSession(ctx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, updated, record.State)
	assert.False(t, record.UpdatedAt.Before(record.CreatedAt))
}

func TestSQLiteStorage_EmptyModeSetRoundTrips(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	state := model.ClassificationState{SelectedCategory: model.CategoryLivestock}
	require.NoError(t, store.SaveSession(ctx, "empty", state))

	record, err := store.GetSession(ctx, "empty")
	require.NoError(t, err)
	assert.True(t, record.State.EnabledModes.IsEmpty())
}

func TestSQLiteStorage_SaveSession_Validation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	tests := []struct {
		wantErr error
		name    string
		id      string
		state   model.ClassificationState
	}{
		{
			name:    "empty id",
			id:      "",
			state:   model.ClassificationState{SelectedCategory: model.CategoryGeneral},
			wantErr: ErrEmptyString,
		},
		{
			name:    "missing category",
			id:      "s",
			state:   model.ClassificationState{EnabledModes: model.AllModes()},
			wantErr: ErrInvalidState,
		},
		{
			name:    "unknown mode bits",
			id:      "s",
			state:   model.ClassificationState{SelectedCategory: model.CategoryGeneral, EnabledModes: model.ModeSet(0xF0)},
			wantErr: ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.SaveSession(ctx, tt.id, tt.state)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSQLiteStorage_GetSession_NotFound(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.GetSession(context.Background(), "missing")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSQLiteStorage_ListAndDeleteSessions(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	records, err := store.ListSessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	for _, id := range []string{"one", "two", "three"} {
		require.NoError(t, store.SaveSession(ctx, id, model.ClassificationState{
			SelectedCategory: model.CategoryGeneral,
			EnabledModes:     model.AllModes(),
		}))
	}

	records, err = store.ListSessions(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	require.NoError(t, store.DeleteSession(ctx, "two"))
	require.ErrorIs(t, store.DeleteSession(ctx, "two"), ErrSessionNotFound)

	records, err = store.ListSessions(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	assert.ElementsMatch(t, []string{"one", "three"}, ids)
}

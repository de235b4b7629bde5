package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/freight/internal/model"
	"github.com/Veraticus/freight/internal/service"
)

// SaveSession inserts or replaces the state stored for id.
func (s *SQLiteStorage) SaveSession(ctx context.Context, id string, state model.ClassificationState) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	if err := validateState(state); err != nil {
		return err
	}

	now := time.Now().UTC()
	query := `
		INSERT INTO sessions (id, selected_category, enabled_modes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			selected_category = excluded.selected_category,
			enabled_modes = excluded.enabled_modes,
			updated_at = excluded.updated_at`

	if _, err := s.db.ExecContext(ctx, query,
		id, string(state.SelectedCategory), state.EnabledModes.String(), now, now); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	slog.Debug("saved session",
		"id", id,
		"category", state.SelectedCategory,
		"enabled_modes", state.EnabledModes.String())
	return nil
}

// GetSession returns the stored session or ErrSessionNotFound.
func (s *SQLiteStorage) GetSession(ctx context.Context, id string) (*service.SessionRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, selected_category, enabled_modes, created_at, updated_at
		FROM sessions
		WHERE id = ?`

	record, err := scanSession(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// ListSessions returns every stored session, most recently updated first.
func (s *SQLiteStorage) ListSessions(ctx context.Context) ([]service.SessionRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, selected_category, enabled_modes, created_at, updated_at
		FROM sessions
		ORDER BY updated_at DESC, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var records []service.SessionRecord
	for rows.Next() {
		record, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sessions: %w", err)
	}

	return records, nil
}

// DeleteSession removes the session. Deleting a missing session returns
// ErrSessionNotFound.
func (s *SQLiteStorage) DeleteSession(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	slog.Debug("deleted session", "id", id)
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*service.SessionRecord, error) {
	var (
		record   service.SessionRecord
		category string
		modes    string
	)
	if err := row.Scan(&record.ID, &category, &modes, &record.CreatedAt, &record.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}

	enabled, err := model.ParseModeSet(modes)
	if err != nil {
		return nil, fmt.Errorf("%w: session %s: %v", ErrInvalidState, record.ID, err)
	}

	record.State = model.ClassificationState{
		SelectedCategory: model.CategoryID(category),
		EnabledModes:     enabled,
	}
	return &record, nil
}

var _ service.Storage = (*SQLiteStorage)(nil)

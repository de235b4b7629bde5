// Package session ties a classification engine to the session store. Each
// session owns one engine; every state change is written to the store so
// other views of the same process can observe it.
package session

import (
	"context"
	"fmt"

	"github.com/Veraticus/freight/internal/classification"
	"github.com/Veraticus/freight/internal/common"
	"github.com/Veraticus/freight/internal/model"
	"github.com/Veraticus/freight/internal/service"
	"github.com/google/uuid"
)

// Manager opens and tears down classification sessions.
type Manager struct {
	store   service.Storage
	catalog *classification.Catalog
	newID   func() string
}

// Option configures a Manager.
type Option func(*Manager)

// WithIDGenerator replaces the uuid-based session id generator.
func WithIDGenerator(gen func() string) Option {
	return func(m *Manager) {
		m.newID = gen
	}
}

// NewManager creates a manager over store. A nil catalog uses the built-in one.
func NewManager(store service.Storage, catalog *classification.Catalog, opts ...Option) *Manager {
	if catalog == nil {
		catalog = classification.DefaultCatalog()
	}

	m := &Manager{
		store:   store,
		catalog: catalog,
		newID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Catalog returns the catalog sessions are created with.
func (m *Manager) Catalog() *classification.Catalog {
	return m.catalog
}

// Open starts a session in the catalog's default state and stores it.
func (m *Manager) Open(ctx context.Context) (*Session, error) {
	s := &Session{
		id:     m.newID(),
		engine: classification.NewEngine(m.catalog),
		store:  m.store,
	}

	if err := m.store.SaveSession(ctx, s.id, s.engine.State()); err != nil {
		return nil, fmt.Errorf("failed to store new session: %w", err)
	}

	common.LogInfo("opened classification session", common.Fields{
		"session":  s.id,
		"category": s.engine.State().SelectedCategory,
	})
	return s, nil
}

// Resume rebuilds a session from its stored state.
func (m *Manager) Resume(ctx context.Context, id string) (*Session, error) {
	record, err := m.store.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	engine, err := classification.RestoreEngine(m.catalog, record.State)
	if err != nil {
		return nil, fmt.Errorf("stored session %s: %w", id, err)
	}

	common.LogDebug("resumed classification session", common.Fields{"session": id})
	return &Session{id: id, engine: engine, store: m.store}, nil
}

// Close tears the session down and removes its stored state.
func (m *Manager) Close(ctx context.Context, s *Session) error {
	if err := m.store.DeleteSession(ctx, s.id); err != nil {
		return fmt.Errorf("failed to remove session %s: %w", s.id, err)
	}
	common.LogInfo("closed classification session", common.Fields{"session": s.id})
	return nil
}

// Session is a single user's classification state.
type Session struct {
	engine *classification.Engine
	store  service.Storage
	id     string
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Engine returns the engine backing the session.
func (s *Session) Engine() *classification.Engine {
	return s.engine
}

// State returns the current state.
func (s *Session) State() model.ClassificationState {
	return s.engine.State()
}

// SelectCategory selects a category and stores the result. Engine errors are
// returned unchanged and nothing is stored for them. If the store fails the
// engine is moved back to its previous state.
func (s *Session) SelectCategory(ctx context.Context, id model.CategoryID) (model.ClassificationState, error) {
	prev := s.engine.State()
	state, err := s.engine.SelectCategory(id)
	if err != nil {
		return state, err
	}
	return s.commit(ctx, prev, state)
}

// ToggleMode toggles a mode and stores the result, with the same rollback as
// SelectCategory.
func (s *Session) ToggleMode(ctx context.Context, mode model.TransportMode) (model.ClassificationState, error) {
	prev := s.engine.State()
	state, err := s.engine.ToggleMode(mode)
	if err != nil {
		return state, err
	}
	return s.commit(ctx, prev, state)
}

// commit stores state, restoring prev in the engine when that fails.
func (s *Session) commit(ctx context.Context, prev, state model.ClassificationState) (model.ClassificationState, error) {
	if err := s.Save(ctx, state); err != nil {
		if resetErr := s.engine.Reset(prev); resetErr != nil {
			return s.engine.State(), fmt.Errorf("%w (rollback failed: %v)", err, resetErr)
		}
		return prev, err
	}
	return state, nil
}

// Save writes state to the store under the session id.
func (s *Session) Save(ctx context.Context, state model.ClassificationState) error {
	if err := s.store.SaveSession(ctx, s.id, state); err != nil {
		return fmt.Errorf("failed to store session %s: %w", s.id, err)
	}
	return nil
}

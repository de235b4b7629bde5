// Package service defines the interfaces shared between application layers.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/freight/internal/model"
)

// SessionRecord is the stored form of a classification session.
type SessionRecord struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	ID        string
	State     model.ClassificationState
}

// Storage defines the contract for the session store.
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, id string, state model.ClassificationState) error
	GetSession(ctx context.Context, id string) (*SessionRecord, error)
	ListSessions(ctx context.Context) ([]SessionRecord, error)
	DeleteSession(ctx context.Context, id string) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// Classifier is the engine surface consumed by the presentation layer.
type Classifier interface {
	State() model.ClassificationState
	SelectCategory(id model.CategoryID) (model.ClassificationState, error)
	ToggleMode(mode model.TransportMode) (model.ClassificationState, error)
	IsModeDisabled(mode model.TransportMode) (bool, error)
	DescribeRestrictions(id model.CategoryID) ([]string, error)
}

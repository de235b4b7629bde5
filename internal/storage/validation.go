package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/freight/internal/model"
)

// Validation errors.
var (
	ErrNilContext      = errors.New("context cannot be nil")
	ErrEmptyString     = errors.New("string parameter cannot be empty")
	ErrInvalidState    = errors.New("invalid classification state")
	ErrSessionNotFound = errors.New("session not found")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateState rejects states no engine could have produced. Category
// membership is checked by the engine, not the store.
func validateState(state model.ClassificationState) error {
	if strings.TrimSpace(string(state.SelectedCategory)) == "" {
		return fmt.Errorf("%w: missing selected category", ErrInvalidState)
	}
	if state.EnabledModes.Difference(model.AllModes()) != 0 {
		return fmt.Errorf("%w: unknown transport modes", ErrInvalidState)
	}
	return nil
}

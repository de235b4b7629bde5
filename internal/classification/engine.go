package classification

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/freight/internal/model"
)

// Engine keeps a classification state consistent with its catalog.
//
// An Engine belongs to a single session and is not safe for concurrent use.
// Every state-changing call returns the complete new state so the caller can
// re-render from it.
type Engine struct {
	catalog *Catalog
	state   model.ClassificationState
}

// NewEngine creates an engine that starts on the catalog's default category
// with every transport mode that category allows enabled. A nil or empty
// catalog uses DefaultCatalog.
func NewEngine(catalog *Catalog) *Engine {
	if catalog == nil || len(catalog.categories) == 0 {
		catalog = DefaultCatalog()
	}

	def, _ := catalog.Category(catalog.Default())
	return &Engine{
		catalog: catalog,
		state: model.ClassificationState{
			SelectedCategory: def.ID,
			EnabledModes:     model.AllModes().Difference(def.ForbiddenModes),
		},
	}
}

// RestoreEngine creates an engine positioned at a previously returned state.
// The state must name a known category and must not enable a mode that
// category forbids.
func RestoreEngine(catalog *Catalog, state model.ClassificationState) (*Engine, error) {
	if catalog == nil {
		catalog = DefaultCatalog()
	}

	e := &Engine{catalog: catalog}
	if err := e.Reset(state); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset moves the engine back to a previously returned state. The engine is
// left untouched when state names an unknown category or enables a mode that
// category forbids.
func (e *Engine) Reset(state model.ClassificationState) error {
	cat, ok := e.catalog.Category(state.SelectedCategory)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, state.SelectedCategory)
	}
	if conflict := state.EnabledModes.Intersect(cat.ForbiddenModes); !conflict.IsEmpty() {
		return fmt.Errorf("%w: %s enables %s", ErrInconsistentState, cat.ID, conflict)
	}

	e.state = state
	return nil
}

// Catalog returns the catalog the engine validates against.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// State returns the current state.
func (e *Engine) State() model.ClassificationState {
	return e.state
}

// SelectCategory makes id the selected category and disables every enabled
// mode it forbids. Modes it allows keep their current membership.
func (e *Engine) SelectCategory(id model.CategoryID) (model.ClassificationState, error) {
	cat, ok := e.catalog.Category(id)
	if !ok {
		return e.state, fmt.Errorf("%w: %q", ErrInvalidCategory, id)
	}

	removed := e.state.EnabledModes.Intersect(cat.ForbiddenModes)
	e.state = model.ClassificationState{
		SelectedCategory: cat.ID,
		EnabledModes:     e.state.EnabledModes.Difference(cat.ForbiddenModes),
	}

	slog.Debug("cargo category selected",
		"category", cat.ID,
		"removed_modes", removed.String(),
		"enabled_modes", e.state.EnabledModes.String())
	return e.state, nil
}

// ToggleMode flips whether mode is enabled. Toggling a mode the selected
// category forbids is ignored and returns the unchanged state without error.
func (e *Engine) ToggleMode(mode model.TransportMode) (model.ClassificationState, error) {
	if !mode.IsValid() {
		return e.state, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	if e.forbidden().Has(mode) {
		slog.Debug("ignored toggle of forbidden transport mode",
			"mode", mode,
			"category", e.state.SelectedCategory)
		return e.state, nil
	}

	e.state.EnabledModes = e.state.EnabledModes.Toggle(mode)
	slog.Debug("transport mode toggled",
		"mode", mode,
		"enabled", e.state.EnabledModes.Has(mode))
	return e.state, nil
}

// IsModeDisabled reports whether the selected category forbids mode.
func (e *Engine) IsModeDisabled(mode model.TransportMode) (bool, error) {
	if !mode.IsValid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	return e.forbidden().Has(mode), nil
}

// DescribeRestrictions returns the labels of the modes forbidden by the
// category in catalog order.
func (e *Engine) DescribeRestrictions(id model.CategoryID) ([]string, error) {
	return e.catalog.Restrictions(id)
}

func (e *Engine) forbidden() model.ModeSet {
	cat, _ := e.catalog.Category(e.state.SelectedCategory)
	return cat.ForbiddenModes
}

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/freight/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the picker and blocks until the user finishes or ctx is
// cancelled. It returns the final classification state.
func Run(ctx context.Context, cfg Config, opts ...tea.ProgramOption) (model.ClassificationState, error) {
	if cfg.Classifier == nil {
		return model.ClassificationState{}, errors.New("classifier is required")
	}

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	program := tea.NewProgram(New(cfg), opts...)

	final, err := program.Run()
	if err != nil {
		return cfg.Classifier.State(), fmt.Errorf("classification picker failed: %w", err)
	}

	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return cfg.Classifier.State(), nil
}

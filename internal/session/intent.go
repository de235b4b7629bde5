package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/freight/internal/common"
	"github.com/Veraticus/freight/internal/model"
)

// IntentKind distinguishes the two state-changing user intents.
type IntentKind string

// Intent kinds.
const (
	IntentSelectCategory IntentKind = "category"
	IntentToggleMode     IntentKind = "toggle"
)

// Intent is a single user action against a session.
type Intent struct {
	Kind  IntentKind
	Value string
}

func (i Intent) String() string {
	return string(i.Kind) + "=" + i.Value
}

// ParseIntent parses "category=<id>" or "toggle=<mode>". Values are passed to
// the engine lowercased so unknown identifiers surface as engine errors.
func ParseIntent(s string) (Intent, error) {
	kind, value, ok := strings.Cut(strings.TrimSpace(s), "=")
	if !ok || strings.TrimSpace(value) == "" {
		return Intent{}, fmt.Errorf("%w: %q (want category=<id> or toggle=<mode>)", common.ErrInvalidIntent, s)
	}

	k := IntentKind(strings.ToLower(strings.TrimSpace(kind)))
	switch k {
	case IntentSelectCategory, IntentToggleMode:
		return Intent{Kind: k, Value: strings.TrimSpace(value)}, nil
	default:
		return Intent{}, fmt.Errorf("%w: unknown intent %q", common.ErrInvalidIntent, kind)
	}
}

// Apply runs intents in order and returns the final state. It stops at the
// first failing intent; earlier intents stay applied.
func (s *Session) Apply(ctx context.Context, intents []Intent) (model.ClassificationState, error) {
	state := s.State()
	for _, intent := range intents {
		var err error
		switch intent.Kind {
		case IntentSelectCategory:
			state, err = s.SelectCategory(ctx, model.CategoryID(strings.ToLower(intent.Value)))
		case IntentToggleMode:
			state, err = s.ToggleMode(ctx, model.TransportMode(strings.ToLower(intent.Value)))
		default:
			err = fmt.Errorf("%w: unknown intent %q", common.ErrInvalidIntent, intent.Kind)
		}
		if err != nil {
			return state, fmt.Errorf("%s: %w", intent, err)
		}
	}
	return state, nil
}

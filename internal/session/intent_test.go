package session

import (
	"context"
	"testing"

	"github.com/Veraticus/freight/internal/classification"
	"github.com/Veraticus/freight/internal/common"
	"github.com/Veraticus/freight/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		input   string
		want    Intent
		wantErr bool
	}{
		{input: "category=hazmat", want: Intent{Kind: IntentSelectCategory, Value: "hazmat"}},
		{input: " Toggle = sea ", want: Intent{Kind: IntentToggleMode, Value: "sea"}},
		{input: "toggle=", wantErr: true},
		{input: "hazmat", wantErr: true},
		{input: "ship=air", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseIntent(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidIntent)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSession_Apply(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	s, err := mgr.Open(ctx)
	require.NoError(t, err)

	state, err := s.Apply(ctx, []Intent{
		{Kind: IntentToggleMode, Value: "rail"},
		{Kind: IntentSelectCategory, Value: "perishable"},
		{Kind: IntentToggleMode, Value: "sea"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.CategoryPerishable, state.SelectedCategory)
	assert.Equal(t, model.NewModeSet(model.ModeAir, model.ModeRoad), state.EnabledModes)
}

func TestSession_ApplyIgnoresValueCase(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	s, err := mgr.Open(ctx)
	require.NoError(t, err)

	state, err := s.Apply(ctx, []Intent{
		{Kind: IntentSelectCategory, Value: "HAZMAT"},
		{Kind: IntentToggleMode, Value: "Road"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.CategoryHazmat, state.SelectedCategory)
	assert.Equal(t, model.NewModeSet(model.ModeSea, model.ModeRail), state.EnabledModes)
}

func TestSession_ApplyStopsAtFirstError(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	s, err := mgr.Open(ctx)
	require.NoError(t, err)

	state, err := s.Apply(ctx, []Intent{
		{Kind: IntentSelectCategory, Value: "hazmat"},
		{Kind: IntentSelectCategory, Value: "unobtainium"},
		{Kind: IntentToggleMode, Value: "road"},
	})
	require.ErrorIs(t, err, classification.ErrInvalidCategory)
	assert.Contains(t, err.Error(), "category=unobtainium")
	assert.Equal(t, model.CategoryHazmat, state.SelectedCategory)
	assert.True(t, state.EnabledModes.Has(model.ModeRoad))
}

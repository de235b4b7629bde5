package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeSet_Operations(t *testing.T) {
	s := NewModeSet(ModeAir, ModeRoad)

	assert.True(t, s.Has(ModeAir))
	assert.True(t, s.Has(ModeRoad))
	assert.False(t, s.Has(ModeSea))
	assert.Equal(t, 2, s.Len())

	s = s.Add(ModeSea)
	assert.Equal(t, []TransportMode{ModeAir, ModeSea, ModeRoad}, s.Modes())

	s = s.Remove(ModeAir)
	assert.Equal(t, []TransportMode{ModeSea, ModeRoad}, s.Modes())

	s = s.Toggle(ModeRail).Toggle(ModeSea)
	assert.Equal(t, []TransportMode{ModeRail, ModeRoad}, s.Modes())

	assert.Equal(t, NewModeSet(ModeRoad), s.Difference(NewModeSet(ModeRail)))
	assert.Equal(t, NewModeSet(ModeRail), s.Intersect(NewModeSet(ModeRail, ModeAir)))
}

func TestModeSet_IgnoresUnknownModes(t *testing.T) {
	s := NewModeSet(TransportMode("teleport"))
	assert.True(t, s.IsEmpty())
	assert.False(t, AllModes().Has(TransportMode("teleport")))
	assert.Equal(t, AllModes(), AllModes().Toggle(TransportMode("teleport")))
}

func TestModeSet_ModesNeverNil(t *testing.T) {
	var s ModeSet
	assert.NotNil(t, s.Modes())
	assert.Empty(t, s.Modes())
	assert.NotNil(t, s.Labels())
}

func TestAllModes(t *testing.T) {
	all := AllModes()
	assert.Equal(t, len(TransportModes), all.Len())
	assert.Equal(t, []string{"Air Freight", "Sea Freight", "Rail Freight", "Road Freight"}, all.Labels())
}

func TestParseModeSet(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ModeSet
		wantErr bool
	}{
		{name: "empty", input: "", want: 0},
		{name: "single", input: "sea", want: NewModeSet(ModeSea)},
		{name: "round trip order", input: "road,air", want: NewModeSet(ModeAir, ModeRoad)},
		{name: "whitespace and case", input: " Rail , ROAD ", want: NewModeSet(ModeRail, ModeRoad)},
		{name: "unknown", input: "air,hovercraft", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseModeSet(tt.input)
			if tt.wantErr {
				var unknown *UnknownModeError
				require.ErrorAs(t, err, &unknown)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "air,road", NewModeSet(ModeRoad, ModeAir).String())
}

func TestParseTransportMode(t *testing.T) {
	m, ok := ParseTransportMode("  AIR ")
	assert.True(t, ok)
	assert.Equal(t, ModeAir, m)

	_, ok = ParseTransportMode("pipeline")
	assert.False(t, ok)
}

func TestTransportMode_Label(t *testing.T) {
	assert.Equal(t, "Sea Freight", ModeSea.Label())
	assert.Equal(t, "zeppelin", TransportMode("zeppelin").Label())
}

func TestDefaultCargoCategories(t *testing.T) {
	cats := DefaultCargoCategories()
	require.NotEmpty(t, cats)
	assert.Equal(t, CategoryGeneral, cats[0].ID)
	assert.True(t, cats[0].ForbiddenModes.IsEmpty())

	seen := make(map[CategoryID]bool)
	for _, c := range cats {
		assert.False(t, seen[c.ID], "duplicate category %s", c.ID)
		seen[c.ID] = true
		assert.NotEmpty(t, c.Label)
	}

	for _, c := range cats {
		if c.ID == CategoryHazmat {
			assert.True(t, c.Forbids(ModeAir))
			assert.False(t, c.Forbids(ModeRoad))
		}
	}
}

func TestClassificationState_MarshalJSON(t *testing.T) {
	state := ClassificationState{
		SelectedCategory: CategoryPerishable,
		EnabledModes:     NewModeSet(ModeRoad, ModeAir),
	}

	data, err := json.Marshal(state)
	require.NoError(t, err)
	assert.JSONEq(t, `{"selected_category":"perishable","enabled_modes":["air","road"]}`, string(data))
	assert.True(t, state.IsModeEnabled(ModeAir))
	assert.False(t, state.IsModeEnabled(ModeSea))
}

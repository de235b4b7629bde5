package config

import (
	"strings"
	"testing"

	"github.com/Veraticus/freight/internal/common"
	"github.com/Veraticus/freight/internal/model"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(yaml)))
	return v
}

func TestLoadCatalog_Defaults(t *testing.T) {
	catalog, err := LoadCatalog(viper.New())
	require.NoError(t, err)

	assert.Equal(t, model.CategoryGeneral, catalog.Default())
	assert.Len(t, catalog.Categories(), len(model.DefaultCargoCategories()))
}

func TestLoadCatalog_AppendsConfiguredCategories(t *testing.T) {
	v := newTestViper(t, `
catalog:
  default_category: lithium
  categories:
    - id: lithium
      label: Lithium Batteries
      description: Cells and packs shipped separately from equipment
      forbidden_modes: [air, sea]
    - id: bulk
      label: Dry Bulk
      forbidden_modes: [AIR]
`)

	catalog, err := LoadCatalog(v)
	require.NoError(t, err)

	assert.Equal(t, model.CategoryID("lithium"), catalog.Default())

	lithium, ok := catalog.Category("lithium")
	require.True(t, ok)
	assert.Equal(t, "Lithium Batteries", lithium.Label)
	assert.Equal(t, model.NewModeSet(model.ModeAir, model.ModeSea), lithium.ForbiddenModes)

	cats := catalog.Categories()
	assert.Equal(t, model.CategoryID("bulk"), cats[len(cats)-1].ID)

	restrictions, err := catalog.Restrictions("lithium")
	require.NoError(t, err)
	assert.Equal(t, []string{"Air Freight", "Sea Freight"}, restrictions)
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "unknown mode",
			yaml: `
catalog:
  categories:
    - id: lithium
      label: Lithium
      forbidden_modes: [teleport]
`,
		},
		{
			name: "redefines built-in",
			yaml: `
catalog:
  categories:
    - id: hazmat
      label: Not So Hazardous
`,
		},
		{
			name: "missing label",
			yaml: `
catalog:
  categories:
    - id: lithium
`,
		},
		{
			name: "unknown default",
			yaml: `
catalog:
  default_category: antimatter
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(newTestViper(t, tt.yaml))
			require.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}

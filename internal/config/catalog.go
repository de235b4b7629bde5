package config

import (
	"fmt"
	"strings"

	"github.com/Veraticus/freight/internal/classification"
	"github.com/Veraticus/freight/internal/common"
	"github.com/Veraticus/freight/internal/model"
	"github.com/spf13/viper"
)

// Catalog configuration keys.
const (
	KeyDefaultCategory = "catalog.default_category"
	KeyCategories      = "catalog.categories"
)

// CategoryConfig is a cargo category declared in the config file.
type CategoryConfig struct {
	ID             string   `mapstructure:"id"`
	Label          string   `mapstructure:"label"`
	Description    string   `mapstructure:"description"`
	ForbiddenModes []string `mapstructure:"forbidden_modes"`
}

// LoadCatalog builds the category catalog from the built-in table plus any
// categories declared under catalog.categories. Configured categories are
// appended after the built-in ones and cannot replace them.
//
// Example:
//
//	catalog:
//	  default_category: general
//	  categories:
//	    - id: lithium
//	      label: Lithium Batteries
//	      forbidden_modes: [air]
func LoadCatalog(v *viper.Viper) (*classification.Catalog, error) {
	if v == nil {
		v = viper.GetViper()
	}

	catalog := classification.DefaultCatalog()

	var extra []CategoryConfig
	if err := v.UnmarshalKey(KeyCategories, &extra); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrInvalidConfig, KeyCategories, err)
	}

	for i, cfg := range extra {
		cat, err := cfg.toCategory()
		if err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %v", common.ErrInvalidConfig, KeyCategories, i, err)
		}
		if err := catalog.Append(cat); err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %v", common.ErrInvalidConfig, KeyCategories, i, err)
		}
	}

	if def := strings.TrimSpace(v.GetString(KeyDefaultCategory)); def != "" {
		if err := catalog.SetDefault(model.CategoryID(def)); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", common.ErrInvalidConfig, KeyDefaultCategory, err)
		}
	}

	return catalog, nil
}

func (c CategoryConfig) toCategory() (model.CargoCategory, error) {
	var forbidden model.ModeSet
	for _, raw := range c.ForbiddenModes {
		mode, ok := model.ParseTransportMode(raw)
		if !ok {
			return model.CargoCategory{}, &model.UnknownModeError{Mode: raw}
		}
		forbidden = forbidden.Add(mode)
	}

	return model.CargoCategory{
		ID:             model.CategoryID(strings.TrimSpace(c.ID)),
		Label:          strings.TrimSpace(c.Label),
		Description:    strings.TrimSpace(c.Description),
		ForbiddenModes: forbidden,
	}, nil
}

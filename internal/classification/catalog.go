// Package classification implements the cargo classification rules engine.
//
// A Catalog holds the closed set of cargo categories and the transport modes
// each one forbids. An Engine tracks the category selected for a shipment and
// the transport modes the user wants considered, and keeps the two consistent:
// a mode forbidden by the selected category is never enabled.
package classification

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/freight/internal/model"
)

// Catalog errors.
var (
	ErrInvalidCategory   = errors.New("invalid cargo category")
	ErrInvalidMode       = errors.New("invalid transport mode")
	ErrDuplicateCategory = errors.New("duplicate cargo category")
	ErrEmptyCatalog      = errors.New("catalog has no categories")
	ErrInconsistentState = errors.New("enabled modes conflict with cargo category")
)

// Catalog is an append-only table of cargo categories.
type Catalog struct {
	index           map[model.CategoryID]int
	defaultCategory model.CategoryID
	categories      []model.CargoCategory
}

// DefaultCatalog returns the built-in catalog with "general" as the default category.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(model.DefaultCargoCategories(), model.CategoryGeneral)
	if err != nil {
		// The built-in table is static; failing here is a programming error.
		panic(fmt.Sprintf("invalid built-in catalog: %v", err))
	}
	return c
}

// NewCatalog builds a catalog from categories in declared order.
func NewCatalog(categories []model.CargoCategory, defaultCategory model.CategoryID) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		index:      make(map[model.CategoryID]int, len(categories)),
		categories: make([]model.CargoCategory, 0, len(categories)),
	}
	for _, cat := range categories {
		if err := c.Append(cat); err != nil {
			return nil, err
		}
	}
	if err := c.SetDefault(defaultCategory); err != nil {
		return nil, err
	}
	return c, nil
}

// Append adds a category to the end of the catalog. Existing categories can
// never be replaced.
func (c *Catalog) Append(cat model.CargoCategory) error {
	if strings.TrimSpace(string(cat.ID)) == "" {
		return fmt.Errorf("%w: empty identifier", ErrInvalidCategory)
	}
	if strings.TrimSpace(cat.Label) == "" {
		return fmt.Errorf("%w: %q has no label", ErrInvalidCategory, cat.ID)
	}
	if _, exists := c.index[cat.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCategory, cat.ID)
	}

	if c.index == nil {
		c.index = make(map[model.CategoryID]int)
	}
	c.index[cat.ID] = len(c.categories)
	c.categories = append(c.categories, cat)
	return nil
}

// SetDefault changes the category new engines start with.
func (c *Catalog) SetDefault(id model.CategoryID) error {
	if _, ok := c.index[id]; !ok {
		return fmt.Errorf("%w: default %q", ErrInvalidCategory, id)
	}
	c.defaultCategory = id
	return nil
}

// Default returns the identifier of the default category. A catalog whose
// default was never set falls back to its first category.
func (c *Catalog) Default() model.CategoryID {
	if c.defaultCategory == "" && len(c.categories) > 0 {
		return c.categories[0].ID
	}
	return c.defaultCategory
}

// Category looks up a category by identifier.
func (c *Catalog) Category(id model.CategoryID) (model.CargoCategory, bool) {
	i, ok := c.index[id]
	if !ok {
		return model.CargoCategory{}, false
	}
	return c.categories[i], true
}

// Categories returns a copy of the categories in declared order.
func (c *Catalog) Categories() []model.CargoCategory {
	out := make([]model.CargoCategory, len(c.categories))
	copy(out, c.categories)
	return out
}

// Modes returns the transport mode catalog in declared order.
func (c *Catalog) Modes() []model.TransportModeInfo {
	out := make([]model.TransportModeInfo, len(model.TransportModes))
	copy(out, model.TransportModes)
	return out
}

// Restrictions returns the labels of the modes forbidden by the category, in
// catalog order. The result is empty, not nil, when nothing is forbidden.
func (c *Catalog) Restrictions(id model.CategoryID) ([]string, error) {
	cat, ok := c.Category(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, id)
	}
	return cat.ForbiddenModes.Labels(), nil
}

// PermittedModes returns the modes the category allows.
func (c *Catalog) PermittedModes(id model.CategoryID) (model.ModeSet, error) {
	cat, ok := c.Category(id)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, id)
	}
	return model.AllModes().Difference(cat.ForbiddenModes), nil
}

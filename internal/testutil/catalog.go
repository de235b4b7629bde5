package testutil

import (
	"testing"

	"github.com/Veraticus/freight/internal/classification"
	"github.com/Veraticus/freight/internal/model"
)

// CatalogBuilder assembles a category catalog for a test.
//
// Example:
//
//	catalog := testutil.NewCatalogBuilder(t).
//		WithBuiltins().
//		WithCategory("lithium", "Lithium Batteries", model.ModeAir).
//		Build()
type CatalogBuilder struct {
	t          *testing.T
	def        model.CategoryID
	categories []model.CargoCategory
}

// NewCatalogBuilder starts an empty catalog.
func NewCatalogBuilder(t *testing.T) *CatalogBuilder {
	t.Helper()
	return &CatalogBuilder{t: t}
}

// WithBuiltins adds the built-in categories.
func (b *CatalogBuilder) WithBuiltins() *CatalogBuilder {
	b.categories = append(b.categories, model.DefaultCargoCategories()...)
	return b
}

// WithCategory adds a category forbidding the given modes.
func (b *CatalogBuilder) WithCategory(id model.CategoryID, label string, forbidden ...model.TransportMode) *CatalogBuilder {
	b.categories = append(b.categories, model.CargoCategory{
		ID:             id,
		Label:          label,
		ForbiddenModes: model.NewModeSet(forbidden...),
	})
	return b
}

// WithDefault sets the default category. Without it the first category is used.
func (b *CatalogBuilder) WithDefault(id model.CategoryID) *CatalogBuilder {
	b.def = id
	return b
}

// Build creates the catalog, failing the test on invalid input.
func (b *CatalogBuilder) Build() *classification.Catalog {
	b.t.Helper()

	def := b.def
	if def == "" && len(b.categories) > 0 {
		def = b.categories[0].ID
	}

	catalog, err := classification.NewCatalog(b.categories, def)
	if err != nil {
		b.t.Fatalf("failed to build catalog: %v", err)
	}
	return catalog
}

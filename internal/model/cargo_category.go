package model

// CategoryID identifies a cargo category.
type CategoryID string

// Built-in cargo category identifiers.
const (
	CategoryGeneral    CategoryID = "general"
	CategoryHazmat     CategoryID = "hazmat"
	CategoryPerishable CategoryID = "perishable"
	CategoryOversized  CategoryID = "oversized"
	CategoryFragile    CategoryID = "fragile"
	CategoryLivestock  CategoryID = "livestock"
)

// CargoCategory classifies shipped goods and the transport modes they may not use.
type CargoCategory struct {
	ID             CategoryID `json:"id"`
	Label          string     `json:"label"`
	Description    string     `json:"description"`
	ForbiddenModes ModeSet    `json:"-"`
}

// Forbids reports whether the category disallows m.
func (c CargoCategory) Forbids(m TransportMode) bool {
	return c.ForbiddenModes.Has(m)
}

// DefaultCargoCategories returns the built-in category table in declared order.
func DefaultCargoCategories() []CargoCategory {
	return []CargoCategory{
		{
			ID:          CategoryGeneral,
			Label:       "General Cargo",
			Description: "Standard palletized or boxed goods with no special handling",
		},
		{
			ID:             CategoryHazmat,
			Label:          "Hazardous Materials",
			Description:    "Flammable, corrosive, or otherwise dangerous goods",
			ForbiddenModes: NewModeSet(ModeAir),
		},
		{
			ID:             CategoryPerishable,
			Label:          "Perishable Goods",
			Description:    "Temperature sensitive goods with a short shelf life",
			ForbiddenModes: NewModeSet(ModeSea),
		},
		{
			ID:             CategoryOversized,
			Label:          "Oversized / Heavy Lift",
			Description:    "Loads exceeding standard container or aircraft dimensions",
			ForbiddenModes: NewModeSet(ModeAir),
		},
		{
			ID:             CategoryFragile,
			Label:          "Fragile Goods",
			Description:    "Items that cannot tolerate rail shunting shocks",
			ForbiddenModes: NewModeSet(ModeRail),
		},
		{
			ID:             CategoryLivestock,
			Label:          "Live Animals",
			Description:    "Animals requiring rest stops and attendant access",
			ForbiddenModes: NewModeSet(ModeAir, ModeRail),
		},
	}
}

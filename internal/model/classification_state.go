package model

import "encoding/json"

// ClassificationState is the mutable part of a classification session.
// Values are copies; changing one never affects the engine that returned it.
type ClassificationState struct {
	SelectedCategory CategoryID
	EnabledModes     ModeSet
}

// IsModeEnabled reports whether m is currently enabled.
func (s ClassificationState) IsModeEnabled(m TransportMode) bool {
	return s.EnabledModes.Has(m)
}

type classificationStateJSON struct {
	SelectedCategory CategoryID      `json:"selected_category"`
	EnabledModes     []TransportMode `json:"enabled_modes"`
}

// MarshalJSON renders the enabled modes as a list in catalog order.
func (s ClassificationState) MarshalJSON() ([]byte, error) {
	return json.Marshal(classificationStateJSON{
		SelectedCategory: s.SelectedCategory,
		EnabledModes:     s.EnabledModes.Modes(),
	})
}

// Package model defines the core domain models used throughout the application.
package model

import "strings"

// TransportMode identifies a carriage method.
type TransportMode string

// Transport mode constants.
const (
	ModeAir  TransportMode = "air"
	ModeSea  TransportMode = "sea"
	ModeRail TransportMode = "rail"
	ModeRoad TransportMode = "road"
)

// TransportModes is the closed catalog of transport modes in declared order.
// Restriction notices and mode listings follow this order.
var TransportModes = []TransportModeInfo{
	{ID: ModeAir, Label: "Air Freight"},
	{ID: ModeSea, Label: "Sea Freight"},
	{ID: ModeRail, Label: "Rail Freight"},
	{ID: ModeRoad, Label: "Road Freight"},
}

// TransportModeInfo is a catalog entry for a transport mode.
type TransportModeInfo struct {
	ID    TransportMode `json:"id"`
	Label string        `json:"label"`
}

// IsValid reports whether m is one of the known transport modes.
func (m TransportMode) IsValid() bool {
	return m.bit() != 0
}

// Label returns the display label for m, or the raw identifier if m is unknown.
func (m TransportMode) Label() string {
	for _, info := range TransportModes {
		if info.ID == m {
			return info.Label
		}
	}
	return string(m)
}

func (m TransportMode) bit() ModeSet {
	switch m {
	case ModeAir:
		return 1 << 0
	case ModeSea:
		return 1 << 1
	case ModeRail:
		return 1 << 2
	case ModeRoad:
		return 1 << 3
	default:
		return 0
	}
}

// ParseTransportMode normalizes s and returns the matching mode.
func ParseTransportMode(s string) (TransportMode, bool) {
	m := TransportMode(strings.ToLower(strings.TrimSpace(s)))
	return m, m.IsValid()
}

// ModeSet is a set of transport modes. The zero value is the empty set.
// Unknown modes are never members.
type ModeSet uint8

// NewModeSet returns a set containing the given modes, ignoring unknown ones.
func NewModeSet(modes ...TransportMode) ModeSet {
	var s ModeSet
	for _, m := range modes {
		s = s.Add(m)
	}
	return s
}

// AllModes returns the set of every cataloged transport mode.
func AllModes() ModeSet {
	var s ModeSet
	for _, info := range TransportModes {
		s = s.Add(info.ID)
	}
	return s
}

// Has reports whether m is a member of s.
func (s ModeSet) Has(m TransportMode) bool {
	b := m.bit()
	return b != 0 && s&b != 0
}

// Add returns s with m added.
func (s ModeSet) Add(m TransportMode) ModeSet {
	return s | m.bit()
}

// Remove returns s with m removed.
func (s ModeSet) Remove(m TransportMode) ModeSet {
	return s &^ m.bit()
}

// Toggle returns s with the membership of m flipped.
func (s ModeSet) Toggle(m TransportMode) ModeSet {
	return s ^ m.bit()
}

// Difference returns the modes in s that are not in other.
func (s ModeSet) Difference(other ModeSet) ModeSet {
	return s &^ other
}

// Intersect returns the modes present in both s and other.
func (s ModeSet) Intersect(other ModeSet) ModeSet {
	return s & other
}

// IsEmpty reports whether s has no members.
func (s ModeSet) IsEmpty() bool {
	return s == 0
}

// Len returns the number of members.
func (s ModeSet) Len() int {
	return len(s.Modes())
}

// Modes returns the members of s in catalog order. It never returns nil.
func (s ModeSet) Modes() []TransportMode {
	modes := make([]TransportMode, 0, len(TransportModes))
	for _, info := range TransportModes {
		if s.Has(info.ID) {
			modes = append(modes, info.ID)
		}
	}
	return modes
}

// Labels returns the display labels of the members of s in catalog order.
func (s ModeSet) Labels() []string {
	modes := s.Modes()
	labels := make([]string, 0, len(modes))
	for _, m := range modes {
		labels = append(labels, m.Label())
	}
	return labels
}

// String renders s as a comma separated list of mode identifiers.
func (s ModeSet) String() string {
	modes := s.Modes()
	parts := make([]string, len(modes))
	for i, m := range modes {
		parts[i] = string(m)
	}
	return strings.Join(parts, ",")
}

// ParseModeSet parses the format produced by String. Empty input is the empty set.
func ParseModeSet(s string) (ModeSet, error) {
	var set ModeSet
	if strings.TrimSpace(s) == "" {
		return set, nil
	}
	for _, part := range strings.Split(s, ",") {
		m, ok := ParseTransportMode(part)
		if !ok {
			return 0, &UnknownModeError{Mode: part}
		}
		set = set.Add(m)
	}
	return set, nil
}

// UnknownModeError reports an identifier that is not in the transport mode catalog.
type UnknownModeError struct {
	Mode string
}

func (e *UnknownModeError) Error() string {
	return "unknown transport mode " + strings.TrimSpace(e.Mode)
}

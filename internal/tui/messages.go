package tui

import "github.com/Veraticus/freight/internal/model"

// StateSavedMsg reports that a state change reached the session store.
type StateSavedMsg struct {
	State model.ClassificationState
}

// SaveFailedMsg reports that a state change could not be stored.
type SaveFailedMsg struct {
	Err error
}

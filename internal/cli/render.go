package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/freight/internal/classification"
	"github.com/Veraticus/freight/internal/model"
	"github.com/charmbracelet/lipgloss"
)

const columnGap = 2

// RestrictionNotice turns restriction labels into a sentence for display.
func RestrictionNotice(labels []string) string {
	if len(labels) == 0 {
		return "No transport restrictions"
	}
	return "Not available: " + strings.Join(labels, ", ")
}

// WriteCategories writes the catalog's categories as a table.
func WriteCategories(w io.Writer, catalog *classification.Catalog) error {
	rows := [][]string{{
		HeaderStyle.Render("ID"),
		HeaderStyle.Render("Label"),
		HeaderStyle.Render("Restrictions"),
	}}

	for _, cat := range catalog.Categories() {
		id := string(cat.ID)
		if cat.ID == catalog.Default() {
			id += " (default)"
		}
		rows = append(rows, []string{id, cat.Label, RestrictionNotice(cat.ForbiddenModes.Labels())})
	}

	return writeTable(w, "", rows)
}

// WriteModes writes the transport mode catalog as a table.
func WriteModes(w io.Writer, modes []model.TransportModeInfo) error {
	rows := [][]string{{HeaderStyle.Render("ID"), HeaderStyle.Render("Label")}}
	for _, m := range modes {
		rows = append(rows, []string{string(m.ID), m.Label})
	}

	return writeTable(w, "", rows)
}

// WriteState writes a classification state with one line per transport mode.
func WriteState(w io.Writer, catalog *classification.Catalog, state model.ClassificationState) error {
	cat, ok := catalog.Category(state.SelectedCategory)
	if !ok {
		return fmt.Errorf("%w: %q", classification.ErrInvalidCategory, state.SelectedCategory)
	}

	if _, err := fmt.Fprintf(w, "Category: %s (%s)\n", cat.Label, cat.ID); err != nil {
		return err
	}

	modes := catalog.Modes()
	rows := make([][]string, 0, len(modes))
	for _, m := range modes {
		status := "off"
		switch {
		case cat.Forbids(m.ID):
			status = UnavailableStyle.Render("unavailable")
		case state.IsModeEnabled(m.ID):
			status = EnabledStyle.Render("on")
		}
		rows = append(rows, []string{m.Label, status})
	}
	if err := writeTable(w, "  ", rows); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, RestrictionNotice(cat.ForbiddenModes.Labels()))
	return err
}

// writeTable aligns rows into columns by their printed width, so styled cells
// line up with plain ones. The last column is not padded.
func writeTable(w io.Writer, indent string, rows [][]string) error {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(indent)
		for i, cell := range row {
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+columnGap))
			}
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

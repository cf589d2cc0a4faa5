package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhvu/atelier/internal/ui/theme"
)

// PickRow is one selectable row in a PickList.
type PickRow struct {
	// ID is the stable identifier reported on selection.
	ID string

	// Label is the rendered text.
	Label string

	// Done rows are dimmed and skipped by the cursor (already matched or
	// placed items).
	Done bool

	// Pending rows are highlighted as the active half of a selection.
	Pending bool
}

// PickList is a vertical selector over identified rows. It is shared by
// quiz options, match columns, and categorization panes; the screen owns
// what selection means.
type PickList struct {
	Rows    []PickRow
	Cursor  int
	Focused bool
}

// NewPickList creates a list with the cursor on the first open row.
func NewPickList(rows []PickRow) PickList {
	l := PickList{Rows: rows}
	l.Cursor = l.nextOpen(-1, +1)
	return l
}

// nextOpen walks from the cursor in the given direction to the next row
// that is not done. Returns the current cursor if none is found.
func (l PickList) nextOpen(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(l.Rows); i += dir {
		if !l.Rows[i].Done {
			return i
		}
	}
	if from < 0 {
		return 0
	}
	return from
}

// Update handles cursor movement. Selection keys are handled by the
// owning screen via SelectedID.
func (l PickList) Update(msg tea.Msg) (PickList, tea.Cmd) {
	if !l.Focused {
		return l, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		l.Cursor = l.nextOpen(l.Cursor, -1)
	case "down", "j":
		l.Cursor = l.nextOpen(l.Cursor, +1)
	}
	return l, nil
}

// SelectedID returns the id under the cursor, or "" when the cursor sits
// on a done row (possible once every row is done).
func (l PickList) SelectedID() string {
	if l.Cursor < 0 || l.Cursor >= len(l.Rows) {
		return ""
	}
	row := l.Rows[l.Cursor]
	if row.Done {
		return ""
	}
	return row.ID
}

// SetRows replaces the rows, clamping the cursor onto an open row.
func (l *PickList) SetRows(rows []PickRow) {
	l.Rows = rows
	if l.Cursor >= len(rows) {
		l.Cursor = len(rows) - 1
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor < len(rows) && rows[l.Cursor].Done {
		l.Cursor = l.nextOpen(-1, +1)
	}
}

// View renders the list.
func (l PickList) View() string {
	var s string
	for i, row := range l.Rows {
		prefix := "    "
		if i == l.Cursor && l.Focused && !row.Done {
			prefix = "  ▸ "
		}

		line := prefix + row.Label

		switch {
		case row.Done:
			s += theme.Hint.Render(line) + "\n"
		case row.Pending:
			s += theme.Pending.Render(line) + "\n"
		case i == l.Cursor && l.Focused:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

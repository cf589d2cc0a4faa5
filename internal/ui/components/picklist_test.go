package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func rows(done ...bool) []PickRow {
	out := make([]PickRow, len(done))
	for i, d := range done {
		out[i] = PickRow{ID: string(rune('a' + i)), Label: "row", Done: d}
	}
	return out
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestNewPickListSkipsDoneRows(t *testing.T) {
	l := NewPickList(rows(true, true, false, false))
	assert.Equal(t, 2, l.Cursor)
	assert.Equal(t, "c", l.SelectedID())
}

func TestPickListCursorMovement(t *testing.T) {
	l := NewPickList(rows(false, true, false))
	l.Focused = true

	l, _ = l.Update(keyPress('j'))
	assert.Equal(t, 2, l.Cursor, "down skips the done row")

	l, _ = l.Update(keyPress('j'))
	assert.Equal(t, 2, l.Cursor, "cursor stays at the last open row")

	l, _ = l.Update(keyPress('k'))
	assert.Equal(t, 0, l.Cursor, "up skips the done row")
}

func TestPickListIgnoresInputWhenUnfocused(t *testing.T) {
	l := NewPickList(rows(false, false))

	l, _ = l.Update(keyPress('j'))
	assert.Equal(t, 0, l.Cursor)
}

func TestPickListSelectedIDOnDoneRow(t *testing.T) {
	l := NewPickList(rows(true, true))
	assert.Empty(t, l.SelectedID())
}

func TestSetRowsClampsCursor(t *testing.T) {
	l := NewPickList(rows(false, false, false))
	l.Cursor = 2

	l.SetRows(rows(false))
	assert.Equal(t, 0, l.Cursor)

	// A cursor left on a newly done row jumps to the first open one.
	l.SetRows(rows(true, false))
	assert.Equal(t, 1, l.Cursor)
}

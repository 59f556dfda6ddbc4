package form

import tea "charm.land/bubbletea/v2"

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() any    // chosen label for select fields, nil for buttons
	Label() string // Display label for the field
}

// disabler is an optional interface for fields that can be skipped by focus
// cycling.
type disabler interface {
	Disabled() bool
}

func isDisabled(f Field) bool {
	d, ok := f.(disabler)
	return ok && d.Disabled()
}

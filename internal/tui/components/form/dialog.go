package form

import (
	"slices"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
)

// Dialog is a form container that manages focus cycling across a set of
// fields. Disabled fields are skipped. The field set may change while the
// dialog is live.
type Dialog struct {
	fields       []Field
	focusedField int
}

// NewDialog creates a dialog and focuses the first enabled field.
func NewDialog(fields ...Field) *Dialog {
	d := &Dialog{}
	d.SetFields(fields)
	return d
}

// SetFields replaces the fields. Focus stays on the previously focused field
// when it is still present, otherwise it moves to the nearest enabled field at
// or before the old position.
func (d *Dialog) SetFields(fields []Field) {
	var prev Field
	if d.focusedField < len(d.fields) {
		prev = d.fields[d.focusedField]
	}
	pos := d.focusedField

	for _, f := range d.fields {
		f.Blur()
	}
	d.fields = fields
	if len(fields) == 0 {
		d.focusedField = 0
		return
	}

	if i := slices.Index(fields, prev); prev != nil && i >= 0 && !isDisabled(fields[i]) {
		d.focusedField = i
	} else {
		d.focusedField = d.nearestEnabled(min(pos, len(fields)-1))
	}
	d.fields[d.focusedField].Focus()
}

// Update handles focus cycling and forwards every other message to the
// focused field.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab":
			return d, d.Next()
		case "shift+tab":
			return d, d.Prev()
		}
	}
	return d.updateFocusedField(msg)
}

// View renders all fields vertically with spacing.
func (d *Dialog) View() string {
	parts := make([]string, 0, len(d.fields)*2)
	for i, field := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Focused returns the focused field, or nil when the dialog is empty.
func (d *Dialog) Focused() Field {
	if len(d.fields) == 0 {
		return nil
	}
	return d.fields[d.focusedField]
}

// Focus moves focus to f. It returns nil when f is not in the dialog or is
// disabled.
func (d *Dialog) Focus(f Field) tea.Cmd {
	i := slices.Index(d.fields, f)
	if i < 0 || isDisabled(f) {
		return nil
	}
	return d.moveTo(i)
}

// Next moves focus to the next enabled field, wrapping at the end.
func (d *Dialog) Next() tea.Cmd {
	return d.step(1)
}

// Prev moves focus to the previous enabled field, wrapping at the start.
func (d *Dialog) Prev() tea.Cmd {
	return d.step(-1)
}

func (d *Dialog) step(dir int) tea.Cmd {
	n := len(d.fields)
	if n == 0 {
		return nil
	}
	for k := 1; k <= n; k++ {
		i := ((d.focusedField+dir*k)%n + n) % n
		if !isDisabled(d.fields[i]) {
			return d.moveTo(i)
		}
	}
	return nil
}

func (d *Dialog) moveTo(i int) tea.Cmd {
	d.fields[d.focusedField].Blur()
	d.focusedField = i
	return d.fields[i].Focus()
}

func (d *Dialog) nearestEnabled(from int) int {
	for i := from; i >= 0; i-- {
		if !isDisabled(d.fields[i]) {
			return i
		}
	}
	for i := from + 1; i < len(d.fields); i++ {
		if !isDisabled(d.fields[i]) {
			return i
		}
	}
	return from
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focusedField], cmd = d.fields[d.focusedField].Update(msg)
	return d, cmd
}

package form

import (
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/bluebook/internal/core/styles"
)

// ButtonField is a focusable button. Pressing it is handled by the owning
// model; the field only renders focus.
type ButtonField struct {
	label   string
	focused bool
}

// NewButtonField creates a button with the given label.
func NewButtonField(label string) *ButtonField {
	return &ButtonField{label: label}
}

func (b *ButtonField) Update(tea.Msg) (Field, tea.Cmd) { return b, nil }

func (b *ButtonField) View() string {
	if b.focused {
		return styles.ButtonFocusedStyle.Render(b.label)
	}
	return styles.ButtonStyle.Render(b.label)
}

func (b *ButtonField) Focus() tea.Cmd {
	b.focused = true
	return nil
}

func (b *ButtonField) Blur() { b.focused = false }
func (b *ButtonField) Focused() bool { return b.focused }
func (b *ButtonField) Value() any { return nil }
func (b *ButtonField) Label() string { return b.label }

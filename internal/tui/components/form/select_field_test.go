package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestSelectFormField(t *testing.T) {
	options := []string{"Intro", "Rules", "Appendix"}

	t.Run("creation", func(t *testing.T) {
		f := NewSelectFormField("Select Part:", "Choose a Part", options)
		assert.Equal(t, "Select Part:", f.Label())
		assert.False(t, f.Focused())
		assert.Equal(t, 3, f.Len())
		assert.Equal(t, 0, f.Cursor())
		assert.Equal(t, -1, f.Chosen())
		assert.Empty(t, f.Value())
	})

	t.Run("empty options", func(t *testing.T) {
		f := NewSelectFormField("Select Section:", "Choose a Section", nil)
		assert.Equal(t, -1, f.Cursor())

		_, ok := f.Choose()
		assert.False(t, ok)
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewSelectFormField("Pick", "", options)
		f.Update(tea.KeyPressMsg(tea.Key{Code: 'j'}))
		assert.Equal(t, 0, f.Cursor())
	})

	t.Run("cursor moves without choosing", func(t *testing.T) {
		f := NewSelectFormField("Pick", "", options)
		f.Focus()

		f.Update(tea.KeyPressMsg(tea.Key{Code: 'j'}))
		assert.Equal(t, 1, f.Cursor())
		assert.Equal(t, -1, f.Chosen())

		i, ok := f.Choose()
		assert.True(t, ok)
		assert.Equal(t, 1, i)
		assert.Equal(t, "Rules", f.Value())
	})

	t.Run("disabled ignores input", func(t *testing.T) {
		f := NewSelectFormField("Pick", "", options)
		f.Focus()
		f.SetDisabled(true)

		f.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyDown}))
		assert.Equal(t, 0, f.Cursor())

		_, ok := f.Choose()
		assert.False(t, ok)
		assert.True(t, f.Disabled())
	})

	t.Run("set options clears value", func(t *testing.T) {
		f := NewSelectFormField("Pick", "", options)
		f.ChooseIndex(2)
		assert.Equal(t, "Appendix", f.Value())
		assert.Equal(t, 2, f.Cursor())

		f.SetOptions([]string{"General", "General"})
		assert.Equal(t, -1, f.Chosen())
		assert.Equal(t, 0, f.Cursor())
		assert.Equal(t, []string{"General", "General"}, f.Options())
	})

	t.Run("duplicate labels keep their own index", func(t *testing.T) {
		f := NewSelectFormField("Pick", "", []string{"General", "General"})
		f.Focus()
		f.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyDown}))

		i, ok := f.Choose()
		assert.True(t, ok)
		assert.Equal(t, 1, i)
	})

	t.Run("choose index out of range clears", func(t *testing.T) {
		f := NewSelectFormField("Pick", "", options)
		f.ChooseIndex(0)
		f.ChooseIndex(9)
		assert.Equal(t, -1, f.Chosen())
	})

	t.Run("reset", func(t *testing.T) {
		f := NewSelectFormField("Pick", "", options)
		f.ChooseIndex(1)
		f.Reset()
		assert.Equal(t, -1, f.Chosen())
		assert.Equal(t, 0, f.Cursor())
	})

	t.Run("view shows placeholder until chosen", func(t *testing.T) {
		f := NewSelectFormField("Select Part:", "Choose a Part", options)
		view := ansi.Strip(f.View())
		assert.Contains(t, view, "Select Part:")
		assert.Contains(t, view, "Choose a Part")
		assert.NotContains(t, view, "Appendix")

		f.ChooseIndex(2)
		view = ansi.Strip(f.View())
		assert.Contains(t, view, "Appendix")
		assert.NotContains(t, view, "Choose a Part")
	})

	t.Run("focused view lists options", func(t *testing.T) {
		f := NewSelectFormField("Select Part:", "Choose a Part", options)
		f.Focus()
		view := ansi.Strip(f.View())
		assert.Contains(t, view, "> Intro")
		assert.Contains(t, view, "Rules")
	})
}

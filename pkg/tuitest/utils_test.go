package tuitest

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[1mSelect Part:\x1b[0m   \nnext  \n\n"
	assert.Equal(t, "Select Part:\nnext", StripANSI(in))
}

func TestKeyStrings(t *testing.T) {
	tests := []struct {
		msg  tea.Msg
		want string
	}{
		{KeyPress('r'), "r"},
		{KeyEnter(), "enter"},
		{KeyTab(), "tab"},
		{KeyShiftTab(), "shift+tab"},
		{KeyCtrl('s'), "ctrl+s"},
		{KeyDown(), "down"},
		{KeyUp(), "up"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			km, ok := tt.msg.(tea.KeyPressMsg)
			assert.True(t, ok)
			assert.Equal(t, tt.want, km.String())
		})
	}
}

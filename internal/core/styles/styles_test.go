package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemes(t *testing.T) {
	names := ThemeNames()
	require.NotEmpty(t, names)
	assert.Contains(t, names, DefaultTheme)

	for _, name := range names {
		p, ok := GetPalette(name)
		require.True(t, ok, name)
		assert.NotNil(t, p.Primary, name)
	}

	_, ok := GetPalette("solarized-neon")
	assert.False(t, ok)
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() {
		p, _ := GetPalette(DefaultTheme)
		SetTheme(p)
	})

	p, ok := GetPalette("gruvbox")
	require.True(t, ok)
	SetTheme(p)

	assert.Equal(t, p.Primary, ColorPrimary)
	assert.Equal(t, p, CurrentPalette)
}

func TestGlamourStyle(t *testing.T) {
	cfg := GlamourStyle()
	require.NotNil(t, cfg.H2.Color)
	assert.NotEmpty(t, *cfg.H2.Color)
}

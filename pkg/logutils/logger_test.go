package logutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("invalid level", func(t *testing.T) {
		_, closer, err := New("loud", "")
		require.Error(t, err)
		closer()
	})

	t.Run("writes and appends to file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "logs", "bluebook.log")

		l, closer, err := New("info", file)
		require.NoError(t, err)
		l.Info().Msg("first")
		l.Debug().Msg("filtered")
		closer()

		l, closer, err = New("info", file)
		require.NoError(t, err)
		l.Info().Msg("second")
		closer()

		data, err := os.ReadFile(file)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], `"message":"first"`)
		assert.Contains(t, lines[1], `"message":"second"`)
	})

	t.Run("empty file discards", func(t *testing.T) {
		l, closer, err := New("debug", "")
		require.NoError(t, err)
		defer closer()
		l.Info().Msg("nowhere")
	})
}

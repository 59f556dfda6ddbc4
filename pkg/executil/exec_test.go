package executil

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealExecutor_Run(t *testing.T) {
	e := &RealExecutor{}
	ctx := context.Background()

	t.Run("successful command", func(t *testing.T) {
		out, err := e.Run(ctx, "echo", "hello")
		require.NoError(t, err)
		assert.Equal(t, "hello", strings.TrimSpace(string(out)))
	})

	t.Run("failure carries stderr and exit error", func(t *testing.T) {
		_, err := e.Run(ctx, "sh", "-c", "echo 'no browser' >&2; exit 3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no browser")

		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 3, exitErr.ExitCode())
	})

	t.Run("stderr is capped", func(t *testing.T) {
		_, err := e.Run(ctx, "sh", "-c", "printf '%0600d' 0 >&2; exit 1")
		require.Error(t, err)
		assert.Less(t, len(err.Error()), maxStderrLen+60)
	})

	t.Run("missing binary", func(t *testing.T) {
		_, err := e.Run(ctx, "definitely-not-a-real-binary")
		require.Error(t, err)
	})
}

func TestRecordingExecutor(t *testing.T) {
	boom := errors.New("boom")
	e := &RecordingExecutor{
		Outputs: map[string][]byte{"echo": []byte("hi")},
		Errors:  map[string]error{"false": boom},
	}

	out, err := e.Run(context.Background(), "echo", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), out)

	_, err = e.Run(context.Background(), "false")
	assert.ErrorIs(t, err, boom)

	recorded := e.Recorded()
	require.Len(t, recorded, 2)
	assert.Equal(t, RecordedCommand{Cmd: "echo", Args: []string{"a", "b"}}, recorded[0])

	e.Reset()
	assert.Empty(t, e.Recorded())
}

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHook(t *testing.T) {
	t.Run("adds fields from context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf).Hook(ContextHook{})

		ctx := WithServer(WithDocument(context.Background(), "manual.pdf"), "http://localhost:5000")
		logger.Info().Ctx(ctx).Msg("opening")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "manual.pdf", entry["document"])
		assert.Equal(t, "http://localhost:5000", entry["server"])
	})

	t.Run("background context adds nothing", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf).Hook(ContextHook{})

		logger.Info().Ctx(context.Background()).Msg("plain")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.NotContains(t, entry, "document")
		assert.NotContains(t, entry, "server")
	})
}

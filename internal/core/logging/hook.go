package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies the document and server from an event's context into
// its fields.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if doc := GetDocument(ctx); doc != "" {
		e.Str("document", doc)
	}

	if server := GetServer(ctx); server != "" {
		e.Str("server", server)
	}
}

package logging

import "context"

type contextKey string

const (
	documentKey contextKey = "document"
	serverKey   contextKey = "server"
)

// WithDocument adds the document filename being navigated to the context.
func WithDocument(ctx context.Context, filename string) context.Context {
	return context.WithValue(ctx, documentKey, filename)
}

// WithServer adds the document server URL to the context.
func WithServer(ctx context.Context, url string) context.Context {
	return context.WithValue(ctx, serverKey, url)
}

// GetDocument retrieves the document filename from the context.
// Returns empty string if not present.
func GetDocument(ctx context.Context) string {
	if v, ok := ctx.Value(documentKey).(string); ok {
		return v
	}
	return ""
}

// GetServer retrieves the server URL from the context.
// Returns empty string if not present.
func GetServer(ctx context.Context) string {
	if v, ok := ctx.Value(serverKey).(string); ok {
		return v
	}
	return ""
}

package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetDocument(ctx))
	assert.Empty(t, GetServer(ctx))

	ctx = WithDocument(ctx, "manual.pdf")
	ctx = WithServer(ctx, "http://localhost:5000")
	assert.Equal(t, "manual.pdf", GetDocument(ctx))
	assert.Equal(t, "http://localhost:5000", GetServer(ctx))
}

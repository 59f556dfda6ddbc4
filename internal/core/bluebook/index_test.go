package bluebook

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_States(t *testing.T) {
	t.Run("starts not loaded", func(t *testing.T) {
		idx := NewIndex()
		assert.Equal(t, IndexNotLoaded, idx.State())
		assert.False(t, idx.Ready())
		assert.NoError(t, idx.Err())
		assert.Equal(t, 0, idx.Len())
	})

	t.Run("load marks ready", func(t *testing.T) {
		idx := NewIndex()
		idx.Load(map[string]DocumentStructure{
			"b.pdf": {},
			"a.pdf": {Parts: []PartRef{{Title: "Intro", Page: 1}}},
		})

		assert.True(t, idx.Ready())
		assert.Equal(t, []string{"a.pdf", "b.pdf"}, idx.Filenames())

		doc, ok := idx.Lookup("a.pdf")
		require.True(t, ok)
		assert.Equal(t, "Intro", doc.Parts[0].Title)

		_, ok = idx.Lookup("missing.pdf")
		assert.False(t, ok)
	})

	t.Run("fail drops entries and keeps error", func(t *testing.T) {
		idx := NewLoadedIndex(map[string]DocumentStructure{"a.pdf": {}})
		loadErr := errors.New("connection refused")
		idx.Fail(loadErr)

		assert.Equal(t, IndexFailed, idx.State())
		assert.ErrorIs(t, idx.Err(), loadErr)
		_, ok := idx.Lookup("a.pdf")
		assert.False(t, ok)
	})

	t.Run("load after failure clears error", func(t *testing.T) {
		idx := NewIndex()
		idx.Fail(errors.New("boom"))
		idx.Load(map[string]DocumentStructure{"a.pdf": {}})

		assert.True(t, idx.Ready())
		assert.NoError(t, idx.Err())
	})
}

func TestIndex_LoadCopiesInput(t *testing.T) {
	docs := map[string]DocumentStructure{"a.pdf": {}}
	idx := NewLoadedIndex(docs)
	docs["b.pdf"] = DocumentStructure{}

	assert.Equal(t, 1, idx.Len())
}

func TestIndexState_String(t *testing.T) {
	assert.Equal(t, "not loaded", IndexNotLoaded.String())
	assert.Equal(t, "loaded", IndexLoaded.String())
	assert.Equal(t, "failed", IndexFailed.String())
}

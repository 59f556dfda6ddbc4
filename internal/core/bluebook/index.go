package bluebook

import (
	"slices"
	"sync"

	"github.com/colonyops/bluebook/pkg/kv"
)

// IndexState is the readiness of an Index.
type IndexState int

const (
	IndexNotLoaded IndexState = iota
	IndexLoaded
	IndexFailed
)

func (s IndexState) String() string {
	switch s {
	case IndexLoaded:
		return "loaded"
	case IndexFailed:
		return "failed"
	default:
		return "not loaded"
	}
}

// Index is the process-lifetime cache of document structures keyed by
// filename. It starts NotLoaded and moves to Loaded or Failed once the index
// fetch completes. It is safe for concurrent use.
type Index struct {
	docs *kv.Store[string, DocumentStructure]

	mu    sync.RWMutex
	state IndexState
	err   error
}

// NewIndex creates an empty index in the NotLoaded state.
func NewIndex() *Index {
	return &Index{docs: kv.New[string, DocumentStructure]()}
}

// NewLoadedIndex creates an index already holding docs.
func NewLoadedIndex(docs map[string]DocumentStructure) *Index {
	idx := NewIndex()
	idx.Load(docs)
	return idx
}

// Load replaces the cached structures and marks the index Loaded.
func (i *Index) Load(docs map[string]DocumentStructure) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.docs.Replace(docs)
	i.state = IndexLoaded
	i.err = nil
}

// Fail marks the index Failed. Previously loaded entries are dropped so
// lookups miss.
func (i *Index) Fail(err error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.docs.Clear()
	i.state = IndexFailed
	i.err = err
}

// State returns the current readiness.
func (i *Index) State() IndexState {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.state
}

// Err returns the load error when the index is Failed.
func (i *Index) Err() error {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.err
}

// Ready reports whether the index is Loaded.
func (i *Index) Ready() bool {
	return i.State() == IndexLoaded
}

// Lookup returns the structure for a document.
func (i *Index) Lookup(filename string) (DocumentStructure, bool) {
	return i.docs.Get(filename)
}

// Len returns the number of cached documents.
func (i *Index) Len() int {
	return i.docs.Len()
}

// Filenames returns the cached document names, sorted.
func (i *Index) Filenames() []string {
	keys := i.docs.Keys()
	slices.Sort(keys)
	return keys
}

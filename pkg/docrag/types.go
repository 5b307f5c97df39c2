// Package docrag implements a minimal semantic search core: documents are
// split into passages, passages are embedded into vectors, and queries are
// answered by ranking every passage against the query vector.
package docrag

import "errors"

// ErrInvalidArgument is returned when a caller-supplied parameter (chunk
// size, result count) violates the contract. It is checked with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Document is a named piece of raw text, the unit of ingestion. It is never
// mutated; only the passages derived from it survive in the index.
type Document struct {
	Name string // source identifier, e.g. a file name
	Text string
}

// Passage is a bounded excerpt of a document's text, the unit of retrieval.
type Passage struct {
	Source string // name of the originating document
	Text   string
}

// IndexEntry pairs a passage with its embedding vector.
type IndexEntry struct {
	Passage Passage
	Vector  []float32
}

// SearchResult pairs a passage with its similarity score against a query.
type SearchResult struct {
	Passage Passage
	Score   float32
}

// Index holds the embedded corpus for similarity search. Entries keep
// insertion order, which decides ties during ranking; duplicates are legal.
// An Index is immutable once built and safe for concurrent retrieval.
type Index struct {
	entries   []IndexEntry
	dimension int
	modelInfo string
}

// New creates an index over the given entries. The entries slice is owned by
// the index afterwards; callers must not modify it.
func New(entries []IndexEntry, dimension int, modelInfo string) *Index {
	return &Index{
		entries:   entries,
		dimension: dimension,
		modelInfo: modelInfo,
	}
}

// Len returns the number of indexed passages.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Dimension returns the embedding dimension the index was built with.
func (idx *Index) Dimension() int {
	return idx.dimension
}

// ModelInfo identifies the embedder the index was built with. Queries must
// use the same model for scores to be meaningful.
func (idx *Index) ModelInfo() string {
	return idx.modelInfo
}

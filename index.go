// Package textsearchgo is an in-memory inverted-index text search
// engine: tokenize, normalize, index, query. The Index type owns the
// document store and the two index maps described in §3, and exposes
// the ingest/search/delete/size operations from §6.
package textsearchgo

import (
	"github.com/kimijl/textsearchgo/normalize"
	"github.com/kimijl/textsearchgo/tokenize"
)

// Index holds the document store, the inverted index, the positional
// index, and the normalization configuration (§3, §5). It is not
// safe for concurrent use; a host that shares an Index across
// goroutines must serialize mutations against readers itself — the
// core has no internal synchronization, matching §5's scheduling
// model.
type Index struct {
	tokenizer   tokenize.Tokenizer
	normalizers []normalize.Normalizer

	docs map[string]*Document

	// inverted maps a normalized token to the document ids that
	// produced it, one entry per occurrence (duplicates retained).
	inverted map[string][]string

	// positional maps a normalized token to, per document id, the
	// ascending list of zero-based positions in that document's
	// normalized token sequence where the token occurred.
	positional map[string]map[string][]int
}

// Option configures an Index constructed with New.
type Option func(*Index)

// WithTokenizer overrides the default word tokenizer.
func WithTokenizer(t tokenize.Tokenizer) Option {
	return func(idx *Index) { idx.tokenizer = t }
}

// WithNormalizers overrides the default normalizer chain
// ([]normalize.Normalizer{normalize.Lowercase()}).
func WithNormalizers(normalizers ...normalize.Normalizer) Option {
	return func(idx *Index) { idx.normalizers = normalizers }
}

// New constructs an empty Index. Default tokenizer is the word
// tokenizer from tokenize.New; default normalizer chain is lowercase
// only, per §6.
func New(opts ...Option) *Index {
	idx := &Index{
		tokenizer:   tokenize.New(),
		normalizers: []normalize.Normalizer{normalize.Lowercase()},
		docs:        make(map[string]*Document),
		inverted:    make(map[string][]string),
		positional:  make(map[string]map[string][]int),
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Len returns the number of documents currently stored. Go has no
// operator overload for len() on a user type, so this is the
// idiomatic stand-in for §6's `len(index)`.
func (idx *Index) Len() int {
	return len(idx.docs)
}

func (idx *Index) normalize(tokens []string) []string {
	return normalize.Chain(tokens, idx.normalizers...)
}

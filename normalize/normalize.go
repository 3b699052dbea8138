// Package normalize implements the token normalizer chain from §4.2:
// a composable pipeline of (tokens) -> tokens stages applied
// identically at index and query time. Each stage has its own
// constructor function instead of one struct with every field.
package normalize

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalizer transforms a token sequence into another one. A stage may
// lengthen, shorten, or drop tokens; applying the full chain twice
// must be equivalent to applying it once.
type Normalizer interface {
	Normalize(tokens []string) []string
}

// NormalizerFunc adapts a plain function to the Normalizer interface.
type NormalizerFunc func(tokens []string) []string

func (f NormalizerFunc) Normalize(tokens []string) []string {
	return f(tokens)
}

// Chain applies each normalizer in order, feeding one stage's output
// into the next.
func Chain(tokens []string, normalizers ...Normalizer) []string {
	for _, n := range normalizers {
		tokens = n.Normalize(tokens)
	}
	return tokens
}

var lowerCaser = cases.Lower(language.Und)

// Lowercase returns a stage that folds every token to its lowercase
// form using locale-independent case folding (language.Und), so
// behavior doesn't vary with the host's default locale.
func Lowercase() Normalizer {
	return NormalizerFunc(func(tokens []string) []string {
		out := make([]string, len(tokens))
		for i, t := range tokens {
			out[i] = lowerCaser.String(t)
		}
		return out
	})
}

// Stopwords returns a stage that drops tokens present in words,
// preserving the relative order of the tokens that remain. If words
// is empty, DefaultStopWords is used. Matching is exact string
// comparison against the given set; combine with Lowercase first to
// match the default set's lowercased entries case-insensitively.
func Stopwords(words ...string) Normalizer {
	if len(words) == 0 {
		words = DefaultStopWords
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return NormalizerFunc(func(tokens []string) []string {
		out := make([]string, 0, len(tokens))
		for _, t := range tokens {
			if _, drop := set[t]; drop {
				continue
			}
			out = append(out, t)
		}
		return out
	})
}

// NGram returns a stage implementing §4.2's character n-gram
// expansion: for each input token T, if |T| <= minGram the
// contribution is [T] unchanged; otherwise the contribution is
// (optionally T itself, if preserveOriginal) followed by every
// contiguous substring of T whose length is between minGram and
// maxGram inclusive, enumerated by starting index ascending then by
// length ascending. Lengths are measured in runes so multi-byte
// characters count as one unit, matching the tokenizer's own
// unicode-aware token boundaries.
func NGram(minGram, maxGram int, preserveOriginal bool) Normalizer {
	if minGram < 1 || maxGram < 1 || minGram > maxGram {
		panic("normalize: NGram requires 1 <= minGram <= maxGram")
	}
	return NormalizerFunc(func(tokens []string) []string {
		var out []string
		for _, t := range tokens {
			runes := []rune(t)
			if len(runes) <= minGram {
				out = append(out, t)
				continue
			}
			if preserveOriginal {
				out = append(out, t)
			}
			hi := maxGram
			if hi > len(runes) {
				hi = len(runes)
			}
			for start := 0; start <= len(runes)-minGram; start++ {
				maxLen := hi
				if remaining := len(runes) - start; remaining < maxLen {
					maxLen = remaining
				}
				for length := minGram; length <= maxLen; length++ {
					out = append(out, string(runes[start:start+length]))
				}
			}
		}
		return out
	})
}

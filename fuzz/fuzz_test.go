// Package fuzz carries native Go fuzz tests for the query-string
// parser: a seed corpus of representative inputs, assertions that
// parsing never panics, and checks that well-formed output
// round-trips through the formatter: the formatted string reparses,
// and the reparsed tree formats to that same string.
package fuzz

import (
	"testing"

	"github.com/kimijl/textsearchgo/qparser"
	"github.com/kimijl/textsearchgo/query"
)

var seedQueries = []string{
	"",
	"word",
	"word search",
	"word AND search",
	"word OR search NOT found",
	`"word search"`,
	`"word search"~5`,
	`"word search"~`,
	"(word OR search) AND found",
	"((word))",
	"word)",
	"(word",
	`"unclosed`,
	`"word"~-3`,
	"AND OR NOT",
	"~5 word",
}

func FuzzParse(f *testing.F) {
	for _, q := range seedQueries {
		f.Add(q)
	}
	f.Fuzz(func(t *testing.T, input string) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("Parse(%q) panicked: %v", input, r)
			}
		}()
		_, _ = qparser.New(input).Parse()
	})
}

func FuzzFormatRoundTrip(f *testing.F) {
	for _, q := range seedQueries {
		f.Add(q)
	}
	f.Fuzz(func(t *testing.T, input string) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("round trip of %q panicked: %v", input, r)
			}
		}()

		tree, err := qparser.New(input).Parse()
		if err != nil {
			return
		}

		formatted := query.String(tree)
		reparsed, err := qparser.New(formatted).Parse()
		if err != nil {
			t.Fatalf("input %q formatted to %q, which failed to reparse: %v", input, formatted, err)
		}
		if query.String(reparsed) != formatted {
			t.Fatalf("round trip unstable: %q -> %q -> %q", input, formatted, query.String(reparsed))
		}
	})
}

func FuzzGetPutPooling(f *testing.F) {
	for _, q := range seedQueries {
		f.Add(q)
	}
	f.Fuzz(func(t *testing.T, input string) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("pooled Parse(%q) panicked: %v", input, r)
			}
		}()
		p := qparser.Get(input)
		defer qparser.Put(p)
		_, _ = p.Parse()
	})
}

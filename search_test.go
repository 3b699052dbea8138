package textsearchgo

import (
	"testing"

	"github.com/kimijl/textsearchgo/query"
)

func docTexts(t *testing.T, docs []Document) []string {
	t.Helper()
	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}
	return texts
}

func TestSearchBasicTermQuery(t *testing.T) {
	idx := New()
	if err := idx.Append("i like cake", "you like cookie", "we like cake"); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	like, err := idx.Search("like")
	if err != nil {
		t.Fatalf("Search(\"like\") error: %v", err)
	}
	if len(like) != 3 {
		t.Errorf("Search(\"like\") = %v, want 3 results", docTexts(t, like))
	}

	cake, err := idx.Search("cake")
	if err != nil {
		t.Fatalf("Search(\"cake\") error: %v", err)
	}
	if len(cake) != 2 {
		t.Errorf("Search(\"cake\") = %v, want 2 results", docTexts(t, cake))
	}

	what, err := idx.Search("what")
	if err != nil {
		t.Fatalf("Search(\"what\") error: %v", err)
	}
	if len(what) != 0 {
		t.Errorf("Search(\"what\") = %v, want 0 results", docTexts(t, what))
	}
}

func TestSearchCompoundBooleanQuery(t *testing.T) {
	idx := New()
	if err := idx.Append(
		"i like cake", "you like cookie", "we like cake", "we should have a tea party",
	); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	q1 := &query.BooleanQuery{Clauses: []query.Clause{
		{Query: &query.TermQuery{Term: "like"}, Type: query.MUST},
		{Query: &query.TermQuery{Term: "we"}, Type: query.MUST},
	}}
	got1, err := idx.Search(q1)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(got1) != 1 || got1[0].Text != "we like cake" {
		t.Errorf("Search(MUST like, MUST we) = %v, want [\"we like cake\"]", docTexts(t, got1))
	}

	q2 := &query.BooleanQuery{Clauses: []query.Clause{
		{Query: &query.TermQuery{Term: "cake"}, Type: query.MUSTNOT},
		{Query: &query.TermQuery{Term: "like"}, Type: query.SHOULD},
	}}
	got2, err := idx.Search(q2)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(got2) != 1 || got2[0].Text != "you like cookie" {
		t.Errorf("Search(MUST_NOT cake, SHOULD like) = %v, want [\"you like cookie\"]", docTexts(t, got2))
	}
}

func TestSearchPhraseQueries(t *testing.T) {
	idx := New()
	if err := idx.Append(
		"i like cake, but do we like this specific cake",
		"you like cookie",
		"we like cake",
		"we should have a tea party",
	); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	tests := []struct {
		name    string
		q       *query.PhraseQuery
		want    int
	}{
		{"like cake distance 0", &query.PhraseQuery{Terms: []string{"like", "cake"}, Distance: 0}, 2},
		{"we cake distance 2", &query.PhraseQuery{Terms: []string{"we", "cake"}, Distance: 2}, 2},
		{"we cake distance 0", &query.PhraseQuery{Terms: []string{"we", "cake"}, Distance: 0}, 0},
		{"cake like unordered", &query.PhraseQuery{Terms: []string{"cake", "like"}, Distance: 0, Ordered: false}, 2},
		{"cake like ordered", &query.PhraseQuery{Terms: []string{"cake", "like"}, Distance: 0, Ordered: true}, 0},
	}
	for _, tt := range tests {
		got, err := idx.Search(tt.q)
		if err != nil {
			t.Fatalf("%s: Search() error: %v", tt.name, err)
		}
		if len(got) != tt.want {
			t.Errorf("%s: Search() = %v, want %d results", tt.name, docTexts(t, got), tt.want)
		}
	}
}

func TestSearchPhraseQueryDuplicateTerm(t *testing.T) {
	idx := New()
	if err := idx.Append("you like cookie"); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	none, err := idx.Search(&query.PhraseQuery{Terms: []string{"like", "like"}, Distance: 0})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Search(like like) on single-occurrence doc = %v, want 0 results", docTexts(t, none))
	}

	if err := idx.Append("you like like cookie"); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	one, err := idx.Search(&query.PhraseQuery{Terms: []string{"like", "like"}, Distance: 0})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(one) != 1 {
		t.Errorf("Search(like like) after adding duplicate-occurrence doc = %v, want 1 result", docTexts(t, one))
	}
}

func TestSearchTermAndSingleTermPhraseAreEquivalent(t *testing.T) {
	idx := New()
	if err := idx.Append("i like cake", "you like cookie", "we like cake"); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	term, err := idx.Search(&query.TermQuery{Term: "cake"})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	phrase, err := idx.Search(&query.PhraseQuery{Terms: []string{"cake"}, Distance: 0})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(term) != len(phrase) {
		t.Errorf("TermQuery and single-term PhraseQuery diverge: %v vs %v", docTexts(t, term), docTexts(t, phrase))
	}
}

func TestSearchBooleanIdentitySingleShould(t *testing.T) {
	idx := New()
	if err := idx.Append("i like cake", "you like cookie"); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	direct, err := idx.Search(&query.TermQuery{Term: "like"})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	wrapped, err := idx.Search(&query.BooleanQuery{Clauses: []query.Clause{
		{Query: &query.TermQuery{Term: "like"}, Type: query.SHOULD},
	}})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(direct) != len(wrapped) {
		t.Errorf("BooleanQuery([SHOULD like]) diverges from TermQuery(like): %v vs %v", docTexts(t, direct), docTexts(t, wrapped))
	}
}

func TestSearchBooleanEvaluationIsOrderInsensitive(t *testing.T) {
	idx := New()
	if err := idx.Append(
		"i like cake", "you like cookie", "we like cake", "we should have a tea party",
	); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	forward := &query.BooleanQuery{Clauses: []query.Clause{
		{Query: &query.TermQuery{Term: "like"}, Type: query.MUST},
		{Query: &query.TermQuery{Term: "cake"}, Type: query.MUST},
		{Query: &query.TermQuery{Term: "cookie"}, Type: query.MUSTNOT},
	}}
	reversed := &query.BooleanQuery{Clauses: []query.Clause{
		{Query: &query.TermQuery{Term: "cookie"}, Type: query.MUSTNOT},
		{Query: &query.TermQuery{Term: "cake"}, Type: query.MUST},
		{Query: &query.TermQuery{Term: "like"}, Type: query.MUST},
	}}

	got1, err := idx.Search(forward)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	got2, err := idx.Search(reversed)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(got1) != len(got2) {
		t.Errorf("clause order changed the result: %v vs %v", docTexts(t, got1), docTexts(t, got2))
	}
}

func TestSearchStringQuery(t *testing.T) {
	idx := New()
	if err := idx.Append(
		"i like cake", "you like cookie", "we like cake", "we should have a tea party",
	); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	got, err := idx.Search("like AND we")
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(got) != 1 || got[0].Text != "we like cake" {
		t.Errorf("Search(\"like AND we\") = %v, want [\"we like cake\"]", docTexts(t, got))
	}
}

func TestSearchStringQueryParseErrorPropagates(t *testing.T) {
	idx := New()
	_, err := idx.Search(`"unclosed`)
	if err == nil {
		t.Fatal("expected a query parse error")
	}
	if _, ok := err.(*QueryParseError); !ok {
		t.Errorf("err type = %T, want *QueryParseError", err)
	}
}

func TestSearchRejectsUnsupportedQueryType(t *testing.T) {
	idx := New()
	_, err := idx.Search(42)
	if err == nil {
		t.Fatal("expected invalid argument error")
	}
}

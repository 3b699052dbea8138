package textsearchgo

import (
	"github.com/kimijl/textsearchgo/qparser"
	"github.com/kimijl/textsearchgo/query"
)

// Search evaluates q — either a query.Query tree or a query string
// parsed per §4.7 — and returns the matching documents, deduplicated
// by identifier, in unspecified order.
func (idx *Index) Search(q interface{}) ([]Document, error) {
	tree, err := idx.toQuery(q)
	if err != nil {
		return nil, err
	}

	ids, err := idx.eval(tree)
	if err != nil {
		return nil, err
	}

	results := make([]Document, 0, len(ids))
	for id := range ids {
		if doc, ok := idx.docs[id]; ok {
			results = append(results, *doc)
		}
	}
	return results, nil
}

func (idx *Index) toQuery(q interface{}) (query.Query, error) {
	switch v := q.(type) {
	case query.Query:
		return v, nil
	case string:
		p := qparser.Get(v)
		defer qparser.Put(p)
		tree, err := p.Parse()
		if err != nil {
			return nil, &QueryParseError{Cause: err}
		}
		return tree, nil
	default:
		return nil, &InvalidArgumentError{Message: "search: query must be a query.Query or a string"}
	}
}

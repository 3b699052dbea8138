package query

// Walk traverses a query tree in depth-first order, calling fn for
// every node reached, including the root. If fn returns false for a
// node, that node's children are not visited.
func Walk(q Query, fn func(Query) bool) {
	if q == nil {
		return
	}
	if !fn(q) {
		return
	}
	switch n := q.(type) {
	case *TermQuery, *PhraseQuery:
		// leaves, nothing further to visit
	case *BooleanQuery:
		for _, clause := range n.Clauses {
			Walk(clause.Query, fn)
		}
	}
}

// Terms collects every literal term referenced anywhere in the tree,
// in traversal order, including phrase terms. Used by tests and by
// callers that want to know what a query touches without re-running
// the normalizer chain themselves.
func Terms(q Query) []string {
	var terms []string
	Walk(q, func(n Query) bool {
		switch t := n.(type) {
		case *TermQuery:
			terms = append(terms, t.Term)
		case *PhraseQuery:
			terms = append(terms, t.Terms...)
		}
		return true
	})
	return terms
}

package textsearchgo

import "github.com/kimijl/textsearchgo/query"

// docSet is a deduplicated set of document identifiers, the
// evaluator's working currency throughout §4.5.
type docSet map[string]struct{}

func newDocSet(ids []string) docSet {
	s := make(docSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s docSet) intersect(other docSet) docSet {
	out := make(docSet)
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	for id := range small {
		if _, ok := big[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}

func (s docSet) union(other docSet) docSet {
	out := make(docSet, len(s)+len(other))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}
	return out
}

func (s docSet) subtract(other docSet) docSet {
	out := make(docSet)
	for id := range s {
		if _, ok := other[id]; !ok {
			out[id] = struct{}{}
		}
	}
	return out
}

// eval dispatches on the query variant, implementing §4.5.
func (idx *Index) eval(q query.Query) (docSet, error) {
	switch v := q.(type) {
	case *query.TermQuery:
		return idx.evalTerm(v)
	case *query.PhraseQuery:
		return idx.evalPhrase(v)
	case *query.BooleanQuery:
		return idx.evalBoolean(v)
	default:
		return nil, &InvalidArgumentError{Message: "eval: unknown query variant"}
	}
}

func (idx *Index) evalTerm(q *query.TermQuery) (docSet, error) {
	normalized := idx.normalize([]string{q.Term})
	if len(normalized) == 0 {
		return docSet{}, nil
	}
	return newDocSet(idx.inverted[normalized[0]]), nil
}

// evalBoolean implements §4.5's MUST/SHOULD/MUST_NOT combination: a
// MUST clause suppresses SHOULD entirely, never the other way around,
// and a boolean query made only of MUST_NOT clauses returns ∅.
func (idx *Index) evalBoolean(q *query.BooleanQuery) (docSet, error) {
	var andSet docSet
	haveAnd := false
	orSet := docSet{}
	notSet := docSet{}

	for _, clause := range q.Clauses {
		d, err := idx.eval(clause.Query)
		if err != nil {
			return nil, err
		}
		switch clause.Type {
		case query.MUST:
			if !haveAnd {
				andSet = d
				haveAnd = true
			} else {
				andSet = andSet.intersect(d)
			}
		case query.SHOULD:
			orSet = orSet.union(d)
		case query.MUSTNOT:
			notSet = notSet.union(d)
		default:
			return nil, &InvalidArgumentError{Message: "eval: unknown clause type"}
		}
	}

	result := orSet
	if haveAnd {
		result = andSet
	}
	return result.subtract(notSet), nil
}

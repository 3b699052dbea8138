package textsearchgo

import "github.com/kimijl/textsearchgo/query"

// positionRange is a candidate phrase span (lo, hi) in a document's
// normalized token positions, used by the multi-term intersection
// working set described in §4.6.
type positionRange struct {
	lo, hi int
}

// evalPhrase implements §4.5's PhraseQuery dispatch: 0 terms after
// normalization match nothing, 1 term behaves like a TermQuery,
// otherwise a positional intersection per §4.6 decides membership.
func (idx *Index) evalPhrase(q *query.PhraseQuery) (docSet, error) {
	normalized := idx.normalize(q.Terms)
	if len(normalized) == 0 {
		return docSet{}, nil
	}
	if len(normalized) == 1 {
		return newDocSet(idx.inverted[normalized[0]]), nil
	}

	postings := make([]map[string][]int, len(normalized))
	for i, term := range normalized {
		p, ok := idx.positional[term]
		if !ok {
			return docSet{}, nil
		}
		postings[i] = p
	}

	k := q.Distance + 1
	if len(postings) == 2 {
		return docsWithNonEmptyRanges(twoTermIntersect(postings[0], postings[1], k, q.Ordered)), nil
	}
	return docsWithNonEmptyRanges(multiTermIntersect(postings, k, q.Ordered)), nil
}

func docsWithNonEmptyRanges(working map[string][]positionRange) docSet {
	result := make(docSet, len(working))
	for docID, ranges := range working {
		if len(ranges) > 0 {
			result[docID] = struct{}{}
		}
	}
	return result
}

// twoTermIntersect implements §4.6's two-term case: candidate
// documents are those present in both positional postings (iterating
// the smaller map); for each candidate, T1's positions are scanned
// outer and T2's inner, and the inner scan breaks once positions have
// advanced past any chance of qualifying (T2's positions are
// ascending). Deliberately does not reproduce a FIFO-retention quirk
// found in one historical revision of this algorithm — the clean
// version here is set-membership-equivalent, and §9 scopes the
// must-reproduce-literally requirement to the multi-term span
// formula, not this case.
func twoTermIntersect(p1, p2 map[string][]int, k int, ordered bool) map[string][]positionRange {
	small, big := p1, p2
	if len(big) < len(small) {
		small, big = big, small
	}

	working := make(map[string][]positionRange)
	for docID := range small {
		if _, ok := big[docID]; !ok {
			continue
		}
		positions1 := p1[docID]
		positions2 := p2[docID]

		for _, pp1 := range positions1 {
			matched := false
			for _, pp2 := range positions2 {
				diff := pp1 - pp2
				if diff < 0 {
					diff = -diff
				}
				if diff != 0 && diff <= k && (!ordered || pp2 >= pp1) {
					matched = true
					break
				}
				if pp2 > pp1 && diff > k {
					break
				}
			}
			if matched {
				working[docID] = append(working[docID], positionRange{pp1, pp1})
				break
			}
		}
	}
	return working
}

// seedRanges implements §4.6's multi-term seeding step: the same
// qualifying-pair rule as twoTermIntersect, but recording (lo, hi) =
// (min(p,q), max(p,q)) ranges instead of just a document hit.
func seedRanges(p1, p2 map[string][]int, k int, ordered bool) map[string][]positionRange {
	small, big := p1, p2
	if len(big) < len(small) {
		small, big = big, small
	}

	working := make(map[string][]positionRange)
	for docID := range small {
		if _, ok := big[docID]; !ok {
			continue
		}
		positions1 := p1[docID]
		positions2 := p2[docID]

		for _, pp1 := range positions1 {
			for _, pp2 := range positions2 {
				diff := pp1 - pp2
				if diff < 0 {
					diff = -diff
				}
				if diff != 0 && diff <= k && (!ordered || pp2 >= pp1) {
					lo, hi := pp1, pp2
					if lo > hi {
						lo, hi = hi, lo
					}
					working[docID] = append(working[docID], positionRange{lo, hi})
				}
				if pp2 > pp1 && diff > k {
					break
				}
			}
		}
	}
	return working
}

// multiTermIntersect implements §4.6's 3+ term case, advancing a
// working set of candidate (lo, hi) spans one term at a time. The
// `-1-(i-3)` correction in span is reproduced literally per §9: i is
// the 1-based position of the term being folded in (3 for the first
// one processed here, since terms 1 and 2 are already folded into
// the seed), so `i-3` is the zero-based count of prior narrowing
// steps applied so far. It is tied to the seeding strategy above
// (seeding from postings[0] and postings[1] directly rather than
// driving uniformly from a running position list), and §9 requires
// the resulting observed outputs match exactly.
func multiTermIntersect(postings []map[string][]int, k int, ordered bool) map[string][]positionRange {
	working := seedRanges(postings[0], postings[1], k, ordered)

	for i := 3; i <= len(postings); i++ {
		termPostings := postings[i-1]
		next := make(map[string][]positionRange)

		for docID, ranges := range working {
			positions, ok := termPostings[docID]
			if !ok {
				continue
			}
			for _, r := range ranges {
				for _, pk := range positions {
					if ordered && pk < r.hi {
						continue
					}
					newLo, newHi := r.lo, r.hi
					if pk < newLo {
						newLo = pk
					}
					if pk > newHi {
						newHi = pk
					}
					span := newHi - newLo - 1 - (i - 3)
					if span > 0 && span <= k {
						next[docID] = append(next[docID], positionRange{newLo, newHi})
					} else if pk > r.hi {
						break
					}
				}
			}
		}

		working = next
	}

	return working
}

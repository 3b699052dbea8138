package query

import (
	"strconv"
	"strings"
)

// String reconstructs a query string that qparser can parse. Used by
// logging call sites and the fuzz/round-trip tests; it is not
// guaranteed to reproduce the original source text byte-for-byte
// (whitespace and operator choice are normalized). Each clause after
// the first is preceded by AND (MUST), NOT (MUST_NOT) or OR (SHOULD),
// and a leading MUST clause gets no marker, so the reparsed tree keeps
// the clause types only where the parser's AND promotion reproduces
// them: {MUST a, SHOULD b} comes back as two SHOULD clauses, and
// {SHOULD a, MUST b} as two MUST clauses. An Ordered PhraseQuery has
// no surface syntax, so it reparses as unordered.
func String(q Query) string {
	var b strings.Builder
	writeQuery(&b, q, true)
	return b.String()
}

func writeQuery(b *strings.Builder, q Query, top bool) {
	switch n := q.(type) {
	case nil:
		return
	case *TermQuery:
		b.WriteString(n.Term)
	case *PhraseQuery:
		b.WriteByte('"')
		b.WriteString(strings.Join(n.Terms, " "))
		b.WriteByte('"')
		if n.Distance != 0 {
			b.WriteByte('~')
			b.WriteString(strconv.Itoa(n.Distance))
		}
	case *BooleanQuery:
		writeBoolean(b, n, top)
	}
}

func writeBoolean(b *strings.Builder, n *BooleanQuery, top bool) {
	if !top {
		b.WriteByte('(')
	}
	for i, clause := range n.Clauses {
		if i > 0 {
			b.WriteByte(' ')
			switch clause.Type {
			case MUST:
				b.WriteString("AND ")
			case MUSTNOT:
				b.WriteString("NOT ")
			default:
				b.WriteString("OR ")
			}
		} else if clause.Type == MUSTNOT {
			b.WriteString("NOT ")
		}
		_, nested := clause.Query.(*BooleanQuery)
		writeQuery(b, clause.Query, !nested)
	}
	if !top {
		b.WriteByte(')')
	}
}

// Package qparser implements the recursive descent parser described in
// §4.7, turning a query string into a query.Query tree: a pooled
// Parser wrapping a lexer, a ParseError type, and an errorf helper
// that accumulates the first failure.
package qparser

import (
	"fmt"
	"sync"

	"github.com/kimijl/textsearchgo/qlexer"
	"github.com/kimijl/textsearchgo/qtoken"
	"github.com/kimijl/textsearchgo/query"
)

// Parser is a recursive descent parser for the query-string grammar.
type Parser struct {
	lexer  *qlexer.Lexer
	errors []ParseError
	cur    qtoken.Item
}

// ParseError reports a malformed query string with its byte offset.
type ParseError struct {
	Pos     qtoken.Pos
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("query parse error at offset %d: %s", e.Pos, e.Message)
}

// New creates a parser for the given query string.
func New(input string) *Parser {
	p := &Parser{lexer: qlexer.New(input)}
	p.advance()
	return p
}

var parserPool = sync.Pool{
	New: func() any { return &Parser{} },
}

// Get returns a Parser from the pool for the given input. Call Put
// when done. Index.Search uses this path so that repeated string
// queries (the common case for a live search index) don't allocate a
// fresh parser and lexer every call.
func Get(input string) *Parser {
	p := parserPool.Get().(*Parser)
	p.lexer = qlexer.Get(input)
	p.errors = p.errors[:0]
	p.cur = qtoken.Item{}
	p.advance()
	return p
}

// Put returns the parser and its lexer to their pools.
func Put(p *Parser) {
	if p.lexer != nil {
		qlexer.Put(p.lexer)
		p.lexer = nil
	}
	parserPool.Put(p)
}

// Parse parses the full input into a Query tree.
func (p *Parser) Parse() (query.Query, error) {
	clauses, sawOperator, err := p.parseClauses()
	if err != nil {
		return nil, err
	}
	if !p.curIs(qtoken.EOF) {
		p.errorf("unexpected token %v after query", p.cur.Type)
		return nil, p.errors[0]
	}
	return collapse(clauses, sawOperator), nil
}

func (p *Parser) advance() {
	p.cur = p.lexer.Next()
}

func (p *Parser) curIs(t qtoken.Token) bool {
	return p.cur.Type == t
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errors = append(p.errors, ParseError{Pos: p.cur.Pos, Message: fmt.Sprintf(format, args...)})
}

func (p *Parser) lastError() error {
	if len(p.errors) == 0 {
		return nil
	}
	return p.errors[0]
}

// collapse returns the bare atom when the clause list has exactly one
// clause and no connector token was seen while scanning it (§4.7:
// "return the underlying atom directly"). Otherwise it wraps the
// clauses in a BooleanQuery, including the empty-clauses case, which
// represents an empty or all-whitespace query and matches nothing.
func collapse(clauses []query.Clause, sawOperator bool) query.Query {
	if len(clauses) == 1 && !sawOperator {
		return clauses[0].Query
	}
	return &query.BooleanQuery{Clauses: clauses}
}

// parseClauses implements or_expr: a sequence of atoms connected by
// AND/OR/NOT or bare juxtaposition (implicit OR), assigning each a
// clause type per the left-to-right sticky-MUST rule in §9. Stops at
// EOF or RPAREN (a group's closing paren is consumed by the caller).
func (p *Parser) parseClauses() ([]query.Clause, bool, error) {
	var clauses []query.Clause
	pending := query.SHOULD
	sawOperator := false

	for {
		switch p.cur.Type {
		case qtoken.EOF, qtoken.RPAREN:
			return clauses, sawOperator, nil
		case qtoken.AND:
			p.advance()
			sawOperator = true
			pending = query.MUST
			if len(clauses) > 0 {
				clauses[len(clauses)-1].Type = query.MUST
			}
		case qtoken.OR:
			p.advance()
			sawOperator = true
			pending = query.SHOULD
		case qtoken.NOT:
			p.advance()
			sawOperator = true
			pending = query.MUSTNOT
		default:
			atom, err := p.parseAtom()
			if err != nil {
				return nil, false, err
			}
			clauses = append(clauses, query.Clause{Query: atom, Type: pending})
			pending = query.SHOULD
		}
	}
}

// parseAtom implements atom: TERM | phrase | group.
func (p *Parser) parseAtom() (query.Query, error) {
	switch p.cur.Type {
	case qtoken.TERM:
		term := p.cur.Value
		p.advance()
		return &query.TermQuery{Term: term}, nil

	case qtoken.PHRASE:
		terms := p.cur.Terms
		distance := p.cur.Distance
		p.advance()
		return &query.PhraseQuery{Terms: terms, Distance: distance}, nil

	case qtoken.LPAREN:
		p.advance()
		clauses, sawOperator, err := p.parseClauses()
		if err != nil {
			return nil, err
		}
		if !p.curIs(qtoken.RPAREN) {
			p.errorf("unbalanced parenthesis: expected ')', got %v", p.cur.Type)
			return nil, p.lastError()
		}
		p.advance()
		return collapse(clauses, sawOperator), nil

	case qtoken.ILLEGAL:
		p.errorf("%s", p.cur.Value)
		return nil, p.lastError()

	default:
		p.errorf("unexpected token %v", p.cur.Type)
		return nil, p.lastError()
	}
}

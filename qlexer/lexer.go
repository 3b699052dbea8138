// Package qlexer scans a query string into qtoken items: bare terms,
// the AND/OR/NOT keywords, parentheses, and quoted phrases with their
// optional ~N suffix. A pooled scanner with Next/Peek one-token
// lookahead over a byte-at-a-time scan, sized for §4.7's grammar.
package qlexer

import (
	"strconv"
	"sync"

	"github.com/kimijl/textsearchgo/qtoken"
)

// Lexer scans a query string into qtoken.Items.
type Lexer struct {
	input  string
	pos    int
	item   qtoken.Item
	peeked bool
}

var lexerPool = sync.Pool{
	New: func() any { return &Lexer{} },
}

// New creates a new Lexer for the input string.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Get returns a Lexer from the pool, initialized with input.
func Get(input string) *Lexer {
	l := lexerPool.Get().(*Lexer)
	l.Reset(input)
	return l
}

// Put returns the Lexer to the pool.
func Put(l *Lexer) {
	lexerPool.Put(l)
}

// Reset reinitializes the lexer to scan new input.
func (l *Lexer) Reset(input string) {
	l.input = input
	l.pos = 0
	l.item = qtoken.Item{}
	l.peeked = false
}

// Next returns the next item, consuming it.
func (l *Lexer) Next() qtoken.Item {
	if l.peeked {
		l.peeked = false
		return l.item
	}
	l.item = l.scan()
	return l.item
}

// Peek returns the next item without consuming it.
func (l *Lexer) Peek() qtoken.Item {
	if !l.peeked {
		l.item = l.scan()
		l.peeked = true
	}
	return l.item
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
}

func (l *Lexer) scan() qtoken.Item {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return qtoken.Item{Type: qtoken.EOF, Pos: qtoken.Pos(l.pos)}
	}

	start := l.pos
	switch l.input[l.pos] {
	case '(':
		l.pos++
		return qtoken.Item{Type: qtoken.LPAREN, Value: "(", Pos: qtoken.Pos(start)}
	case ')':
		l.pos++
		return qtoken.Item{Type: qtoken.RPAREN, Value: ")", Pos: qtoken.Pos(start)}
	case '"':
		return l.scanPhrase()
	}

	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if isSpace(c) || c == '(' || c == ')' || c == '"' {
			break
		}
		l.pos++
	}
	text := l.input[start:l.pos]
	return qtoken.Item{Type: qtoken.Lookup(text), Value: text, Pos: qtoken.Pos(start)}
}

// scanPhrase scans a quoted phrase beginning at the current '"', plus
// an immediately following ~N suffix if present. Per §4.7: an
// unclosed quote is a hard error; a ~ not followed by digits defaults
// the distance to 0; a negative distance is a hard error.
func (l *Lexer) scanPhrase() qtoken.Item {
	start := l.pos
	l.pos++ // consume opening quote

	var terms []string
	for {
		l.skipWhitespace()
		if l.pos >= len(l.input) {
			return qtoken.Item{Type: qtoken.ILLEGAL, Value: "unclosed quote", Pos: qtoken.Pos(start)}
		}
		if l.input[l.pos] == '"' {
			l.pos++
			break
		}
		wordStart := l.pos
		for l.pos < len(l.input) && l.input[l.pos] != '"' && !isSpace(l.input[l.pos]) {
			l.pos++
		}
		terms = append(terms, l.input[wordStart:l.pos])
	}

	distance, err := l.scanProximitySuffix()
	if err != "" {
		return qtoken.Item{Type: qtoken.ILLEGAL, Value: err, Pos: qtoken.Pos(start)}
	}

	return qtoken.Item{Type: qtoken.PHRASE, Terms: terms, Distance: distance, Pos: qtoken.Pos(start)}
}

// scanProximitySuffix consumes a leading "~N" (or "~-N", which is
// rejected) immediately following a closing quote. Returns distance 0
// and no error if there is no digit run to consume.
func (l *Lexer) scanProximitySuffix() (distance int, errMsg string) {
	if l.pos >= len(l.input) || l.input[l.pos] != '~' {
		return 0, ""
	}
	j := l.pos + 1
	negative := false
	if j < len(l.input) && l.input[j] == '-' {
		negative = true
		j++
	}
	digitsStart := j
	for j < len(l.input) && isDigit(l.input[j]) {
		j++
	}
	if j == digitsStart {
		// bare '~' with no digits following: absent, defaults to 0.
		l.pos++
		return 0, ""
	}
	if negative {
		return 0, "negative proximity distance"
	}
	n, _ := strconv.Atoi(l.input[digitsStart:j])
	l.pos = j
	return n, ""
}

// Package tokenize implements §4.1's tokenizer contract: splitting raw
// text into an ordered sequence of tokens. Constructor uses the
// functional-options pattern (options closing over a struct) rather
// than a field-heavy literal.
package tokenize

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// Tokenizer splits text into an ordered sequence of tokens.
// Tokenizers are pure: same input always yields the same output.
type Tokenizer interface {
	Tokenize(text string) []string
}

// wordPattern matches maximal runs of unicode letters, digits, and
// underscores. Go's RE2 engine has no negative lookahead, so the
// "not purely digit-led" half of §4.1's contract is enforced by a
// post-filter in regexTokenizer.Tokenize rather than in the pattern
// itself.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

type regexTokenizer struct {
	normalizeNFC bool
}

// Option configures a Tokenizer built by New.
type Option func(*regexTokenizer)

// WithNFCNormalization applies Unicode NFC normalization to the input
// text before scanning for tokens, so that visually identical text
// using different combining-character sequences tokenizes the same
// way.
func WithNFCNormalization() Option {
	return func(t *regexTokenizer) {
		t.normalizeNFC = true
	}
}

// New returns the default word tokenizer: maximal runs of unicode
// word characters whose first rune is not a decimal digit.
func New(opts ...Option) Tokenizer {
	t := &regexTokenizer{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *regexTokenizer) Tokenize(text string) []string {
	if t.normalizeNFC {
		text = norm.NFC.String(text)
	}
	matches := wordPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		if isDigitLed(m) {
			continue
		}
		tokens = append(tokens, m)
	}
	return tokens
}

func isDigitLed(s string) bool {
	r := []rune(s)[0]
	return r >= '0' && r <= '9'
}

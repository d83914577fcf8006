package core

import "strings"

// TokenKind classifies a raw command-line token. Classification is purely
// lexical; the scanner never consults the schema.
type TokenKind int

const (
	// TokenPositional is a bare value, or any token after the terminator.
	TokenPositional TokenKind = iota
	// TokenLong is --name, optionally with an inline =value.
	TokenLong
	// TokenShort is -x for exactly one non-dash character x.
	TokenShort
	// TokenTerminator is the literal -- that ends option processing.
	TokenTerminator
)

// Token is one classified command-line token. Text is always the verbatim
// input token; Name is the spelling without dashes for option tokens, and
// Inline carries the value following the first "=" of a long option.
type Token struct {
	Kind      TokenKind
	Text      string
	Name      string
	Inline    string
	HasInline bool
}

// Scanner yields classified tokens from an argument vector, lazily and in
// a single pass. Once the terminator has been seen every remaining token
// is positional, dashes or not.
type Scanner struct {
	argv       []string
	pos        int
	terminated bool
}

// NewScanner returns a scanner positioned at the start of argv. The slice
// must exclude the program name.
func NewScanner(argv []string) *Scanner {
	return &Scanner{argv: argv}
}

// Next returns the next classified token. The second result is false once
// the vector is exhausted.
func (s *Scanner) Next() (Token, bool) {
	if s.pos >= len(s.argv) {
		return Token{}, false
	}
	text := s.argv[s.pos]
	s.pos++
	return s.classify(text), true
}

// NextRaw returns the next token verbatim, bypassing classification. The
// matching engine uses it to consume a flag's value window, so that
// option-looking strings (and even a literal "--") can be passed as
// values without affecting scanner state.
func (s *Scanner) NextRaw() (string, bool) {
	if s.pos >= len(s.argv) {
		return "", false
	}
	text := s.argv[s.pos]
	s.pos++
	return text, true
}

// Rest returns the not-yet-consumed tail of the argument vector.
func (s *Scanner) Rest() []string {
	return s.argv[s.pos:]
}

// Terminated reports whether the terminator has been consumed.
func (s *Scanner) Terminated() bool { return s.terminated }

// Reset rewinds the scanner to the start of the vector.
func (s *Scanner) Reset() {
	s.pos = 0
	s.terminated = false
}

func (s *Scanner) classify(text string) Token {
	switch {
	case s.terminated:
		return Token{Kind: TokenPositional, Text: text}
	case text == "--":
		s.terminated = true
		return Token{Kind: TokenTerminator, Text: text}
	case strings.HasPrefix(text, "--"):
		name := text[2:]
		tok := Token{Kind: TokenLong, Text: text, Name: name}
		if i := strings.IndexByte(name, '='); i >= 0 {
			tok.Name = name[:i]
			tok.Inline = name[i+1:]
			tok.HasInline = true
		}
		return tok
	case len(text) == 2 && text[0] == '-' && text[1] != '-':
		return Token{Kind: TokenShort, Text: text, Name: text[1:]}
	default:
		return Token{Kind: TokenPositional, Text: text}
	}
}

package core

import (
	"testing"

	"github.com/chriso345/gore/assert"
)

func collect(argv []string) []Token {
	sc := NewScanner(argv)
	var out []Token
	for {
		tok, ok := sc.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

func TestScanner_Classification(t *testing.T) {
	cases := []struct {
		name string
		in   string
		kind TokenKind
	}{
		{"long option", "--verbose", TokenLong},
		{"long option with value", "--out=x", TokenLong},
		{"short option", "-v", TokenShort},
		{"bare value", "input.txt", TokenPositional},
		{"single dash", "-", TokenPositional},
		{"bundled shorts are not options", "-ab", TokenPositional},
		{"empty token", "", TokenPositional},
		{"terminator", "--", TokenTerminator},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks := collect([]string{tc.in})
			assert.Equal(t, len(toks), 1)
			assert.Equal(t, toks[0].Kind, tc.kind)
			assert.Equal(t, toks[0].Text, tc.in)
		})
	}
}

func TestScanner_LongOptionNames(t *testing.T) {
	toks := collect([]string{"--name", "--out=a=b"})

	assert.Equal(t, toks[0].Name, "name")
	assert.True(t, !toks[0].HasInline)

	// Split at the first '=' only; the rest belongs to the value.
	assert.Equal(t, toks[1].Name, "out")
	assert.True(t, toks[1].HasInline)
	assert.Equal(t, toks[1].Inline, "a=b")
}

func TestScanner_InlineEmptyValue(t *testing.T) {
	toks := collect([]string{"--out="})
	assert.Equal(t, toks[0].Name, "out")
	assert.True(t, toks[0].HasInline)
	assert.Equal(t, toks[0].Inline, "")
}

func TestScanner_Terminator(t *testing.T) {
	toks := collect([]string{"a", "--", "--flag", "-x", "--"})

	assert.Equal(t, toks[0].Kind, TokenPositional)
	assert.Equal(t, toks[1].Kind, TokenTerminator)
	// Everything after the terminator is positional, dashes or not,
	// including another literal "--".
	assert.Equal(t, toks[2].Kind, TokenPositional)
	assert.Equal(t, toks[2].Text, "--flag")
	assert.Equal(t, toks[3].Kind, TokenPositional)
	assert.Equal(t, toks[4].Kind, TokenPositional)
	assert.Equal(t, toks[4].Text, "--")
}

func TestScanner_NextRawBypassesClassification(t *testing.T) {
	sc := NewScanner([]string{"--flag", "--", "-x"})

	raw, ok := sc.NextRaw()
	assert.True(t, ok)
	assert.Equal(t, raw, "--flag")

	// Raw consumption must not trip the terminator flag.
	raw, ok = sc.NextRaw()
	assert.True(t, ok)
	assert.Equal(t, raw, "--")
	assert.True(t, !sc.Terminated())

	tok, ok := sc.Next()
	assert.True(t, ok)
	assert.Equal(t, tok.Kind, TokenShort)
}

func TestScanner_Reset(t *testing.T) {
	sc := NewScanner([]string{"--", "value"})
	_, _ = sc.Next()
	_, _ = sc.Next()
	assert.True(t, sc.Terminated())

	sc.Reset()
	assert.True(t, !sc.Terminated())
	tok, ok := sc.Next()
	assert.True(t, ok)
	assert.Equal(t, tok.Kind, TokenTerminator)
}

func TestScanner_Rest(t *testing.T) {
	sc := NewScanner([]string{"a", "b", "c"})
	_, _ = sc.Next()
	rest := sc.Rest()
	assert.Equal(t, len(rest), 2)
	assert.Equal(t, rest[0], "b")
}

package parser

import (
	gotoken "go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) []lexToken {
	t.Helper()
	fset := gotoken.NewFileSet()
	file := fset.AddFile("lex_test.sk", -1, len(src))
	l := newLexer(file, src)
	var toks []lexToken
	for {
		tok := l.next()
		toks = append(toks, tok)
		if tok.kind == tokEOF {
			return toks
		}
	}
}

func TestLexTokenStream(t *testing.T) {
	for _, tt := range []struct {
		name string
		src  string
		want []lexToken
	}{
		{
			name: "definition header",
			src:  "def swap(a, b)",
			want: []lexToken{
				{kind: tokDef, text: "def"},
				{kind: tokIdent, text: "swap"},
				{kind: tokLParen, text: "("},
				{kind: tokIdent, text: "a"},
				{kind: tokComma, text: ","},
				{kind: tokIdent, text: "b"},
				{kind: tokRParen, text: ")"},
				{kind: tokEOF, text: ""},
			},
		},
		{
			name: "wildcards and literals",
			src:  "_ * 0 255 0x1F {dup emit}",
			want: []lexToken{
				{kind: tokUnderscore, text: "_"},
				{kind: tokStar, text: "*"},
				{kind: tokInt, text: "0"},
				{kind: tokInt, text: "255"},
				{kind: tokInt, text: "0x1F"},
				{kind: tokQuotation, text: "dup emit"},
				{kind: tokEOF, text: ""},
			},
		},
		{
			name: "nested quotation keeps inner braces",
			src:  "{a {b} c}",
			want: []lexToken{
				{kind: tokQuotation, text: "a {b} c"},
				{kind: tokEOF, text: ""},
			},
		},
		{
			name: "comments are skipped",
			src:  "def f # trailing comment\n# whole line\nend",
			want: []lexToken{
				{kind: tokDef, text: "def"},
				{kind: tokIdent, text: "f"},
				{kind: tokEnd, text: "end"},
				{kind: tokEOF, text: ""},
			},
		},
		{
			name: "idents may carry ? and !",
			src:  "zero? store!",
			want: []lexToken{
				{kind: tokIdent, text: "zero?"},
				{kind: tokIdent, text: "store!"},
				{kind: tokEOF, text: ""},
			},
		},
		{
			name: "unterminated quotation",
			src:  "{never closed",
			want: []lexToken{
				{kind: tokIllegal, text: "unterminated quotation"},
				{kind: tokEOF, text: ""},
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := lexAll(t, tt.src)
			require.Len(t, got, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want.kind, got[i].kind, "token %d kind", i)
				assert.Equal(t, want.text, got[i].text, "token %d text", i)
			}
		})
	}
}

func TestLexPositionsResolve(t *testing.T) {
	src := "def f(a)\n  emit\nend"
	fset := gotoken.NewFileSet()
	file := fset.AddFile("pos_test.sk", -1, len(src))
	l := newLexer(file, src)

	var emitTok lexToken
	for tok := l.next(); tok.kind != tokEOF; tok = l.next() {
		if tok.text == "emit" {
			emitTok = tok
		}
	}
	require.True(t, emitTok.pos.IsValid())
	position := fset.Position(emitTok.pos)
	assert.Equal(t, 2, position.Line)
	assert.Equal(t, 3, position.Column)
}

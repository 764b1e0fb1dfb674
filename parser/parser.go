package parser

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/skein-lang/skein/frontend/ast"
	"github.com/skein-lang/skein/frontend/skerr"
)

type parser struct {
	lex  *lexer
	cur  lexToken
	peek lexToken
	errs *skerr.Errors
}

func newParser(lex *lexer) *parser {
	p := &parser{lex: lex}
	p.advance()
	p.advance()
	return p
}

func (p *parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.next()
}

func (p *parser) rangeOf(tok lexToken) ast.Range {
	return ast.Range{PosStart: tok.pos, PosEnd: tok.end}
}

func (p *parser) errorAt(tok lexToken, message, hint string) {
	p.errs = p.errs.With(skerr.New(skerr.NewParse{
		Positioner:    p.rangeOf(tok),
		ParserMessage: message,
		Hint:          hint,
	}))
}

func (p *parser) expect(kind tokenKind) (lexToken, bool) {
	if p.cur.kind != kind {
		p.errorAt(p.cur, "expected "+kind.String()+", found "+p.describe(p.cur), "")
		return p.cur, false
	}
	tok := p.cur
	p.advance()
	return tok, true
}

func (p *parser) describe(tok lexToken) string {
	switch tok.kind {
	case tokIdent, tokInt:
		return "'" + tok.text + "'"
	case tokIllegal:
		return tok.text
	default:
		return tok.kind.String()
	}
}

func (p *parser) parseFile(name string) *ast.File {
	file := &ast.File{Name: name}
	first := p.cur
	for p.cur.kind != tokEOF {
		if p.cur.kind != tokDef {
			p.errorAt(p.cur, "expected 'def' at top level, found "+p.describe(p.cur), "only definitions may appear at the top of a file")
			p.syncToDef()
			continue
		}
		if def := p.parseDefinition(); def != nil {
			file.Decls = append(file.Decls, def)
		}
	}
	last := p.cur
	file.Range = ast.Range{PosStart: first.pos, PosEnd: last.end}
	return file
}

// syncToDef skips tokens until the next plausible definition start so
// one malformed declaration does not cascade into the rest of the file.
func (p *parser) syncToDef() {
	for p.cur.kind != tokDef && p.cur.kind != tokEOF {
		p.advance()
	}
}

func (p *parser) parseDefinition() *ast.Definition {
	defTok, _ := p.expect(tokDef)
	nameTok, ok := p.expect(tokIdent)
	if !ok {
		p.syncToDef()
		return nil
	}
	def := &ast.Definition{Name: nameTok.text, NamePos: p.rangeOf(nameTok)}

	if _, ok := p.expect(tokLParen); !ok {
		p.syncToDef()
		return nil
	}
	if p.cur.kind != tokRParen {
		for {
			param, ok := p.parseParam()
			if !ok {
				p.syncToDef()
				return nil
			}
			def.Params = append(def.Params, param)
			if p.cur.kind != tokComma {
				break
			}
			p.advance()
		}
	}
	if _, ok := p.expect(tokRParen); !ok {
		p.syncToDef()
		return nil
	}

	for p.cur.kind != tokEnd && p.cur.kind != tokEOF {
		if p.cur.kind == tokDef {
			p.errorAt(p.cur, "expected 'end' to close definition of '"+def.Name+"'", "definitions do not nest")
			def.Range = ast.RangeBetween(p.rangeOf(defTok), p.rangeOf(p.cur))
			return def
		}
		word, ok := p.parseWord()
		if !ok {
			p.syncToDef()
			return nil
		}
		def.Body = append(def.Body, word)
	}
	endTok, ok := p.expect(tokEnd)
	if !ok {
		return nil
	}
	def.Range = ast.RangeBetween(p.rangeOf(defTok), p.rangeOf(endTok))
	return def
}

func (p *parser) parseParam() (ast.Param, bool) {
	tok := p.cur
	rng := p.rangeOf(tok)
	switch tok.kind {
	case tokUnderscore:
		p.advance()
		return ast.WildcardByteParam{Range: rng}, true
	case tokStar:
		p.advance()
		return ast.WildcardQuotationParam{Range: rng}, true
	case tokInt:
		value, ok := p.byteLit(tok)
		p.advance()
		if !ok {
			return nil, false
		}
		return ast.ByteLitParam{Range: rng, Value: value}, true
	case tokQuotation:
		p.advance()
		return ast.QuotationLitParam{Range: rng, Text: tok.text}, true
	case tokIdent:
		r, size := utf8.DecodeRuneInString(tok.text)
		if size != len(tok.text) || !unicode.IsLetter(r) {
			p.errorAt(tok, "signature variable '"+tok.text+"' must be a single letter", "use a lowercase letter for a byte, an uppercase letter for a quotation")
			p.advance()
			return nil, false
		}
		p.advance()
		if unicode.IsUpper(r) {
			return ast.NamedQuotationParam{Range: rng, Name: tok.text}, true
		}
		return ast.NamedByteParam{Range: rng, Name: tok.text}, true
	}
	p.errorAt(tok, "expected a parameter, found "+p.describe(tok), "")
	// leave recovery anchors in place for syncToDef
	if tok.kind != tokDef && tok.kind != tokEnd && tok.kind != tokEOF {
		p.advance()
	}
	return nil, false
}

func (p *parser) parseWord() (ast.Word, bool) {
	tok := p.cur
	rng := p.rangeOf(tok)
	switch tok.kind {
	case tokIdent:
		p.advance()
		return ast.CallWord{Range: rng, Name: tok.text}, true
	case tokInt:
		value, ok := p.byteLit(tok)
		p.advance()
		if !ok {
			return nil, false
		}
		return ast.ByteWord{Range: rng, Value: value}, true
	case tokQuotation:
		p.advance()
		return ast.QuotationWord{Range: rng, Text: tok.text}, true
	case tokIllegal:
		p.errorAt(tok, "unexpected "+tok.text, "")
		p.advance()
		return nil, false
	}
	p.errorAt(tok, "expected a word, found "+p.describe(tok), "")
	p.advance()
	return nil, false
}

func (p *parser) byteLit(tok lexToken) (byte, bool) {
	value, err := strconv.ParseUint(tok.text, 0, 64)
	if err != nil || value > 255 {
		p.errs = p.errs.With(skerr.New(skerr.NewByteOutOfRange{
			Positioner: p.rangeOf(tok),
			Literal:    tok.text,
		}))
		return 0, false
	}
	return byte(value), true
}

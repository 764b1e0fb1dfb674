package parser

import (
	gotoken "go/token"
	"unicode"
	"unicode/utf8"
)

// lexer walks the input rune by rune, funnelling source offsets
// through a token.File so every token carries a resolvable position.
type lexer struct {
	input        string
	file         *gotoken.File
	position     int  // offset of the current rune
	readPosition int  // offset after the current rune
	ch           rune // current rune under examination
}

func newLexer(file *gotoken.File, input string) *lexer {
	file.SetLinesForContent([]byte(input))
	l := &lexer{input: input, file: file}
	l.readChar()
	return l
}

func (l *lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.position = l.readPosition
		l.ch = 0
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
}

func (l *lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *lexer) posAt(offset int) gotoken.Pos {
	if offset > len(l.input) {
		offset = len(l.input)
	}
	return l.file.Pos(offset)
}

func (l *lexer) next() lexToken {
	l.skipSpace()

	start := l.position
	switch {
	case l.ch == 0:
		return l.token(tokEOF, start, "")
	case l.ch == '(':
		l.readChar()
		return l.token(tokLParen, start, "(")
	case l.ch == ')':
		l.readChar()
		return l.token(tokRParen, start, ")")
	case l.ch == ',':
		l.readChar()
		return l.token(tokComma, start, ",")
	case l.ch == '*':
		l.readChar()
		return l.token(tokStar, start, "*")
	case l.ch == '_':
		l.readChar()
		return l.token(tokUnderscore, start, "_")
	case l.ch == '{':
		return l.readQuotation()
	case unicode.IsDigit(l.ch):
		return l.readNumber()
	case unicode.IsLetter(l.ch):
		return l.readIdent()
	}
	ch := string(l.ch)
	l.readChar()
	return l.token(tokIllegal, start, ch)
}

func (l *lexer) skipSpace() {
	for {
		switch {
		case l.ch == '#':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n':
			l.readChar()
		default:
			return
		}
	}
}

// readQuotation captures the raw text between balanced braces. The
// text is kept verbatim: quotations are compared by content and are
// otherwise opaque to the front end.
func (l *lexer) readQuotation() lexToken {
	start := l.position
	depth := 0
	for {
		if l.ch == 0 {
			return l.token(tokIllegal, start, "unterminated quotation")
		}
		if l.ch == '{' {
			depth++
		}
		if l.ch == '}' {
			depth--
			if depth == 0 {
				l.readChar()
				break
			}
		}
		l.readChar()
	}
	return l.token(tokQuotation, start, l.input[start+1:l.position-1])
}

func (l *lexer) readNumber() lexToken {
	start := l.position
	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		l.readChar()
		l.readChar()
		for isHexDigit(l.ch) {
			l.readChar()
		}
		return l.token(tokInt, start, l.input[start:l.position])
	}
	for unicode.IsDigit(l.ch) {
		l.readChar()
	}
	return l.token(tokInt, start, l.input[start:l.position])
}

func (l *lexer) readIdent() lexToken {
	start := l.position
	for unicode.IsLetter(l.ch) || unicode.IsDigit(l.ch) || l.ch == '?' || l.ch == '!' {
		l.readChar()
	}
	text := l.input[start:l.position]
	if kind, ok := keywords[text]; ok {
		return l.token(kind, start, text)
	}
	return l.token(tokIdent, start, text)
}

func (l *lexer) token(kind tokenKind, start int, text string) lexToken {
	return lexToken{
		kind: kind,
		text: text,
		pos:  l.posAt(start),
		end:  l.posAt(l.position),
	}
}

func isHexDigit(ch rune) bool {
	return unicode.IsDigit(ch) || ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F'
}

package parser

import gotoken "go/token"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIllegal
	tokIdent
	tokInt
	tokQuotation
	tokDef
	tokEnd
	tokLParen
	tokRParen
	tokComma
	tokUnderscore
	tokStar
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of file"
	case tokIllegal:
		return "illegal token"
	case tokIdent:
		return "identifier"
	case tokInt:
		return "integer"
	case tokQuotation:
		return "quotation"
	case tokDef:
		return "'def'"
	case tokEnd:
		return "'end'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokComma:
		return "','"
	case tokUnderscore:
		return "'_'"
	case tokStar:
		return "'*'"
	}
	return "unknown token"
}

type lexToken struct {
	kind tokenKind
	text string
	pos  gotoken.Pos
	end  gotoken.Pos
}

var keywords = map[string]tokenKind{
	"def": tokDef,
	"end": tokEnd,
}

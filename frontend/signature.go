package frontend

import (
	"github.com/skein-lang/skein/frontend/ast"
	"github.com/skein-lang/skein/frontend/sig"
)

// BuildConstraint translates a definition's parameter pattern into its
// dispatch constraint. Named variables canonicalize by first
// occurrence: the first slot naming a letter becomes a self-reference,
// later slots naming the same letter reference that first slot. Byte
// and quotation variables share the one absolute slot index space.
//
// ok is false when the signature has no constraint representation,
// which today means a literal quotation pattern.
func BuildConstraint(def *ast.Definition) (sig.Constraint, bool) {
	elems := make([]sig.Positional, 0, len(def.Params))
	firstSeen := make(map[string]int, len(def.Params))

	for i, param := range def.Params {
		switch p := param.(type) {
		case ast.WildcardByteParam:
			elems = append(elems, sig.AnyByte{})
		case ast.WildcardQuotationParam:
			elems = append(elems, sig.AnyQuotation{})
		case ast.ByteLitParam:
			elems = append(elems, sig.ExactByte{Value: p.Value})
		case ast.NamedByteParam:
			at, seen := firstSeen[p.Name]
			if !seen {
				firstSeen[p.Name] = i
				at = i
			}
			elems = append(elems, sig.PositionalByte{Index: at})
		case ast.NamedQuotationParam:
			at, seen := firstSeen[p.Name]
			if !seen {
				firstSeen[p.Name] = i
				at = i
			}
			elems = append(elems, sig.PositionalQuotation{Index: at})
		case ast.QuotationLitParam:
			return sig.Constraint{}, false
		}
	}
	return sig.New(elems...), true
}

package sig

import "fmt"

// Kind discriminates the two disjoint value domains a signature slot
// can range over.
type Kind int8

const (
	KindByte Kind = iota
	KindQuotation
)

func (k Kind) String() string {
	switch k {
	case KindByte:
		return "byte"
	case KindQuotation:
		return "quotation"
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// Positional is the pattern for a single slot of a signature.
//
// Slots come in six cases: a wildcard per kind, a positional reference
// per kind ("equals whatever value sits at that slot of the same
// tuple"), and an exact literal per kind. Positional references are in
// canonical form: a reference at slot i either points at itself
// (i is the first occurrence of a named variable) or at an earlier
// slot that is itself a self-reference of the same kind.
type Positional interface {
	Kind() Kind

	// IsAny reports whether this slot matches every value of its kind.
	// A self-reference at slot 0 counts: there is nothing earlier it
	// could alias, so it constrains nothing on its own.
	IsAny() bool

	// ExactValue returns the literal value this slot requires, if this
	// is an exact case.
	ExactValue() (Value, bool)

	// VariantEq reports whether other is the same case, ignoring the
	// payload. Used to detect kind-compatible comparisons.
	VariantEq(other Positional) bool

	fmt.Stringer
	positional()
}

// AnyByte matches any byte value.
type AnyByte struct{}

// AnyQuotation matches any quotation.
type AnyQuotation struct{}

// PositionalByte requires equality with the byte at absolute slot
// Index of the same tuple.
type PositionalByte struct{ Index int }

// PositionalQuotation requires equality with the quotation at absolute
// slot Index of the same tuple.
type PositionalQuotation struct{ Index int }

// ExactByte matches exactly one byte value.
type ExactByte struct{ Value byte }

// ExactQuotation matches a quotation by its literal text.
type ExactQuotation struct{ Text string }

func (AnyByte) Kind() Kind             { return KindByte }
func (AnyQuotation) Kind() Kind        { return KindQuotation }
func (PositionalByte) Kind() Kind      { return KindByte }
func (PositionalQuotation) Kind() Kind { return KindQuotation }
func (ExactByte) Kind() Kind           { return KindByte }
func (ExactQuotation) Kind() Kind      { return KindQuotation }

func (AnyByte) IsAny() bool               { return true }
func (AnyQuotation) IsAny() bool          { return true }
func (p PositionalByte) IsAny() bool      { return p.Index == 0 }
func (p PositionalQuotation) IsAny() bool { return p.Index == 0 }
func (ExactByte) IsAny() bool             { return false }
func (ExactQuotation) IsAny() bool        { return false }

func (AnyByte) ExactValue() (Value, bool)             { return nil, false }
func (AnyQuotation) ExactValue() (Value, bool)        { return nil, false }
func (PositionalByte) ExactValue() (Value, bool)      { return nil, false }
func (PositionalQuotation) ExactValue() (Value, bool) { return nil, false }
func (e ExactByte) ExactValue() (Value, bool)         { return ByteValue(e.Value), true }
func (e ExactQuotation) ExactValue() (Value, bool)    { return QuotationValue(e.Text), true }

func (AnyByte) VariantEq(other Positional) bool {
	_, ok := other.(AnyByte)
	return ok
}

func (AnyQuotation) VariantEq(other Positional) bool {
	_, ok := other.(AnyQuotation)
	return ok
}

func (PositionalByte) VariantEq(other Positional) bool {
	_, ok := other.(PositionalByte)
	return ok
}

func (PositionalQuotation) VariantEq(other Positional) bool {
	_, ok := other.(PositionalQuotation)
	return ok
}

func (ExactByte) VariantEq(other Positional) bool {
	_, ok := other.(ExactByte)
	return ok
}

func (ExactQuotation) VariantEq(other Positional) bool {
	_, ok := other.(ExactQuotation)
	return ok
}

func (AnyByte) String() string               { return "_" }
func (AnyQuotation) String() string          { return "*" }
func (p PositionalByte) String() string      { return fmt.Sprintf("b%d", p.Index) }
func (p PositionalQuotation) String() string { return fmt.Sprintf("q%d", p.Index) }
func (e ExactByte) String() string           { return fmt.Sprintf("%d", e.Value) }
func (e ExactQuotation) String() string      { return fmt.Sprintf("{%s}", e.Text) }

func (AnyByte) positional()             {}
func (AnyQuotation) positional()        {}
func (PositionalByte) positional()      {}
func (PositionalQuotation) positional() {}
func (ExactByte) positional()           {}
func (ExactQuotation) positional()      {}

// positionalIndex returns the reference target of a positional case.
func positionalIndex(e Positional) (int, bool) {
	switch p := e.(type) {
	case PositionalByte:
		return p.Index, true
	case PositionalQuotation:
		return p.Index, true
	}
	return 0, false
}

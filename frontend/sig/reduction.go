package sig

// Reduction is the value, or wildcard, substituted for an eliminated
// slot while a constraint is being specialized. It only lives for the
// duration of a Reduce call chain and is never stored.
type Reduction struct {
	kind  Kind
	exact Value // nil for a wildcard
}

// ReduceAny is the wildcard reduction for the given kind.
func ReduceAny(kind Kind) Reduction {
	return Reduction{kind: kind}
}

// ReduceTo is the reduction substituting the concrete value v.
func ReduceTo(v Value) Reduction {
	return Reduction{kind: v.Kind(), exact: v}
}

func (r Reduction) Kind() Kind { return r.kind }

// Exact returns the concrete value being substituted, if r is not a
// wildcard.
func (r Reduction) Exact() (Value, bool) {
	if r.exact == nil {
		return nil, false
	}
	return r.exact, true
}

// replacement is the Positional that takes the place of a slot which
// referenced the eliminated slot: the exact substituted value, or a
// reference to the new canonical anchor at the given index.
func (r Reduction) replacement(anchor int) Positional {
	switch v := r.exact.(type) {
	case ByteValue:
		return ExactByte{Value: byte(v)}
	case QuotationValue:
		return ExactQuotation{Text: string(v)}
	}
	if r.kind == KindByte {
		return PositionalByte{Index: anchor}
	}
	return PositionalQuotation{Index: anchor}
}

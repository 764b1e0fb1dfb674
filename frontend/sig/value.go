package sig

import "fmt"

// Value is a concrete stack value a constraint is tested against:
// either a byte or the literal text of a quotation. Values are
// immutable and compared by content.
type Value interface {
	Kind() Kind
	fmt.Stringer
	value()
}

// ByteValue is an 8-bit stack value.
type ByteValue byte

// QuotationValue is a quotation's literal text. Two quotations are the
// same value exactly when their text is identical; no structural
// equivalence exists between different texts.
type QuotationValue string

func (ByteValue) Kind() Kind      { return KindByte }
func (QuotationValue) Kind() Kind { return KindQuotation }

func (v ByteValue) String() string      { return fmt.Sprintf("%d", byte(v)) }
func (v QuotationValue) String() string { return fmt.Sprintf("{%s}", string(v)) }

func (ByteValue) value()      {}
func (QuotationValue) value() {}

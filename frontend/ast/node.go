package ast

import (
	"fmt"
	"strings"
)

// Node is the base interface for all AST nodes.
type Node interface {
	Positioner
}

// File represents a single parsed source file.
type File struct {
	Range
	Name  string // file name as given to the parser
	Decls []*Definition
}

// Definition is one guarded definition of a callable name: the name,
// the signature over the top of the stack, and the body words.
type Definition struct {
	Range
	Name    string
	NamePos Range
	Params  []Param
	Body    []Word
}

// Arity is the number of stack slots the signature covers.
func (d *Definition) Arity() int { return len(d.Params) }

// Signature renders the definition head the way it was written, for
// diagnostics.
func (d *Definition) Signature() string {
	parts := make([]string, len(d.Params))
	for i, p := range d.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("%s(%s)", d.Name, strings.Join(parts, ", "))
}

// Param is one argument slot of a signature.
type Param interface {
	Node
	fmt.Stringer
	paramNode()
}

// WildcardByteParam matches any byte (written "_").
type WildcardByteParam struct {
	Range
}

// WildcardQuotationParam matches any quotation (written "*").
type WildcardQuotationParam struct {
	Range
}

// NamedByteParam is a single lowercase letter naming a byte variable;
// repeating the letter requires the slots to hold equal bytes.
type NamedByteParam struct {
	Range
	Name string
}

// NamedQuotationParam is a single uppercase letter naming a quotation
// variable.
type NamedQuotationParam struct {
	Range
	Name string
}

// ByteLitParam matches exactly one byte value.
type ByteLitParam struct {
	Range
	Value byte
}

// QuotationLitParam is a literal quotation in a signature. It has no
// constraint representation and the surrounding definition is excluded
// from dispatch.
type QuotationLitParam struct {
	Range
	Text string
}

func (p WildcardByteParam) String() string      { return "_" }
func (p WildcardQuotationParam) String() string { return "*" }
func (p NamedByteParam) String() string         { return p.Name }
func (p NamedQuotationParam) String() string    { return p.Name }
func (p ByteLitParam) String() string           { return fmt.Sprintf("%d", p.Value) }
func (p QuotationLitParam) String() string      { return fmt.Sprintf("{%s}", p.Text) }

func (WildcardByteParam) paramNode()      {}
func (WildcardQuotationParam) paramNode() {}
func (NamedByteParam) paramNode()         {}
func (NamedQuotationParam) paramNode()    {}
func (ByteLitParam) paramNode()           {}
func (QuotationLitParam) paramNode()      {}

// Word is one element of a definition body.
type Word interface {
	Node
	wordNode()
}

// CallWord invokes another definition (or a builtin word).
type CallWord struct {
	Range
	Name string
}

// ByteWord pushes a byte literal.
type ByteWord struct {
	Range
	Value byte
}

// QuotationWord pushes a quotation literal.
type QuotationWord struct {
	Range
	Text string
}

func (CallWord) wordNode()      {}
func (ByteWord) wordNode()      {}
func (QuotationWord) wordNode() {}

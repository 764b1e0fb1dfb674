package skerr

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/skein-lang/skein/frontend/ast"
)

// enableDebugErrorPrinting makes diagnostics include their stacktrace
// when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	Parse
	ByteOutOfRange
	ArityMismatch
	UndefinedWord
	UnsupportedQuotationPattern
	UnreachableDefinition
)

type Severity int8

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a user-facing finding tied to a source position.
type Diagnostic interface {
	Error() string
	Code() ErrCode
	Severity() Severity
	ast.Positioner

	withStack([]byte) Diagnostic
	getStack() []byte
}

func FormatWithCode(e Diagnostic) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E Diagnostic](err E) Diagnostic {
	return err.withStack(debug.Stack())
}

type Unclassified struct {
	From error
	ast.Positioner
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Code() ErrCode      { return None }
func (e Unclassified) Severity() Severity { return SeverityError }
func (e Unclassified) getStack() []byte   { return e.stack }
func (e Unclassified) withStack(stack []byte) Diagnostic {
	e.stack = stack
	return e
}

type NewParse struct {
	ast.Positioner
	ParserMessage string
	Hint          string
	stack         []byte
}

func (e NewParse) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s (%s)", e.ParserMessage, e.Hint)
	}
	return e.ParserMessage
}
func (e NewParse) Code() ErrCode      { return Parse }
func (e NewParse) Severity() Severity { return SeverityError }
func (e NewParse) getStack() []byte   { return e.stack }
func (e NewParse) withStack(stack []byte) Diagnostic {
	e.stack = stack
	return e
}

type NewByteOutOfRange struct {
	ast.Positioner
	Literal string
	stack   []byte
}

func (e NewByteOutOfRange) Error() string {
	return fmt.Sprintf("byte literal %s is outside the range 0-255", e.Literal)
}
func (e NewByteOutOfRange) Code() ErrCode      { return ByteOutOfRange }
func (e NewByteOutOfRange) Severity() Severity { return SeverityError }
func (e NewByteOutOfRange) getStack() []byte   { return e.stack }
func (e NewByteOutOfRange) withStack(stack []byte) Diagnostic {
	e.stack = stack
	return e
}

type NewArityMismatch struct {
	ast.Positioner
	Name  string
	Got   int
	Want  int
	stack []byte
}

func (e NewArityMismatch) Error() string {
	return fmt.Sprintf("definition of '%s' takes %d arguments, but earlier definitions take %d", e.Name, e.Got, e.Want)
}
func (e NewArityMismatch) Code() ErrCode      { return ArityMismatch }
func (e NewArityMismatch) Severity() Severity { return SeverityError }
func (e NewArityMismatch) getStack() []byte   { return e.stack }
func (e NewArityMismatch) withStack(stack []byte) Diagnostic {
	e.stack = stack
	return e
}

type NewUndefinedWord struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewUndefinedWord) Error() string {
	return fmt.Sprintf("word '%s' is not defined", e.Name)
}
func (e NewUndefinedWord) Code() ErrCode      { return UndefinedWord }
func (e NewUndefinedWord) Severity() Severity { return SeverityError }
func (e NewUndefinedWord) getStack() []byte   { return e.stack }
func (e NewUndefinedWord) withStack(stack []byte) Diagnostic {
	e.stack = stack
	return e
}

type NewUnsupportedQuotationPattern struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewUnsupportedQuotationPattern) Error() string {
	return fmt.Sprintf("literal quotation patterns are not supported; this definition of '%s' will never be selected by dispatch", e.Name)
}
func (e NewUnsupportedQuotationPattern) Code() ErrCode      { return UnsupportedQuotationPattern }
func (e NewUnsupportedQuotationPattern) Severity() Severity { return SeverityWarning }
func (e NewUnsupportedQuotationPattern) getStack() []byte   { return e.stack }
func (e NewUnsupportedQuotationPattern) withStack(stack []byte) Diagnostic {
	e.stack = stack
	return e
}

type NewUnreachableDefinition struct {
	ast.Positioner
	Name      string
	Signature string
	stack     []byte
}

func (e NewUnreachableDefinition) Error() string {
	return fmt.Sprintf("definition '%s' is unreachable: every stack it matches is already matched by earlier definitions of '%s'", e.Signature, e.Name)
}
func (e NewUnreachableDefinition) Code() ErrCode      { return UnreachableDefinition }
func (e NewUnreachableDefinition) Severity() Severity { return SeverityWarning }
func (e NewUnreachableDefinition) getStack() []byte   { return e.stack }
func (e NewUnreachableDefinition) withStack(stack []byte) Diagnostic {
	e.stack = stack
	return e
}

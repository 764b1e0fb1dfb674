// Package frontend checks parsed skein programs: it builds the
// dispatch constraint for every definition, folds the definitions of
// each name into a constraint union, and reports arity, reachability
// and undefined-word diagnostics.
package frontend

import (
	gotoken "go/token"

	"github.com/skein-lang/skein/frontend/ast"
	"github.com/skein-lang/skein/frontend/sig"
	"github.com/skein-lang/skein/frontend/skerr"
)

// Module is a checked program: all files, the constraint union per
// name, and the definitions that made it into each union, aligned with
// the union's members index for index.
type Module struct {
	fset     *gotoken.FileSet
	files    []*ast.File
	unions   map[string]*sig.Union
	accepted map[string][]*ast.Definition
	errs     *skerr.Errors
}

// FileSet returns the position table the module's files were parsed
// against.
func (m *Module) FileSet() *gotoken.FileSet { return m.fset }

// Files returns the parsed files in the order they were given.
func (m *Module) Files() []*ast.File { return m.files }

// Diagnostics returns every finding of the check phase, ordered by
// source position.
func (m *Module) Diagnostics() *skerr.Errors { return m.errs }

// Union returns the constraint union for name, if the name is defined.
func (m *Module) Union(name string) (*sig.Union, bool) {
	u, ok := m.unions[name]
	return u, ok
}

// Definitions returns the dispatchable definitions of name in
// acceptance order.
func (m *Module) Definitions(name string) []*ast.Definition {
	return m.accepted[name]
}

// Names returns how many distinct names the module defines.
func (m *Module) Names() int { return len(m.unions) }

// Resolve picks the definition of name that a call with the given
// stack would dispatch to: the earliest accepted definition whose
// constraint contains the value tuple. ok is false when the name is
// undefined or no definition matches.
func (m *Module) Resolve(name string, values []sig.Value) (*ast.Definition, bool) {
	u, defined := m.unions[name]
	if !defined {
		return nil, false
	}
	i, ok := u.FindConstraint(values)
	if !ok {
		return nil, false
	}
	return m.accepted[name][i], true
}

// Package parser turns skein source text into an ast.File.
//
// The grammar is small: a file is a sequence of definitions, each with
// a parenthesised parameter pattern and a flat body of words. The
// parser recovers at the next 'def' after an error, so a single
// malformed definition does not hide diagnostics for the rest of the
// file.
package parser

import (
	gotoken "go/token"

	"github.com/skein-lang/skein/frontend/ast"
	"github.com/skein-lang/skein/frontend/skerr"
	"github.com/skein-lang/skein/internal/log"
)

// ParseFile parses src, registering filename in fset so diagnostics
// resolve to file:line:column positions. It always returns a File;
// when the returned diagnostics contain errors the File holds the
// definitions that could still be recovered.
func ParseFile(fset *gotoken.FileSet, filename string, src string) (*ast.File, *skerr.Errors) {
	logger := log.DefaultLogger.With("section", "parser")

	file := fset.AddFile(filename, -1, len(src))
	p := newParser(newLexer(file, src))
	parsed := p.parseFile(filename)

	logger.Debug("parsed file",
		"file", filename,
		"definitions", len(parsed.Decls),
		"diagnostics", p.errs.Len(),
	)
	return parsed, p.errs
}

package skerr

import (
	"fmt"
	"go/token"
	"sort"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
)

// Render formats a diagnostic with its resolved source position, as in
//
//	main.sk:3:5: warning: (E006) definition 'f(0, 0)' is unreachable ...
//
// With color enabled the severity is highlighted for terminals.
func Render(d Diagnostic, fset *token.FileSet, color bool) string {
	severity := d.Severity().String()
	if color {
		tint := ansiRed
		if d.Severity() == SeverityWarning {
			tint = ansiYellow
		}
		severity = tint + severity + ansiReset
	}
	position := "-"
	if fset != nil && d.Pos().IsValid() {
		position = fset.Position(d.Pos()).String()
	}
	return fmt.Sprintf("%s: %s: %s", position, severity, FormatWithCode(d))
}

// SortByPos orders diagnostics by source position so that output is
// deterministic regardless of which worker produced them first.
func (r *Errors) SortByPos() {
	if r == nil {
		return
	}
	sort.SliceStable(r.errs, func(i, j int) bool {
		return r.errs[i].Pos() < r.errs[j].Pos()
	})
}

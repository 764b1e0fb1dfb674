package frontend

import (
	gotoken "go/token"
	"sync"

	set "github.com/hashicorp/go-set/v3"

	"github.com/skein-lang/skein/frontend/ast"
	"github.com/skein-lang/skein/frontend/sig"
	"github.com/skein-lang/skein/frontend/skerr"
	"github.com/skein-lang/skein/internal/log"
)

// Builtins are the words every program may call without defining them.
var Builtins = []string{"dup", "drop", "swap", "over", "emit", "read", "exec"}

// nameGroup is every definition of one name, in source order across
// all files of the program.
type nameGroup struct {
	name string
	defs []*ast.Definition
}

// nameResult is what one worker produces for one name: the union of
// accepted constraints, the accepted definitions aligned index for
// index with the union members, and the diagnostics found on the way.
type nameResult struct {
	name     string
	union    *sig.Union
	accepted []*ast.Definition
	errs     *skerr.Errors
}

// checkName folds one name's definitions into a constraint union. Each
// definition is checked against what has been accepted before it, in
// source order: a definition whose arity disagrees with the first
// accepted one is an error, a literal quotation pattern is unsupported,
// and a constraint already subsumed by the union makes the definition
// unreachable. Skipped definitions never enter the union, so they
// cannot shadow later ones.
func checkName(group nameGroup) nameResult {
	result := nameResult{name: group.name, union: sig.NewUnion()}
	for _, def := range group.defs {
		c, ok := BuildConstraint(def)
		if !ok {
			result.errs = result.errs.With(skerr.New(skerr.NewUnsupportedQuotationPattern{
				Positioner: def.NamePos,
				Name:       def.Name,
			}))
			continue
		}
		if !result.union.CheckLen(c) {
			result.errs = result.errs.With(skerr.New(skerr.NewArityMismatch{
				Positioner: def.NamePos,
				Name:       def.Name,
				Got:        def.Arity(),
				Want:       result.union.At(0).Len(),
			}))
			continue
		}
		if !result.union.TryPush(c) {
			result.errs = result.errs.With(skerr.New(skerr.NewUnreachableDefinition{
				Positioner: def.NamePos,
				Name:       def.Name,
				Signature:  def.Signature(),
			}))
			continue
		}
		result.accepted = append(result.accepted, def)
	}
	return result
}

// checkPhase runs checkName for every name concurrently. Names are
// independent of one another, so each worker owns its group outright
// and only the fan-in loop touches shared state.
func checkPhase(groups []nameGroup) []nameResult {
	results := make(chan nameResult, len(groups))
	var wg sync.WaitGroup
	for _, group := range groups {
		wg.Add(1)
		go func(group nameGroup) {
			defer wg.Done()
			results <- checkName(group)
		}(group)
	}
	wg.Wait()
	close(results)

	collected := make([]nameResult, 0, len(groups))
	for r := range results {
		collected = append(collected, r)
	}
	return collected
}

// groupByName partitions the program's definitions by name, preserving
// source order within each group and first-appearance order across
// groups.
func groupByName(files []*ast.File) []nameGroup {
	index := make(map[string]int)
	var groups []nameGroup
	for _, file := range files {
		for _, def := range file.Decls {
			i, ok := index[def.Name]
			if !ok {
				i = len(groups)
				index[def.Name] = i
				groups = append(groups, nameGroup{name: def.Name})
			}
			groups[i].defs = append(groups[i].defs, def)
		}
	}
	return groups
}

// checkWords reports a diagnostic for every call of a word that is
// neither defined anywhere in the program nor a builtin. Definitions
// excluded from dispatch still have their bodies checked.
func checkWords(files []*ast.File, defined *set.Set[string]) *skerr.Errors {
	var errs *skerr.Errors
	for _, file := range files {
		for _, def := range file.Decls {
			local := set.From(Builtins)
			local.InsertSet(defined)
			for _, param := range def.Params {
				switch p := param.(type) {
				case ast.NamedByteParam:
					local.Insert(p.Name)
				case ast.NamedQuotationParam:
					local.Insert(p.Name)
				}
			}
			for _, word := range def.Body {
				call, ok := word.(ast.CallWord)
				if !ok {
					continue
				}
				if !local.Contains(call.Name) {
					errs = errs.With(skerr.New(skerr.NewUndefinedWord{
						Positioner: call,
						Name:       call.Name,
					}))
				}
			}
		}
	}
	return errs
}

// CheckFiles runs the whole check phase over a parsed program and
// returns the resulting Module. The Module is complete even when
// diagnostics were found; callers decide what severity is fatal.
func CheckFiles(fset *gotoken.FileSet, files []*ast.File) *Module {
	logger := log.DefaultLogger.With("section", "check")

	groups := groupByName(files)
	defined := set.New[string](len(groups))
	for _, g := range groups {
		defined.Insert(g.name)
	}

	module := &Module{
		fset:     fset,
		files:    files,
		unions:   make(map[string]*sig.Union, len(groups)),
		accepted: make(map[string][]*ast.Definition, len(groups)),
	}
	for _, r := range checkPhase(groups) {
		module.unions[r.name] = r.union
		module.accepted[r.name] = r.accepted
		module.errs = module.errs.Merge(r.errs)
	}
	module.errs = module.errs.Merge(checkWords(files, defined))
	module.errs.SortByPos()

	logger.Debug("checked program",
		"files", len(files),
		"names", len(groups),
		"diagnostics", module.errs.Len(),
	)
	return module
}

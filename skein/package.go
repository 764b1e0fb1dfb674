// Package skein loads and checks whole skein projects: it finds the
// sources, runs the parse and check phases, and applies the project's
// warning policy to the diagnostics.
package skein

import (
	gotoken "go/token"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/skein-lang/skein/frontend"
	"github.com/skein-lang/skein/frontend/ast"
	"github.com/skein-lang/skein/frontend/sig"
	"github.com/skein-lang/skein/frontend/skerr"
	"github.com/skein-lang/skein/internal/config"
	"github.com/skein-lang/skein/internal/log"
	"github.com/skein-lang/skein/parser"
)

var packageLogger = log.DefaultLogger.With("section", "check")

// Package is a checked build unit: the sources selected by the project
// config, their parsed and checked form, and the diagnostics found.
type Package struct {
	name   string
	dir    string
	config config.Config

	fset   *gotoken.FileSet
	module *frontend.Module
	errs   *skerr.Errors
}

// Load builds a Package from target, which may be a directory holding
// a skein.yml and sources, or a single source file. The returned error
// covers I/O and configuration problems only; diagnostics in the
// sources are reported through Diagnostics.
func Load(target string) (*Package, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s", target)
	}

	dir := target
	var sources []string
	if !info.IsDir() {
		dir = filepath.Dir(target)
		sources = []string{target}
	}

	cfg, err := config.FindAndLoad(dir)
	if err != nil {
		return nil, err
	}
	if sources == nil {
		sources, err = cfg.SourceFiles(dir)
		if err != nil {
			return nil, err
		}
	}
	if len(sources) == 0 {
		return nil, errors.Errorf("no source files in %s (patterns: %v)", dir, cfg.Files)
	}

	name := cfg.Package
	if name == "" {
		name = filepath.Base(dir)
	}
	pkg := &Package{
		name:   name,
		dir:    dir,
		config: cfg,
		fset:   gotoken.NewFileSet(),
	}

	var files []*ast.File
	for _, source := range sources {
		src, err := os.ReadFile(source)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read %s", source)
		}
		file, parseErrs := parser.ParseFile(pkg.fset, source, string(src))
		pkg.errs = pkg.errs.Merge(parseErrs)
		files = append(files, file)
	}

	pkg.module = frontend.CheckFiles(pkg.fset, files)
	pkg.errs = pkg.errs.Merge(pkg.module.Diagnostics())
	pkg.errs.SortByPos()

	packageLogger.Debug("loaded package",
		"name", pkg.name,
		"files", len(sources),
		"diagnostics", pkg.errs.Len(),
	)
	return pkg, nil
}

// NewPackageFromSource checks a single in-memory source, for tests and
// tooling that do not go through the filesystem.
func NewPackageFromSource(src string) *Package {
	pkg := &Package{
		name:   "main",
		config: config.Default(),
		fset:   gotoken.NewFileSet(),
	}
	file, parseErrs := parser.ParseFile(pkg.fset, "main.sk", src)
	pkg.errs = pkg.errs.Merge(parseErrs)
	pkg.module = frontend.CheckFiles(pkg.fset, []*ast.File{file})
	pkg.errs = pkg.errs.Merge(pkg.module.Diagnostics())
	pkg.errs.SortByPos()
	return pkg
}

func (p *Package) Name() string              { return p.name }
func (p *Package) Dir() string               { return p.dir }
func (p *Package) FileSet() *gotoken.FileSet { return p.fset }
func (p *Package) Module() *frontend.Module  { return p.module }

// Diagnostics returns the package's findings with the project's
// warning policy applied: classes configured "off" are dropped and
// classes configured "error" are promoted.
func (p *Package) Diagnostics() []skerr.Diagnostic {
	var out []skerr.Diagnostic
	for _, d := range p.errs.Errors() {
		switch p.config.Warnings[warningClass(d)] {
		case config.WarningOff:
			continue
		case config.WarningError:
			out = append(out, promoted{d})
		default:
			out = append(out, d)
		}
	}
	return out
}

// HasErrors reports whether any diagnostic is an error once the
// warning policy is applied.
func (p *Package) HasErrors() bool {
	for _, d := range p.Diagnostics() {
		if d.Severity() == skerr.SeverityError {
			return true
		}
	}
	return false
}

// Resolve picks the definition of name that a call with the given
// stack would dispatch to.
func (p *Package) Resolve(name string, values []sig.Value) (*ast.Definition, bool) {
	return p.module.Resolve(name, values)
}

// warningClass names the configurable class of a diagnostic, or ""
// when its severity is not configurable.
func warningClass(d skerr.Diagnostic) string {
	switch d.Code() {
	case skerr.UnreachableDefinition:
		return "unreachable"
	case skerr.UnsupportedQuotationPattern:
		return "unsupported"
	}
	return ""
}

// promoted wraps a warning whose class is configured as an error.
type promoted struct {
	skerr.Diagnostic
}

func (p promoted) Severity() skerr.Severity { return skerr.SeverityError }

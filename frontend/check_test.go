package frontend

import (
	gotoken "go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skein-lang/skein/frontend/ast"
	"github.com/skein-lang/skein/frontend/sig"
	"github.com/skein-lang/skein/frontend/skerr"
	"github.com/skein-lang/skein/parser"
)

func checkSrc(t *testing.T, srcs ...string) *Module {
	t.Helper()
	fset := gotoken.NewFileSet()
	files := make([]*ast.File, 0, len(srcs))
	for i, src := range srcs {
		file, errs := parser.ParseFile(fset, "check_test.sk", src)
		require.False(t, errs.HasError(), "parse of source %d failed: %v", i, errs.Errors())
		files = append(files, file)
	}
	return CheckFiles(fset, files)
}

func diagnosticCodes(m *Module) []skerr.ErrCode {
	codes := make([]skerr.ErrCode, 0, m.Diagnostics().Len())
	for _, d := range m.Diagnostics().Errors() {
		codes = append(codes, d.Code())
	}
	return codes
}

func TestCheckDeclarationOrder(t *testing.T) {
	module := checkSrc(t, `
def f(a, a) end
def f(a, b) end
def f(0, 0) end
`)
	codes := diagnosticCodes(module)
	require.Len(t, codes, 1)
	assert.Equal(t, skerr.UnreachableDefinition, codes[0])

	// the unreachable (0, 0) definition is excluded from dispatch
	require.Len(t, module.Definitions("f"), 2)

	union, ok := module.Union("f")
	require.True(t, ok)
	assert.Equal(t, 2, union.Len())
}

func TestCheckResolvePicksEarliestMatch(t *testing.T) {
	module := checkSrc(t, `
def f(a, a)
  emit
end
def f(a, b)
  drop
end
`)
	require.False(t, module.Diagnostics().HasError())

	equal, ok := module.Resolve("f", []sig.Value{sig.ByteValue(7), sig.ByteValue(7)})
	require.True(t, ok)
	assert.Equal(t, "f(a, a)", equal.Signature())

	distinct, ok := module.Resolve("f", []sig.Value{sig.ByteValue(7), sig.ByteValue(9)})
	require.True(t, ok)
	assert.Equal(t, "f(a, b)", distinct.Signature())
}

func TestCheckResolveMisses(t *testing.T) {
	module := checkSrc(t, `
def g(0) end
`)
	_, ok := module.Resolve("g", []sig.Value{sig.ByteValue(1)})
	assert.False(t, ok)
	_, ok = module.Resolve("nowhere", []sig.Value{sig.ByteValue(0)})
	assert.False(t, ok)
}

func TestCheckArityMismatch(t *testing.T) {
	module := checkSrc(t, `
def f(a, b) end
def f(a) end
`)
	codes := diagnosticCodes(module)
	require.Len(t, codes, 1)
	assert.Equal(t, skerr.ArityMismatch, codes[0])
	assert.True(t, module.Diagnostics().HasError())

	// the mismatched definition is skipped, not pushed
	union, ok := module.Union("f")
	require.True(t, ok)
	assert.Equal(t, 1, union.Len())
}

func TestCheckUnsupportedQuotationPattern(t *testing.T) {
	module := checkSrc(t, `
def f({dup}) end
def f(*) end
`)
	codes := diagnosticCodes(module)
	require.Len(t, codes, 1)
	assert.Equal(t, skerr.UnsupportedQuotationPattern, codes[0])
	assert.False(t, module.Diagnostics().HasError(), "unsupported patterns warn, they do not fail the check")

	// the literal pattern never enters the union, so it cannot make the
	// wildcard that follows it unreachable
	union, ok := module.Union("f")
	require.True(t, ok)
	assert.Equal(t, 1, union.Len())
}

func TestCheckUndefinedWord(t *testing.T) {
	module := checkSrc(t, `
def f(a)
  a mystery emit
end
`)
	codes := diagnosticCodes(module)
	require.Len(t, codes, 1)
	assert.Equal(t, skerr.UndefinedWord, codes[0])
}

func TestCheckWordsSeeWholeProgram(t *testing.T) {
	module := checkSrc(t,
		"def caller() helper end",
		"def helper() emit end",
	)
	assert.Equal(t, 0, module.Diagnostics().Len(), "calls may reference definitions from other files")
}

func TestCheckNamesAreIndependent(t *testing.T) {
	module := checkSrc(t, `
def f(_) end
def f(_) end
def g(_) end
def g(0) end
`)
	codes := diagnosticCodes(module)
	require.Len(t, codes, 2)
	for _, code := range codes {
		assert.Equal(t, skerr.UnreachableDefinition, code)
	}
	require.Len(t, module.Definitions("f"), 1)
	require.Len(t, module.Definitions("g"), 1)
	assert.Equal(t, 2, module.Names())
}

func TestCheckWildcardAbsorption(t *testing.T) {
	module := checkSrc(t, `
def h(_, _) end
def h(a, b) end
def h(0, 1) end
`)
	codes := diagnosticCodes(module)
	require.Len(t, codes, 2)

	union, ok := module.Union("h")
	require.True(t, ok)
	assert.Equal(t, 1, union.Len())
}

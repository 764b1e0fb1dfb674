package parser

import (
	gotoken "go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skein-lang/skein/frontend/ast"
	"github.com/skein-lang/skein/frontend/skerr"
)

func parseSrc(t *testing.T, src string) (*ast.File, *skerr.Errors) {
	t.Helper()
	fset := gotoken.NewFileSet()
	return ParseFile(fset, "parser_test.sk", src)
}

func TestParseDefinition(t *testing.T) {
	file, errs := parseSrc(t, `
def f(a, _, 0x2A)
  a emit
end
`)
	require.False(t, errs.HasError(), "unexpected diagnostics: %v", errs.Errors())
	require.Len(t, file.Decls, 1)

	def := file.Decls[0]
	assert.Equal(t, "f", def.Name)
	assert.Equal(t, 3, def.Arity())
	assert.Equal(t, "f(a, _, 42)", def.Signature())

	require.Len(t, def.Params, 3)
	assert.IsType(t, ast.NamedByteParam{}, def.Params[0])
	assert.IsType(t, ast.WildcardByteParam{}, def.Params[1])
	require.IsType(t, ast.ByteLitParam{}, def.Params[2])
	assert.Equal(t, byte(42), def.Params[2].(ast.ByteLitParam).Value)

	require.Len(t, def.Body, 2)
	assert.Equal(t, ast.CallWord{Range: def.Body[0].(ast.CallWord).Range, Name: "a"}, def.Body[0])
	assert.Equal(t, "emit", def.Body[1].(ast.CallWord).Name)
}

func TestParseParamClassification(t *testing.T) {
	for _, tt := range []struct {
		src  string
		want ast.Param
	}{
		{"_", ast.WildcardByteParam{}},
		{"*", ast.WildcardQuotationParam{}},
		{"x", ast.NamedByteParam{Name: "x"}},
		{"Q", ast.NamedQuotationParam{Name: "Q"}},
		{"7", ast.ByteLitParam{Value: 7}},
		{"0xFF", ast.ByteLitParam{Value: 255}},
		{"{dup}", ast.QuotationLitParam{Text: "dup"}},
	} {
		t.Run(tt.src, func(t *testing.T) {
			file, errs := parseSrc(t, "def f("+tt.src+") end")
			require.False(t, errs.HasError())
			require.Len(t, file.Decls, 1)
			require.Len(t, file.Decls[0].Params, 1)

			got := file.Decls[0].Params[0]
			switch want := tt.want.(type) {
			case ast.NamedByteParam:
				require.IsType(t, want, got)
				assert.Equal(t, want.Name, got.(ast.NamedByteParam).Name)
			case ast.NamedQuotationParam:
				require.IsType(t, want, got)
				assert.Equal(t, want.Name, got.(ast.NamedQuotationParam).Name)
			case ast.ByteLitParam:
				require.IsType(t, want, got)
				assert.Equal(t, want.Value, got.(ast.ByteLitParam).Value)
			case ast.QuotationLitParam:
				require.IsType(t, want, got)
				assert.Equal(t, want.Text, got.(ast.QuotationLitParam).Text)
			default:
				assert.IsType(t, tt.want, got)
			}
		})
	}
}

func TestParseBodyWords(t *testing.T) {
	file, errs := parseSrc(t, `
def greet()
  72 {emit} exec
end
`)
	require.False(t, errs.HasError())
	require.Len(t, file.Decls, 1)
	body := file.Decls[0].Body
	require.Len(t, body, 3)
	assert.Equal(t, byte(72), body[0].(ast.ByteWord).Value)
	assert.Equal(t, "emit", body[1].(ast.QuotationWord).Text)
	assert.Equal(t, "exec", body[2].(ast.CallWord).Name)
}

func TestParseErrors(t *testing.T) {
	for _, tt := range []struct {
		name     string
		src      string
		wantCode skerr.ErrCode
	}{
		{
			name:     "multi letter signature variable",
			src:      "def f(ab) end",
			wantCode: skerr.Parse,
		},
		{
			name:     "byte literal out of range",
			src:      "def f(256) end",
			wantCode: skerr.ByteOutOfRange,
		},
		{
			name:     "hex byte literal out of range",
			src:      "def f(0x100) end",
			wantCode: skerr.ByteOutOfRange,
		},
		{
			name:     "unterminated quotation",
			src:      "def f() {oops end",
			wantCode: skerr.Parse,
		},
		{
			name:     "stray top level word",
			src:      "emit def f() end",
			wantCode: skerr.Parse,
		},
		{
			name:     "missing end",
			src:      "def f() emit",
			wantCode: skerr.Parse,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := parseSrc(t, tt.src)
			require.True(t, errs.HasError())
			codes := make([]skerr.ErrCode, 0, errs.Len())
			for _, d := range errs.Errors() {
				codes = append(codes, d.Code())
			}
			assert.Contains(t, codes, tt.wantCode)
		})
	}
}

func TestParseRecoversAtNextDef(t *testing.T) {
	file, errs := parseSrc(t, `
def broken(
def fine(_)
  emit
end
`)
	require.True(t, errs.HasError())
	require.Len(t, file.Decls, 1)
	assert.Equal(t, "fine", file.Decls[0].Name)
}

func TestParseMultipleDefinitionsSameName(t *testing.T) {
	file, errs := parseSrc(t, `
def f(a, a) end
def f(a, b) end
def f(0, 0) end
`)
	require.False(t, errs.HasError())
	require.Len(t, file.Decls, 3)
	for _, def := range file.Decls {
		assert.Equal(t, "f", def.Name)
		assert.Equal(t, 2, def.Arity())
	}
}

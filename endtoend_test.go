package main

import (
	"embed"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skein-lang/skein/frontend/sig"
	"github.com/skein-lang/skein/skein"
)

// embeds the test folder
//
//go:embed test
var testSet embed.FS

// format is as follows, on the first line of each fixture:
//
//	# skein:checkTest E006 E006
//	# skein:checkTest clean
func extractTestComment(t *testing.T, str string) (codes []string) {
	firstLine := strings.Split(str, "\n")[0]
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(strings.TrimPrefix(firstLine, "#")), "skein:checkTest"))
	if trimmed == "" {
		t.Fatalf("could not parse comment string: '%v'", firstLine)
	}
	if trimmed == "clean" {
		return nil
	}
	return strings.Fields(trimmed)
}

func TestCheckEndToEnd(t *testing.T) {
	files, err := testSet.ReadDir("test")
	require.NoError(t, err)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".sk") {
			continue
		}
		t.Run(f.Name(), func(t *testing.T) {
			content, err := testSet.ReadFile("test/" + f.Name())
			require.NoError(t, err)

			want := extractTestComment(t, string(content))
			pkg := skein.NewPackageFromSource(string(content))

			var got []string
			for _, d := range pkg.Diagnostics() {
				got = append(got, fmt.Sprintf("E%03d", d.Code()))
			}
			assert.Equal(t, want, got, "diagnostics: %v", pkg.Diagnostics())
		})
	}
}

func TestDispatchEndToEnd(t *testing.T) {
	content, err := testSet.ReadFile("test/dispatch.sk")
	require.NoError(t, err)

	pkg := skein.NewPackageFromSource(string(content))
	require.False(t, pkg.HasErrors())

	equal, ok := pkg.Resolve("f", []sig.Value{sig.ByteValue(3), sig.ByteValue(3)})
	require.True(t, ok)
	assert.Equal(t, "f(a, a)", equal.Signature())

	distinct, ok := pkg.Resolve("f", []sig.Value{sig.ByteValue(3), sig.ByteValue(4)})
	require.True(t, ok)
	assert.Equal(t, "f(a, b)", distinct.Signature())
}

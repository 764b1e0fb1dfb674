package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.sk"}, cfg.Files)
	assert.Empty(t, cfg.Package)
}

func TestParseFull(t *testing.T) {
	cfg, err := Parse([]byte(`
package: greeter
files:
  - "src/*.sk"
  - "lib/*.sk"
warnings:
  unreachable: error
  unsupported: off
`))
	require.NoError(t, err)
	assert.Equal(t, "greeter", cfg.Package)
	assert.Equal(t, []string{"src/*.sk", "lib/*.sk"}, cfg.Files)
	assert.Equal(t, WarningError, cfg.Warnings["unreachable"])
	assert.Equal(t, WarningOff, cfg.Warnings["unsupported"])
}

func TestParseRejectsBadWarningLevel(t *testing.T) {
	_, err := Parse([]byte("warnings:\n  unreachable: loud\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestParseRejectsMalformedYaml(t *testing.T) {
	_, err := Parse([]byte("files: [unclosed"))
	require.Error(t, err)
}

func TestFindAndLoadMissingFile(t *testing.T) {
	cfg, err := FindAndLoad(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFindAndLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("package: demo\n"), 0o644))

	cfg, err := FindAndLoad(dir)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Package)
	assert.Equal(t, []string{"*.sk"}, cfg.Files)
}

func TestSourceFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.sk", "a.sk", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	files, err := Default().SourceFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "a.sk"), files[0])
	assert.Equal(t, filepath.Join(dir, "b.sk"), files[1])
}

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestBuildCmd_Run(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "index.js"), `console.log("hello");`)

	cmd := &BuildCmd{Dir: dir, Config: "packforge.yml"}
	err := cmd.Run(context.Background(), &Globals{})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "dist", "main.js"))
	require.NoError(t, err)
}

func TestBuildCmd_WithOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app", "entry.js"), `console.log("app");`)
	writeFile(t, filepath.Join(dir, "packforge.yml"), `
outputPath: out
entry:
  main:
    - ./app/entry.js
`)

	cmd := &BuildCmd{Dir: dir, Config: "packforge.yml"}
	err := cmd.Run(context.Background(), &Globals{})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "out", "main.js"))
	require.NoError(t, err)
}

func TestBuildCmd_MissingDir(t *testing.T) {
	cmd := &BuildCmd{Dir: filepath.Join(t.TempDir(), "missing"), Config: "packforge.yml"}
	err := cmd.Run(context.Background(), &Globals{})
	require.Error(t, err)
}

func TestConfigCmd_Run(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "packforge.yml"), `
sourceMap: false
devtool: source-map
html:
  template: src/index.html
`)

	var buf bytes.Buffer
	cmd := &ConfigCmd{Dir: dir, Config: "packforge.yml", out: &buf}
	err := cmd.Run(context.Background(), &Globals{Production: true})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	// The devtool invariant survives serialization.
	assert.Equal(t, false, decoded["sourceMap"])
	assert.Equal(t, "", decoded["devtool"])

	plugins, ok := decoded["plugins"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, plugins)
	last, ok := plugins[len(plugins)-1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "html", last["name"])
}

func TestLoadOverrides_MissingFileIsEmpty(t *testing.T) {
	overrides, err := loadOverrides(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Nil(t, overrides.Mode)
	assert.Nil(t, overrides.SourceMap)
	assert.Empty(t, overrides.Rules)
}

func TestLoadOverrides_ParsesPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packforge.yml")
	writeFile(t, path, `
minimize: true
includePaths:
  - theme
rules:
  - name: inline-svg
    extensions: [svg]
    use:
      - name: raw
`)

	overrides, err := loadOverrides(path)
	require.NoError(t, err)

	require.NotNil(t, overrides.Minimize)
	assert.True(t, *overrides.Minimize)
	assert.Equal(t, []string{"theme"}, overrides.IncludePaths)
	require.Len(t, overrides.Rules, 1)
	assert.Equal(t, "inline-svg", overrides.Rules[0].Name)
	assert.Nil(t, overrides.SourceMap)
}

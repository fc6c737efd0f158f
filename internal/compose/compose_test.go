package compose

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_ResolvesContextAndOutputPath(t *testing.T) {
	dir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	opts, err := Compose(dir, Overrides{}, false)
	require.NoError(t, err)

	assert.Equal(t, resolved, opts.Context)
	assert.Equal(t, filepath.Join(resolved, "dist"), opts.OutputPath)
}

func TestCompose_ResolvesSymlinkedBaseDir(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(real, 0o755))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(real, link))

	opts, err := Compose(link, Overrides{}, false)
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(real)
	require.NoError(t, err)

	// Derived defaults come from the resolved path, not the symlink.
	assert.Equal(t, resolved, opts.Context)
	assert.Equal(t, filepath.Join(resolved, "dist"), opts.OutputPath)
}

func TestCompose_MissingBaseDir(t *testing.T) {
	_, err := Compose(filepath.Join(t.TempDir(), "nope"), Overrides{}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPathResolution)
}

func TestCompose_BaseDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := Compose(file, Overrides{}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPathResolution)
}

func TestCompose_DevtoolForcedOffWithoutSourceMap(t *testing.T) {
	// Explicit devtool override loses to sourceMap=false.
	opts, err := Compose(t.TempDir(), Overrides{
		SourceMap: ptr(false),
		Devtool:   ptr(DevtoolSourceMap),
	}, true)
	require.NoError(t, err)

	assert.False(t, opts.SourceMap)
	assert.Equal(t, DevtoolNone, opts.Devtool)
}

func TestCompose_DevtoolKeptWithSourceMap(t *testing.T) {
	opts, err := Compose(t.TempDir(), Overrides{
		SourceMap: ptr(true),
		Devtool:   ptr(DevtoolInline),
	}, false)
	require.NoError(t, err)

	assert.Equal(t, DevtoolInline, opts.Devtool)
}

func TestCompose_ProductionFlagDrivesDefaults(t *testing.T) {
	dir := t.TempDir()

	dev, err := Compose(dir, Overrides{}, false)
	require.NoError(t, err)
	assert.False(t, dev.Minimize)
	assert.False(t, dev.SourceMap)
	assert.Equal(t, DevtoolNone, dev.Devtool)

	prod, err := Compose(dir, Overrides{}, true)
	require.NoError(t, err)
	assert.True(t, prod.Minimize)
	assert.True(t, prod.SourceMap)
	assert.Equal(t, DevtoolSourceMap, prod.Devtool)
}

func TestCompose_RelativeOutputPathJoinsContext(t *testing.T) {
	dir := t.TempDir()
	opts, err := Compose(dir, Overrides{OutputPath: ptr("build")}, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(opts.Context, "build"), opts.OutputPath)
}

func TestCompose_PluginOrder(t *testing.T) {
	opts, err := Compose(t.TempDir(), Overrides{
		Plugins: []Plugin{{Name: "user-a"}, {Name: "user-b"}},
		HTML:    &HTMLOverrides{Template: ptr("src/index.html")},
	}, false)
	require.NoError(t, err)

	names := make([]string, 0, len(opts.Plugins))
	for _, p := range opts.Plugins {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{PluginExtractCSS, PluginCopy, "user-a", "user-b", PluginHTML}, names)
}

func TestCompose_NoHTMLPluginWithoutTemplate(t *testing.T) {
	opts, err := Compose(t.TempDir(), Overrides{}, false)
	require.NoError(t, err)

	for _, p := range opts.Plugins {
		assert.NotEqual(t, PluginHTML, p.Name)
	}
}

func TestCompose_HTMLPluginCarriesTemplateAndTitle(t *testing.T) {
	opts, err := Compose(t.TempDir(), Overrides{
		HTML: &HTMLOverrides{Template: ptr("t.html"), Title: ptr("My App")},
	}, false)
	require.NoError(t, err)

	last := opts.Plugins[len(opts.Plugins)-1]
	require.Equal(t, PluginHTML, last.Name)
	assert.Equal(t, "t.html", last.Options["template"])
	assert.Equal(t, "My App", last.Options["title"])
}

func TestCompose_ResolveModulesOrder(t *testing.T) {
	opts, err := Compose(t.TempDir(), Overrides{}, false)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(opts.ResolveModules), 2)
	assert.Equal(t, "node_modules", opts.ResolveModules[0])
	assert.Equal(t, filepath.Join(opts.Context, "node_modules"), opts.ResolveModules[1])
}

func TestCompose_Idempotent(t *testing.T) {
	dir := t.TempDir()
	overrides := Overrides{
		Minimize:     ptr(true),
		Entry:        map[string][]string{"admin": {"./src/admin.js"}},
		IncludePaths: []string{"theme"},
		HTML:         &HTMLOverrides{Template: ptr("src/index.html")},
	}

	first, err := Compose(dir, overrides, true)
	require.NoError(t, err)
	second, err := Compose(dir, overrides, true)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompose_BadExcludePattern(t *testing.T) {
	_, err := Compose(t.TempDir(), Overrides{ExcludePattern: ptr("[")}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadPattern)
}

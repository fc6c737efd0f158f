package compose

import (
	"fmt"
	"os"
	"path/filepath"
)

// moduleDirName is the conventional dependency directory searched for
// modules during resolution.
const moduleDirName = "node_modules"

// Compose produces the complete build configuration for baseDir.
// Overrides are merged onto the defaults for the given production
// flag, the devtool invariant is applied, and the ordered rule and
// plugin lists are assembled. The returned options are never mutated
// afterwards; identical inputs produce structurally equal output.
func Compose(baseDir string, overrides Overrides, production bool) (*BuildOptions, error) {
	resolved, err := resolveDir(baseDir)
	if err != nil {
		return nil, err
	}

	opts := mergeOptions(Defaults(production), overrides)
	opts.Context = resolved

	switch {
	case opts.OutputPath == "":
		opts.OutputPath = filepath.Join(resolved, "dist")
	case !filepath.IsAbs(opts.OutputPath):
		opts.OutputPath = filepath.Join(resolved, opts.OutputPath)
	}

	// sourceMap=false always wins over an explicit devtool override.
	if !opts.SourceMap {
		opts.Devtool = DevtoolNone
	}

	userRules := opts.Rules
	opts.Rules = append(userRules, builtinRules(&opts)...)
	for i := range opts.Rules {
		if err := opts.Rules[i].compile(); err != nil {
			return nil, err
		}
	}

	opts.Plugins = assemblePlugins(&opts, opts.Plugins)

	opts.ResolveModules = resolveModules(resolved)

	return &opts, nil
}

// resolveDir canonicalises baseDir: absolute, symlink-free, and an
// existing directory. Any failure aborts composition.
func resolveDir(baseDir string) (string, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrPathResolution, baseDir, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrPathResolution, baseDir, err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrPathResolution, baseDir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s: not a directory", ErrPathResolution, baseDir)
	}
	return resolved, nil
}

// resolveModules orders module search paths: the bare directory name,
// the project's own module directory, then the tool's bundled one, so
// project-local and tool-bundled dependencies beat ambient ones.
func resolveModules(projectDir string) []string {
	paths := []string{
		moduleDirName,
		filepath.Join(projectDir, moduleDirName),
	}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), moduleDirName))
	}
	return paths
}

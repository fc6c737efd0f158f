// Package bundler drives the esbuild engine with a composed
// configuration and executes the output plugin list.
package bundler

import (
	"encoding/json"
	"errors"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/rs/zerolog"

	"github.com/packforge/packforge/internal/compose"
)

// metafileName is where build metadata lands inside the output path.
const metafileName = "meta.json"

// Engine wraps one composed configuration and the esbuild invocation
// for it. Build may be called repeatedly (watch mode rebuilds).
type Engine struct {
	opts     *compose.BuildOptions
	log      zerolog.Logger
	metadata *Metafile
	mu       sync.RWMutex
}

// New creates an engine for the given composed configuration.
func New(opts *compose.BuildOptions, log zerolog.Logger) *Engine {
	return &Engine{opts: opts, log: log}
}

// Options exposes the composed configuration the engine was built with.
func (e *Engine) Options() *compose.BuildOptions {
	return e.opts
}

// Build runs esbuild with the mapped settings, stores the metafile and
// then executes the plugin list in its composed order.
func (e *Engine) Build() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.log.Info().
		Str("context", e.opts.Context).
		Str("outputPath", e.opts.OutputPath).
		Str("mode", string(e.opts.Mode)).
		Msg("building")

	result := api.Build(Map(e.opts))

	if len(result.Errors) > 0 {
		for _, msg := range result.Errors {
			e.log.Error().Str("error", msg.Text).Msg("build error")
		}
		return errors.New("bundle failed")
	}

	for _, file := range result.OutputFiles {
		e.log.Debug().Str("file", file.Path).Msg("emitted")
	}

	metafilePath := filepath.Join(e.opts.OutputPath, metafileName)
	if err := os.WriteFile(metafilePath, []byte(result.Metafile), 0o600); err != nil {
		return err
	}

	var metadata Metafile
	if err := json.Unmarshal([]byte(result.Metafile), &metadata); err != nil {
		return err
	}
	e.metadata = &metadata

	return e.runPlugins()
}

// runPlugins executes the composed plugin list in order. Stylesheet
// extraction is native to esbuild (css lands in its own output file),
// so that plugin is a no-op here; unknown plugin names are skipped.
func (e *Engine) runPlugins() error {
	for _, p := range e.opts.Plugins {
		switch p.Name {
		case compose.PluginExtractCSS:
			// handled by esbuild itself
		case compose.PluginCopy:
			if err := e.runCopy(); err != nil {
				return err
			}
		case compose.PluginHTML:
			if err := e.runHTML(p); err != nil {
				return err
			}
		default:
			e.log.Debug().Str("plugin", p.Name).Msg("no executor for plugin, skipping")
		}
	}
	return nil
}

// Scripts returns the ordered script paths for the given entry name:
// the entrypoint bundle first, then its chunk imports depth-first.
// Paths are relative to the output path.
func (e *Engine) Scripts(entry string) ([]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.scripts(entry)
}

// scripts is the lock-free core of Scripts, shared with the html
// plugin which runs while Build still holds the write lock.
func (e *Engine) scripts(entry string) ([]string, error) {
	if e.metadata == nil {
		return nil, errors.New("not built yet")
	}

	inputs, ok := e.opts.Entry[entry]
	if !ok || len(inputs) == 0 {
		return nil, errors.New("unknown entry: " + entry)
	}

	var scripts []string
	visited := map[string]bool{}
	for _, input := range inputs {
		normalized := strings.TrimPrefix(filepath.ToSlash(input), "./")
		for _, out := range slices.Sorted(maps.Keys(e.metadata.Outputs)) {
			info := e.metadata.Outputs[out]
			if info.EntryPoint != normalized || visited[out] {
				continue
			}
			visited[out] = true
			scripts = append(scripts, e.relOutput(out))
			e.addImports(info, &scripts, visited)
		}
	}

	if len(scripts) == 0 {
		return nil, errors.New("entry not found in metafile: " + entry)
	}
	return scripts, nil
}

func (e *Engine) addImports(info OutputInfo, scripts *[]string, visited map[string]bool) {
	for _, imp := range info.Imports {
		if imp.External || visited[imp.Path] {
			continue
		}
		visited[imp.Path] = true
		*scripts = append(*scripts, e.relOutput(imp.Path))
		if chunk, ok := e.metadata.Outputs[imp.Path]; ok {
			e.addImports(chunk, scripts, visited)
		}
	}
}

// relOutput rewrites a metafile output path (relative to the working
// dir) so it is relative to the output path.
func (e *Engine) relOutput(out string) string {
	abs := out
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(e.opts.Context, out)
	}
	if rel, err := filepath.Rel(e.opts.OutputPath, abs); err == nil {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(out)
}

// Map translates a composed configuration into the bundler library's
// native options. Exported for callers that need direct access to the
// engine.
func Map(opts *compose.BuildOptions) api.BuildOptions {
	return api.BuildOptions{
		AbsWorkingDir:       opts.Context,
		EntryPointsAdvanced: entryPoints(opts.Entry),
		Outdir:              opts.OutputPath,
		Bundle:              true,
		Write:               true,
		Metafile:            true,
		Format:              api.FormatESModule,
		MinifyWhitespace:    opts.Minimize,
		MinifyIdentifiers:   opts.Minimize,
		MinifySyntax:        opts.Minimize,
		Sourcemap:           sourcemap(opts),
		Loader:              extLoaders(opts.Rules),
		NodePaths:           opts.ResolveModules,
		LogLevel:            api.LogLevelSilent,
	}
}

// entryPoints flattens the entry map in stable name order. A single
// input keeps the bundle name as-is; additional inputs get a numeric
// suffix so outputs never collide.
func entryPoints(entry map[string][]string) []api.EntryPoint {
	var points []api.EntryPoint
	for _, name := range slices.Sorted(maps.Keys(entry)) {
		for i, input := range entry[name] {
			out := name
			if i > 0 {
				out = name + "-" + strconv.Itoa(i)
			}
			points = append(points, api.EntryPoint{InputPath: input, OutputPath: out})
		}
	}
	return points
}

func sourcemap(opts *compose.BuildOptions) api.SourceMap {
	if !opts.SourceMap {
		return api.SourceMapNone
	}
	switch opts.Devtool {
	case compose.DevtoolInline:
		return api.SourceMapInline
	case compose.DevtoolNone:
		return api.SourceMapNone
	default:
		return api.SourceMapLinked
	}
}

// extLoaders maps file extensions onto esbuild loaders, walking the
// rule list in order so the first rule claiming an extension wins.
func extLoaders(rules []compose.Rule) map[string]api.Loader {
	loaders := map[string]api.Loader{}
	for _, rule := range rules {
		l := ruleLoader(rule)
		for _, ext := range rule.Extensions {
			key := "." + ext
			if _, claimed := loaders[key]; !claimed {
				loaders[key] = l
			}
		}
	}
	return loaders
}

func ruleLoader(rule compose.Rule) api.Loader {
	for _, use := range rule.Use {
		switch use.Name {
		case "file":
			return api.LoaderFile
		case "raw":
			return api.LoaderText
		case "css", "extract-css", "sass":
			return api.LoaderCSS
		case "script":
			return api.LoaderJS
		}
	}
	return api.LoaderFile
}

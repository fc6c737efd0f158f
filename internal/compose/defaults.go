package compose

// DefaultExcludePattern skips dependency directories when matching
// script files. The pattern uses gobwas/glob syntax with no separator,
// so a single star crosses path boundaries.
const DefaultExcludePattern = "*node_modules*"

// DefaultFontMarker is the path substring that routes an svg through
// the font rule instead of the bare-svg rule.
const DefaultFontMarker = "fonts"

// Defaults returns the built-in configuration that overrides are merged
// onto. Minimize and source maps follow the production flag; everything
// else is fixed. OutputPath and ResolveModules are left empty here
// because they derive from the resolved project path during Compose.
func Defaults(production bool) BuildOptions {
	return BuildOptions{
		Mode:           ModeDevelopment,
		Minimize:       production,
		SourceMap:      production,
		Devtool:        DevtoolSourceMap,
		ExcludePattern: DefaultExcludePattern,
		FontMarker:     DefaultFontMarker,
		HTML: HTML{
			Title: "packforge app",
		},
		Entry: map[string][]string{
			"main": {"./src/index.js"},
		},
		ScriptTransform: ScriptTransform{
			Cache:   true,
			Presets: []string{"env"},
		},
	}
}

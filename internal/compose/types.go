// Package compose builds complete bundler configurations from a partial
// set of overrides and a project directory. Composition is a pure
// computation: it resolves the project path, merges overrides onto the
// built-in defaults with one declared policy per field, and assembles
// the ordered rule and plugin lists handed to the bundling engine.
package compose

// Mode selects the overall build profile.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

// Devtool names the source-map strategy. The zero value disables source
// map emission entirely.
type Devtool string

const (
	DevtoolNone      Devtool = ""
	DevtoolSourceMap Devtool = "source-map"
	DevtoolInline    Devtool = "inline-source-map"
)

// HTML controls the optional HTML emission plugin. A non-empty Template
// appends the plugin to the end of the plugin list.
type HTML struct {
	Template string `yaml:"template" json:"template"`
	Title    string `yaml:"title" json:"title"`
}

// CopyRule copies files matching the From glob into To, relative to the
// output path.
type CopyRule struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
}

// Plugin is a descriptor for an output plugin stage. The composer only
// orders descriptors; execution belongs to the bundler.
type Plugin struct {
	Name    string         `yaml:"name" json:"name"`
	Options map[string]any `yaml:"options,omitempty" json:"options,omitempty"`
}

// Loader is one step of a rule's processing pipeline.
type Loader struct {
	Name    string         `yaml:"name" json:"name"`
	Options map[string]any `yaml:"options,omitempty" json:"options,omitempty"`
}

// ScriptTransform configures the script-transformation pipeline step.
type ScriptTransform struct {
	Cache   bool     `yaml:"cache" json:"cache"`
	Presets []string `yaml:"presets" json:"presets"`
	Plugins []string `yaml:"plugins" json:"plugins"`
}

// BuildOptions is the complete configuration produced by Compose. It is
// constructed once per invocation and never mutated afterwards.
type BuildOptions struct {
	Mode      Mode `json:"mode"`
	Minimize  bool `json:"minimize"`
	SourceMap bool `json:"sourceMap"`

	// Devtool is forced to DevtoolNone whenever SourceMap is false,
	// regardless of any explicit override.
	Devtool Devtool `json:"devtool"`

	// Context is the absolute, symlink-resolved project root. All
	// derived paths are computed from it.
	Context string `json:"context"`

	// OutputPath defaults to <Context>/dist. A relative override is
	// joined onto the resolved Context.
	OutputPath string `json:"outputPath"`

	// ExcludePattern is a glob applied to script files; matching paths
	// are skipped by the script rule.
	ExcludePattern string `json:"excludePattern"`

	// FontMarker is the path substring separating font glyphs from
	// inline icons for the overlapping svg extension. When empty the
	// font rule matches nothing and every svg takes the bare-svg rule.
	FontMarker string `json:"fontMarker"`

	HTML            HTML                `json:"html"`
	Entry           map[string][]string `json:"entry"`
	Rules           []Rule              `json:"rules"`
	Plugins         []Plugin            `json:"plugins"`
	Copy            []CopyRule          `json:"copy"`
	ScriptTransform ScriptTransform     `json:"scriptTransform"`

	// IncludePaths are extra search paths for the style preprocessor.
	IncludePaths []string `json:"includePaths"`

	// ResolveModules are module resolution search paths, most preferred
	// first: the bare module directory name, the project's own module
	// directory, then the tool's bundled one.
	ResolveModules []string `json:"resolveModules"`
}

// Overrides is the partial configuration merged onto the defaults.
// Pointer fields distinguish "not set" from an explicit zero value;
// slice fields are concatenated after the defaults.
type Overrides struct {
	Mode           *Mode    `yaml:"mode"`
	Minimize       *bool    `yaml:"minimize"`
	SourceMap      *bool    `yaml:"sourceMap"`
	Devtool        *Devtool `yaml:"devtool"`
	OutputPath     *string  `yaml:"outputPath"`
	ExcludePattern *string  `yaml:"excludePattern"`
	FontMarker     *string  `yaml:"fontMarker"`

	HTML            *HTMLOverrides            `yaml:"html"`
	Entry           map[string][]string       `yaml:"entry"`
	Rules           []Rule                    `yaml:"rules"`
	Plugins         []Plugin                  `yaml:"plugins"`
	Copy            []CopyRule                `yaml:"copy"`
	ScriptTransform *ScriptTransformOverrides `yaml:"scriptTransform"`
	IncludePaths    []string                  `yaml:"includePaths"`
}

// HTMLOverrides is the partial form of HTML.
type HTMLOverrides struct {
	Template *string `yaml:"template"`
	Title    *string `yaml:"title"`
}

// ScriptTransformOverrides is the partial form of ScriptTransform.
type ScriptTransformOverrides struct {
	Cache   *bool    `yaml:"cache"`
	Presets []string `yaml:"presets"`
	Plugins []string `yaml:"plugins"`
}

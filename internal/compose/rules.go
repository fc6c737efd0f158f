package compose

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// Rule pairs a pure path predicate with the loader pipeline applied to
// matching files. Rules are evaluated in list order and the first match
// wins, so user rules listed ahead of the built-ins pre-empt them.
type Rule struct {
	Name string `yaml:"name" json:"name"`

	// Extensions the rule matches, lowercase without the dot.
	Extensions []string `yaml:"extensions" json:"extensions"`

	// PathContains restricts the rule to paths containing the given
	// substring. Empty means no constraint.
	PathContains string `yaml:"pathContains,omitempty" json:"pathContains,omitempty"`

	// PathExcludes rejects paths containing the given substring.
	PathExcludes string `yaml:"pathExcludes,omitempty" json:"pathExcludes,omitempty"`

	// Exclude is a glob pattern; matching paths are skipped.
	Exclude string `yaml:"exclude,omitempty" json:"exclude,omitempty"`

	Use []Loader `yaml:"use" json:"use"`

	// never disables the rule outright. Set on the built-in font rule
	// when the font marker is empty, so the svg ambiguity always
	// resolves to the bare-svg rule.
	never bool

	exclude glob.Glob
}

// Match reports whether the rule applies to path. It is a pure function
// of the path and the rule's compiled predicate.
func (r *Rule) Match(path string) bool {
	if r.never {
		return false
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !slices.Contains(r.Extensions, ext) {
		return false
	}
	if r.PathContains != "" && !strings.Contains(path, r.PathContains) {
		return false
	}
	if r.PathExcludes != "" && strings.Contains(path, r.PathExcludes) {
		return false
	}
	if r.exclude != nil && r.exclude.Match(path) {
		return false
	}
	return true
}

// compile prepares the rule's exclude glob. Rules without an exclude
// pattern compile to a nil matcher.
func (r *Rule) compile() error {
	if r.Exclude == "" {
		r.exclude = nil
		return nil
	}
	g, err := glob.Compile(r.Exclude)
	if err != nil {
		return fmt.Errorf("%w: rule %q exclude %q: %v", ErrBadPattern, r.Name, r.Exclude, err)
	}
	r.exclude = g
	return nil
}

// RuleFor returns the first rule matching path, honouring the
// first-match-wins precedence of the assembled rule list.
func (b *BuildOptions) RuleFor(path string) (*Rule, bool) {
	for i := range b.Rules {
		if b.Rules[i].Match(path) {
			return &b.Rules[i], true
		}
	}
	return nil, false
}

// builtinRules returns the fixed tail of the rule list: images, styles,
// scripts, fonts, then bare svg. The font and bare-svg rules overlap on
// the svg extension and are kept mutually exclusive by the font marker.
func builtinRules(opts *BuildOptions) []Rule {
	style := []Loader{
		{Name: "extract-css"},
		{Name: "css", Options: map[string]any{
			"minimize":  opts.Minimize,
			"sourceMap": opts.SourceMap,
		}},
		{Name: "sass", Options: map[string]any{
			"sourceMap":    opts.SourceMap,
			"includePaths": opts.IncludePaths,
		}},
	}

	script := []Loader{
		{Name: "script", Options: map[string]any{
			"cache":   opts.ScriptTransform.Cache,
			"presets": opts.ScriptTransform.Presets,
			"plugins": opts.ScriptTransform.Plugins,
		}},
	}

	return []Rule{
		{
			Name:       "image",
			Extensions: []string{"png", "jpg", "jpeg", "gif", "webp"},
			Use:        []Loader{{Name: "file"}},
		},
		{
			Name:       "style",
			Extensions: []string{"css", "scss"},
			Use:        style,
		},
		{
			Name:       "script",
			Extensions: []string{"js"},
			Exclude:    opts.ExcludePattern,
			Use:        script,
		},
		{
			Name:         "font",
			Extensions:   []string{"eot", "svg", "ttf", "woff", "woff2"},
			PathContains: opts.FontMarker,
			never:        opts.FontMarker == "",
			Use: []Loader{{Name: "file", Options: map[string]any{
				"name": "fonts/[name].[ext]",
			}}},
		},
		{
			Name:         "svg",
			Extensions:   []string{"svg"},
			PathExcludes: opts.FontMarker,
			Use:          []Loader{{Name: "file"}},
		},
	}
}

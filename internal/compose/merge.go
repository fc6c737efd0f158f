package compose

import "maps"

// mergeOptions applies overrides onto the defaults with one declared
// policy per field:
//
//   - scalar and struct fields: override wins when set (non-nil)
//   - slice fields: defaults first, then overrides, never deduplicated
//   - the entry map: merged per key, an override key replaces the
//     default key wholesale
//
// The merge never mutates its inputs.
func mergeOptions(def BuildOptions, o Overrides) BuildOptions {
	out := def

	if o.Mode != nil {
		out.Mode = *o.Mode
	}
	if o.Minimize != nil {
		out.Minimize = *o.Minimize
	}
	if o.SourceMap != nil {
		out.SourceMap = *o.SourceMap
	}
	if o.Devtool != nil {
		out.Devtool = *o.Devtool
	}
	if o.OutputPath != nil {
		out.OutputPath = *o.OutputPath
	}
	if o.ExcludePattern != nil {
		out.ExcludePattern = *o.ExcludePattern
	}
	if o.FontMarker != nil {
		out.FontMarker = *o.FontMarker
	}

	if o.HTML != nil {
		if o.HTML.Template != nil {
			out.HTML.Template = *o.HTML.Template
		}
		if o.HTML.Title != nil {
			out.HTML.Title = *o.HTML.Title
		}
	}

	if o.ScriptTransform != nil {
		if o.ScriptTransform.Cache != nil {
			out.ScriptTransform.Cache = *o.ScriptTransform.Cache
		}
		out.ScriptTransform.Presets = concat(def.ScriptTransform.Presets, o.ScriptTransform.Presets)
		out.ScriptTransform.Plugins = concat(def.ScriptTransform.Plugins, o.ScriptTransform.Plugins)
	}

	out.Entry = maps.Clone(def.Entry)
	if out.Entry == nil {
		out.Entry = map[string][]string{}
	}
	for name, paths := range o.Entry {
		out.Entry[name] = paths
	}

	out.Rules = concat(def.Rules, o.Rules)
	out.Plugins = concat(def.Plugins, o.Plugins)
	out.Copy = concat(def.Copy, o.Copy)
	out.IncludePaths = concat(def.IncludePaths, o.IncludePaths)

	return out
}

// concat joins two slices into a fresh backing array so neither input
// is aliased by the result.
func concat[T any](a, b []T) []T {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

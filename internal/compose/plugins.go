package compose

// Plugin names understood by the bundler. User plugins may use any
// name; unknown names pass through to the configuration untouched.
const (
	PluginExtractCSS = "extract-css"
	PluginCopy       = "copy"
	PluginHTML       = "html"
)

// assemblePlugins builds the ordered plugin list: stylesheet extraction
// first, the asset copier second, user plugins in their given order,
// and the HTML emitter last when a template was provided.
func assemblePlugins(opts *BuildOptions, user []Plugin) []Plugin {
	plugins := []Plugin{
		{Name: PluginExtractCSS, Options: map[string]any{
			"filename": "[name].css",
		}},
		{Name: PluginCopy, Options: map[string]any{
			"patterns": opts.Copy,
		}},
	}

	plugins = append(plugins, user...)

	if opts.HTML.Template != "" {
		plugins = append(plugins, Plugin{Name: PluginHTML, Options: map[string]any{
			"template": opts.HTML.Template,
			"title":    opts.HTML.Title,
		}})
	}

	return plugins
}

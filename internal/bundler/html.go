package bundler

import (
	"fmt"
	"html/template"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/packforge/packforge/internal/compose"
)

// runHTML executes the HTML emission plugin: it renders the configured
// template with the built entrypoint scripts and stylesheets and writes
// index.html into the output path.
func (e *Engine) runHTML(p compose.Plugin) error {
	templatePath, _ := p.Options["template"].(string)
	if templatePath == "" {
		return fmt.Errorf("html plugin: no template configured")
	}
	if !filepath.IsAbs(templatePath) {
		templatePath = filepath.Join(e.opts.Context, templatePath)
	}

	title, _ := p.Options["title"].(string)

	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return fmt.Errorf("html plugin: %w", err)
	}

	var scripts []string
	seen := map[string]bool{}
	for _, entry := range slices.Sorted(maps.Keys(e.opts.Entry)) {
		entryScripts, err := e.scripts(entry)
		if err != nil {
			return fmt.Errorf("html plugin: %w", err)
		}
		for _, s := range entryScripts {
			if !seen[s] {
				seen[s] = true
				scripts = append(scripts, s)
			}
		}
	}

	data := map[string]any{
		"Title":   title,
		"Scripts": scripts,
		"Styles":  e.styles(),
	}

	out, err := os.Create(filepath.Join(e.opts.OutputPath, "index.html"))
	if err != nil {
		return err
	}
	if err := tmpl.Execute(out, data); err != nil {
		out.Close()
		return fmt.Errorf("html plugin: %w", err)
	}
	return out.Close()
}

// styles lists the extracted stylesheet outputs, relative to the
// output path.
func (e *Engine) styles() []string {
	if e.metadata == nil {
		return nil
	}
	var styles []string
	for _, out := range slices.Sorted(maps.Keys(e.metadata.Outputs)) {
		if strings.HasSuffix(out, ".css") {
			styles = append(styles, e.relOutput(out))
		}
	}
	return styles
}

// Package scaffold generates component source files from the bundled
// templates, substituting a validated name into file names and
// contents.
package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Marker is the substitution marker replaced with the component name
// in template contents.
const Marker = "___NAME___"

// templateBase is the stem of the template file names, replaced with
// the component name on output.
const templateBase = "component"

//go:embed templates/component/*
var templatesFS embed.FS

// Generate writes a new component named name under destDir/name. The
// destination must not already exist; the check runs strictly before
// any directory is created so a failed call leaves no partial state.
func Generate(name, destDir string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	target := filepath.Join(destDir, name)
	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("%w: %s", ErrDestinationExists, target)
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(target, 0o755); err != nil {
		return err
	}

	entries, err := templatesFS.ReadDir("templates/component")
	if err != nil {
		return err
	}

	for _, entry := range entries {
		content, err := templatesFS.ReadFile("templates/component/" + entry.Name())
		if err != nil {
			return err
		}

		outName := strings.ReplaceAll(entry.Name(), templateBase, name)
		outPath := filepath.Join(target, outName)
		rendered := strings.ReplaceAll(string(content), Marker, name)

		if err := os.WriteFile(outPath, []byte(rendered), 0o644); err != nil {
			return err
		}
	}

	return nil
}

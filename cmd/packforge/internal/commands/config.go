package commands

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/packforge/packforge/internal/compose"
)

// ConfigCmd composes the configuration and prints it as JSON without
// running a build.
type ConfigCmd struct {
	Dir    string `arg:"" optional:"" default:"." help:"Project directory"`
	Config string `help:"Path to the overrides file, relative to the project directory" default:"packforge.yml"`

	// out is swapped in tests.
	out io.Writer
}

func (c *ConfigCmd) Run(ctx context.Context, globals *Globals) error {
	configPath := c.Config
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(c.Dir, c.Config)
	}

	overrides, err := loadOverrides(configPath)
	if err != nil {
		return err
	}

	opts, err := compose.Compose(c.Dir, overrides, globals.Production)
	if err != nil {
		return err
	}

	out := c.out
	if out == nil {
		out = os.Stdout
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(opts)
}

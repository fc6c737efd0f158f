package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/packforge/packforge/internal/bundler"
	"github.com/packforge/packforge/internal/compose"
	"github.com/packforge/packforge/internal/logger"
)

// BuildCmd composes the configuration for a project directory and runs
// the bundler once.
type BuildCmd struct {
	Dir    string `arg:"" optional:"" default:"." help:"Project directory"`
	Config string `help:"Path to the overrides file, relative to the project directory" default:"packforge.yml"`
}

func (c *BuildCmd) Run(ctx context.Context, globals *Globals) error {
	log := logger.Setup(globals.Debug)

	engine, err := composeEngine(c.Dir, c.Config, globals, log)
	if err != nil {
		return err
	}

	if err := engine.Build(); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	log.Info().Str("outputPath", engine.Options().OutputPath).Msg("build complete")
	return nil
}

// composeEngine loads the overrides file, composes the configuration
// and wraps it in a bundler engine.
func composeEngine(dir, configName string, globals *Globals, log zerolog.Logger) (*bundler.Engine, error) {
	configPath := configName
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(dir, configName)
	}

	overrides, err := loadOverrides(configPath)
	if err != nil {
		return nil, err
	}

	opts, err := compose.Compose(dir, overrides, globals.Production)
	if err != nil {
		return nil, err
	}

	return bundler.New(opts, log), nil
}

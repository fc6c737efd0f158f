package commands

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/packforge/packforge/internal/compose"
)

type Globals struct {
	Debug      bool
	Version    string
	Production bool
}

// loadOverrides reads the partial configuration from path. A missing
// file is not an error; the defaults then stand alone.
func loadOverrides(path string) (compose.Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return compose.Overrides{}, nil
		}
		return compose.Overrides{}, fmt.Errorf("read overrides: %w", err)
	}

	var overrides compose.Overrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return compose.Overrides{}, fmt.Errorf("parse overrides %s: %w", path, err)
	}
	return overrides, nil
}

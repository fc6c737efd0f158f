package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/packforge/packforge/cmd/packforge/internal/commands"
)

var (
	version = "dev"
	cli     struct {
		Build  commands.BuildCmd  `cmd:"" help:"Compose the configuration and run the bundler"`
		Config commands.ConfigCmd `cmd:"" help:"Print the composed configuration"`
		New    commands.NewCmd    `cmd:"" help:"Scaffold a new component"`
		Watch  commands.WatchCmd  `cmd:"" help:"Rebuild on file changes"`

		Production bool `help:"Enable production build settings." env:"PACKFORGE_PRODUCTION"`
		Debug      bool `help:"Enable debug mode."`
		Version    kong.VersionFlag
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))

	// The production flag is read once here and threaded through; it
	// never changes for the lifetime of the process.
	production := cli.Production || os.Getenv("PACKFORGE_ENV") == "production"

	err := cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version, Production: production})
	cmd.FatalIfErrorf(err)
}

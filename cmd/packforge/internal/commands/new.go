package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/packforge/packforge/internal/prompt"
	"github.com/packforge/packforge/internal/scaffold"
)

// NewCmd scaffolds a new component. Without a name argument it runs the
// interactive prompts; with one it is fully non-interactive.
type NewCmd struct {
	Name string `arg:"" optional:"" help:"Component name (prompts when omitted)"`
	Dest string `help:"Destination directory" default:"src/components"`
}

func (c *NewCmd) Run(ctx context.Context, globals *Globals) error {
	name, dest := c.Name, c.Dest

	if name == "" {
		answers, err := prompt.Ask(prompt.Answers{Dest: dest})
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				return nil
			}
			return err
		}
		if !answers.Confirm {
			return nil
		}
		name, dest = answers.Name, answers.Dest
	}

	if err := scaffold.Generate(name, dest); err != nil {
		if errors.Is(err, scaffold.ErrDestinationExists) {
			return fmt.Errorf("component %q already exists in %s, pick another name or remove it first", name, dest)
		}
		return err
	}

	fmt.Printf("Created component %s in %s\n", name, dest)
	return nil
}

// Package prompt gathers the interactive answers for scaffolding. It
// only collects input; validation rules come from the scaffold package
// and composition never depends on this package.
package prompt

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/packforge/packforge/internal/scaffold"
)

// ErrAborted indicates the user cancelled the form.
var ErrAborted = errors.New("prompt aborted")

// Answers are the resolved inputs for a scaffolding run.
type Answers struct {
	Name    string
	Dest    string
	Confirm bool
}

// Ask runs the interactive form, seeded with any defaults already set
// on the answers.
func Ask(defaults Answers) (Answers, error) {
	a := defaults

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Component name").
				Description("Letters, digits and underscore only.").
				Validate(scaffold.ValidateName).
				Value(&a.Name),
			huh.NewInput().
				Title("Destination directory").
				Placeholder("src/components").
				Value(&a.Dest),
			huh.NewConfirm().
				Title("Create the component files?").
				Value(&a.Confirm),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return Answers{}, ErrAborted
		}
		return Answers{}, err
	}

	if a.Dest == "" {
		a.Dest = "src/components"
	}

	return a, nil
}

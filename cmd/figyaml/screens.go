package main

import (
	"fmt"

	"github.com/figyaml/figyaml"
	"github.com/figyaml/figyaml/classify"
)

// Run executes the screens command.
func (c *ScreensCmd) Run(deps *Dependencies) error {
	file, err := deps.Loader.Load(deps.Ctx, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", figyaml.ErrorMessage(err))
		return err
	}

	for _, root := range classify.ScreenRoots(file) {
		name := root.Name
		if name == "" {
			name = root.ID
		}
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", name, root.Type)
	}
	return nil
}

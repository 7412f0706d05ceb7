package main

import (
	"fmt"

	"github.com/figyaml/figyaml"
	"github.com/figyaml/figyaml/classify"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	file, err := deps.Loader.Load(deps.Ctx, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", figyaml.ErrorMessage(err))
		return err
	}

	progress := func(event classify.ProgressEvent) {
		switch event.Type {
		case classify.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d screens\n", event.Total)
		case classify.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  failed %s: %s\n", event.Screen, figyaml.ErrorMessage(event.Error))
		}
	}

	screens, err := deps.Converter.Convert(deps.Ctx, file, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", figyaml.ErrorMessage(err))
		return err
	}
	if len(screens) == 0 {
		err := figyaml.Errorf(figyaml.EINVALID, "no screens found in %s", c.Input)
		fmt.Fprintf(deps.Stderr, "error: %s\n", figyaml.ErrorMessage(err))
		return err
	}

	for _, screen := range screens {
		if err := deps.Store.Save(deps.Ctx, screen); err != nil {
			_ = deps.Store.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", figyaml.ErrorMessage(err))
			return err
		}
	}
	if err := deps.Store.Commit(); err != nil {
		_ = deps.Store.Abort()
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d screens to %s\n", len(screens), c.OutDir)
	return nil
}

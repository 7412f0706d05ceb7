package main

import (
	"fmt"
	"os"

	"github.com/figyaml/figyaml"
	fighttp "github.com/figyaml/figyaml/http"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	key, err := fighttp.ParseFileKey(c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", figyaml.ErrorMessage(err))
		return err
	}

	ids := c.NodeID
	if len(ids) == 0 {
		// A node-id embedded in the URL scopes the download.
		if id := fighttp.ParseNodeID(c.URL); id != "" {
			ids = []string{id}
		}
	}

	data, err := deps.Fetcher.FetchFileJSON(deps.Ctx, key, ids...)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", figyaml.ErrorMessage(err))
		return err
	}

	out := c.Out
	if out == "" {
		out = key + ".json"
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %s (%d bytes)\n", out, len(data))
	return nil
}

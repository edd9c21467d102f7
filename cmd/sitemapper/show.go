package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/sitemapper"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	crawl, err := deps.Crawls.FindCrawlByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemapper.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(crawl)
	}

	for _, u := range crawl.URLs {
		fmt.Fprintln(deps.Stdout, u)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/fwojciec/rechlog"
)

// Run executes the categories command.
func (c *CategoriesCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Categories:")
	for _, cat := range rechlog.Categories {
		fmt.Fprintf(deps.Stdout, "  %s\n", cat)
	}

	fmt.Fprintln(deps.Stdout, "\nEvidence levels:")
	for i, level := range rechlog.EvidenceLevels {
		fmt.Fprintf(deps.Stdout, "  %d  %s\n", i+1, level)
	}

	return nil
}

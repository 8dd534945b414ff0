package main

import (
	"fmt"

	"github.com/fwojciec/rechlog"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	category, err := rechlog.ParseCategory(c.Category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'rechlog categories' to see accepted values.\n", rechlog.ErrorMessage(err))
		return err
	}

	filter := rechlog.EntryFilter{Search: c.Search, Category: category}
	entries, err := deps.Entries.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rechlog.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		if filter == (rechlog.EntryFilter{}) {
			fmt.Fprintln(deps.Stdout, "No entries found. Use 'rechlog add' to create one.")
		} else {
			fmt.Fprintln(deps.Stdout, "No entries match the search.")
		}
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", e.ID, e.Date, e.Title)
		fmt.Fprintf(deps.Stdout, "    %s\n", e.URL)
	}

	return nil
}

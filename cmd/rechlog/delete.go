package main

import (
	"fmt"

	"github.com/fwojciec/rechlog"
)

// Run executes the delete command. Deleting an unknown ID changes nothing
// and is not treated as a failure.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	entry, err := deps.Entries.FindEntryByID(deps.Ctx, c.ID)
	if rechlog.ErrorCode(err) == rechlog.ENOTFOUND {
		fmt.Fprintf(deps.Stdout, "No entry with ID %q, nothing deleted.\n", c.ID)
		return nil
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rechlog.ErrorMessage(err))
		return err
	}

	if err := deps.Entries.DeleteEntry(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rechlog.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted entry %q\n", entry.Title)
	return nil
}

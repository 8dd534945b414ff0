package main

import (
	"fmt"

	"github.com/fwojciec/rechlog"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	entry, err := deps.Entries.FindEntryByID(deps.Ctx, c.ID)
	if rechlog.ErrorCode(err) == rechlog.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: entry %q not found. Use 'rechlog list' to see available entries.\n", c.ID)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rechlog.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, rechlog.FormatEntry(entry))
	return nil
}

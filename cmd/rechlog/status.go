package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/rechlog"
)

// updatedAter is implemented by slots that know when they were last written.
type updatedAter interface {
	UpdatedAt(ctx context.Context) (time.Time, error)
}

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	entries, err := deps.Entries.FindEntries(deps.Ctx, rechlog.EntryFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rechlog.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Storage: %s\n", deps.Location)
	fmt.Fprintf(deps.Stdout, "Entries: %d\n", len(entries))

	slot, ok := deps.Slot.(updatedAter)
	if !ok {
		return nil
	}

	updatedAt, err := slot.UpdatedAt(deps.Ctx)
	switch {
	case rechlog.ErrorCode(err) == rechlog.ENOTFOUND:
		fmt.Fprintln(deps.Stdout, "Last saved: never")
	case err != nil:
		fmt.Fprintf(deps.Stderr, "error: %s\n", rechlog.ErrorMessage(err))
		return err
	default:
		fmt.Fprintf(deps.Stdout, "Last saved: %s\n", updatedAt.Format(time.RFC3339))
	}

	return nil
}

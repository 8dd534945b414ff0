package main

import (
	"fmt"

	"github.com/fwojciec/rechlog"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	form := rechlog.NewForm(deps.Entries)

	fields := []struct {
		name  string
		value string
	}{
		{rechlog.FieldTitle, c.Title},
		{rechlog.FieldURL, c.URL},
		{rechlog.FieldCategory, c.Category},
		{rechlog.FieldEvidenceLevel, c.Evidence},
		{rechlog.FieldDescription, c.Description},
		{rechlog.FieldNotes, c.Notes},
	}
	for _, f := range fields {
		if err := form.Draft.SetField(f.name, f.value); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s. Use 'rechlog categories' to see accepted values.\n", rechlog.ErrorMessage(err))
			return err
		}
	}

	for _, tag := range c.Tags {
		form.TagInput = tag
		form.CommitTag()
	}

	entry, err := form.Submit(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rechlog.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added entry %q (%s)\n", entry.Title, entry.ID)
	return nil
}

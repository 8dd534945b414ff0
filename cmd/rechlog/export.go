package main

import (
	"fmt"

	"github.com/fwojciec/rechlog"
	"github.com/fwojciec/rechlog/export"
	"github.com/fwojciec/rechlog/fs"
)

// exportersFor returns the exporters for a format name accepted by ExportCmd.
func exportersFor(format string) ([]rechlog.Exporter, error) {
	switch format {
	case "csv":
		return []rechlog.Exporter{export.NewCSV()}, nil
	case "docx":
		return []rechlog.Exporter{export.NewDocument()}, nil
	case "all":
		return []rechlog.Exporter{export.NewCSV(), export.NewDocument()}, nil
	default:
		return nil, rechlog.Errorf(rechlog.EINVALID, "unknown export format %q", format)
	}
}

// Run executes the export command. All entries are exported regardless of
// any search used elsewhere.
func (c *ExportCmd) Run(deps *Dependencies) error {
	exps, err := exportersFor(c.Format)
	if err == nil && c.Stdout && len(exps) > 1 {
		err = rechlog.Errorf(rechlog.EINVALID, "--stdout writes a single format, choose csv or docx")
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rechlog.ErrorMessage(err))
		return err
	}

	entries, err := deps.Entries.FindEntries(deps.Ctx, rechlog.EntryFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rechlog.ErrorMessage(err))
		return err
	}

	if c.Stdout {
		if err := exps[0].Export(deps.Stdout, entries); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", rechlog.ErrorMessage(err))
			return err
		}
		return nil
	}

	paths, err := fs.NewExportWriter(c.Dir).WriteExports(deps.Ctx, exps, entries)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to write export: %v\n", err)
		return err
	}

	for i, path := range paths {
		fmt.Fprintf(deps.Stdout, "Exported %d entries to %s (%s)\n", len(entries), path, exps[i].ContentType())
	}
	return nil
}

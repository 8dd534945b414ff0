package main

import (
	"context"
	"io"

	"github.com/fwojciec/rechlog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Entries  rechlog.EntryService
	Slot     rechlog.Slot
	Location string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log storage operations to stderr"`

	Add        AddCmd        `cmd:"" help:"Log a new research reference"`
	List       ListCmd       `cmd:"" help:"List entries, optionally searched and filtered"`
	Show       ShowCmd       `cmd:"" help:"Show every field of an entry"`
	Delete     DeleteCmd     `cmd:"" help:"Delete an entry"`
	Export     ExportCmd     `cmd:"" help:"Export all entries to CSV, a text document or both"`
	Categories CategoriesCmd `cmd:"" help:"List categories and evidence levels"`
	Status     StatusCmd     `cmd:"" help:"Show where entries are stored"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Title       string   `arg:"" help:"Article title"`
	URL         string   `arg:"" help:"Source URL"`
	Category    string   `short:"c" help:"Category (see 'rechlog categories')"`
	Evidence    string   `short:"e" help:"Evidence level, full label or rank 1-4"`
	Description string   `short:"d" help:"Description"`
	Notes       string   `short:"n" help:"Additional notes"`
	Tags        []string `short:"t" name:"tag" sep:"none" help:"Tag (repeatable)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Search   string `short:"s" help:"Case-insensitive text to find in title, description or tags"`
	Category string `short:"c" help:"Only show entries of this category"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Entry ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Entry ID"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Format string `arg:"" enum:"csv,docx,all" help:"Export format (csv, docx or all)"`
	Dir    string `short:"o" default:"." help:"Directory to write the file to"`
	Stdout bool   `help:"Write to stdout instead of a file (csv or docx only)"`
}

// CategoriesCmd is the "categories" subcommand.
type CategoriesCmd struct{}

// StatusCmd is the "status" subcommand.
type StatusCmd struct{}

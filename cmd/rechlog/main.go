package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/rechlog"
	"github.com/fwojciec/rechlog/fs"
	recslog "github.com/fwojciec/rechlog/slog"
	"github.com/fwojciec/rechlog/sqlite"
	"github.com/fwojciec/rechlog/store"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// JSON file path. When set it is used instead of the database.
	FilePath string

	// SQLite database used by the SQLite slot.
	DB *sqlite.DB

	// Services for end-to-end testing.
	EntryService rechlog.EntryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:   defaultDBPath(),
		FilePath: os.Getenv("RECHLOG_FILE"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rechlog"),
		kong.Description("Log, search and export research-article references"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rechlog --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Listing the enumerations needs no storage.
	if kongCtx.Command() == "categories" {
		return kongCtx.Run(deps)
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	slot, err := m.openSlot(stderr)
	if err != nil {
		return err
	}
	defer m.Close()

	deps.Slot = slot
	deps.Location = m.location()

	var wrapped rechlog.Slot = slot
	if cli.Verbose {
		wrapped = recslog.NewLoggingSlot(slot, logger)
	}

	svc := store.NewEntryService(wrapped)
	svc.Logger = logger
	if err := svc.Load(ctx); err != nil {
		return fmt.Errorf("failed to load entries from %s: %w", deps.Location, err)
	}

	m.EntryService = svc
	if cli.Verbose {
		m.EntryService = recslog.NewLoggingEntryService(svc, logger)
	}
	deps.Entries = m.EntryService

	return kongCtx.Run(deps)
}

// openSlot opens the JSON file slot when FilePath is set and the SQLite slot
// otherwise.
func (m *Main) openSlot(stderr io.Writer) (rechlog.Slot, error) {
	if m.FilePath != "" {
		return fs.NewSlot(m.FilePath), nil
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set RECHLOG_DB to use a different database path\n")
		return nil, fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	return sqlite.NewSlot(m.DB, sqlite.DefaultSlotKey), nil
}

func (m *Main) location() string {
	if m.FilePath != "" {
		return "file " + m.FilePath
	}
	return "database " + m.DBPath
}

func defaultDBPath() string {
	if path := os.Getenv("RECHLOG_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "rechlog.db"
	}
	dir := filepath.Join(home, ".rechlog")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "rechlog.db")
}

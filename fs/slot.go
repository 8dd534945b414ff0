package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"time"

	"github.com/fwojciec/rechlog"
)

// Ensure Slot implements rechlog.Slot at compile time.
var _ rechlog.Slot = (*Slot)(nil)

// Slot implements rechlog.Slot as a single file.
// Writes replace the file atomically.
type Slot struct {
	path string
}

// NewSlot creates a new Slot backed by the file at path.
func NewSlot(path string) *Slot {
	return &Slot{path: path}
}

// Path returns the backing file path.
func (s *Slot) Path() string {
	return s.path
}

// Read returns the file contents, or ENOTFOUND if the file does not exist.
func (s *Slot) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, rechlog.Errorf(rechlog.ENOTFOUND, "slot file %q does not exist", s.path)
	}
	return data, err
}

// Write replaces the file contents.
func (s *Slot) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return writeFileAtomic(s.path, data)
}

// UpdatedAt returns the file modification time.
// Returns ENOTFOUND if the file does not exist.
func (s *Slot) UpdatedAt(_ context.Context) (time.Time, error) {
	info, err := os.Stat(s.path)
	if errors.Is(err, iofs.ErrNotExist) {
		return time.Time{}, rechlog.Errorf(rechlog.ENOTFOUND, "slot file %q does not exist", s.path)
	}
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime().UTC(), nil
}

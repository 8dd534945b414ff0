package rechlog

import (
	"context"
	"slices"
	"strings"
)

// DateLayout is the calendar date format stamped on entries.
const DateLayout = "2006-01-02"

// Entry represents one logged research reference.
// Entries are immutable once created; services hand out copies.
type Entry struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	URL           string        `json:"url"`
	Date          string        `json:"date"`
	Description   string        `json:"description"`
	EvidenceLevel EvidenceLevel `json:"evidenceLevel"`
	Category      Category      `json:"category"`
	Notes         string        `json:"notes"`
	Tags          []string      `json:"tags"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.Title == "" {
		return Errorf(EINVALID, "entry title required")
	}
	if e.URL == "" {
		return Errorf(EINVALID, "entry URL required")
	}
	return nil
}

// Clone returns a deep copy of the entry. Tags are never nil on the copy.
func (e *Entry) Clone() *Entry {
	other := *e
	other.Tags = cloneTags(e.Tags)
	return &other
}

// Normalized returns a copy of the entry with every line break in its text
// fields and tags rewritten as "\n".
func (e *Entry) Normalized() *Entry {
	other := e.Clone()
	other.Title = NormalizeLineEndings(other.Title)
	other.URL = NormalizeLineEndings(other.URL)
	other.Description = NormalizeLineEndings(other.Description)
	other.Notes = NormalizeLineEndings(other.Notes)
	for i, tag := range other.Tags {
		other.Tags[i] = NormalizeLineEndings(tag)
	}
	return other
}

var lineEndingReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NormalizeLineEndings rewrites "\r\n" and lone "\r" as "\n".
// Stored entry text never contains a carriage return.
func NormalizeLineEndings(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	return lineEndingReplacer.Replace(s)
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return slices.Clone(tags)
}

// EntryService represents a service for managing entries.
type EntryService interface {
	// CreateEntry validates the draft and appends a new entry built from it.
	// ID and Date are assigned by the service.
	// Returns EINVALID if the title or URL is empty.
	CreateEntry(ctx context.Context, draft *Draft) (*Entry, error)

	// FindEntryByID retrieves an entry by ID.
	// Returns ENOTFOUND if the entry does not exist.
	FindEntryByID(ctx context.Context, id string) (*Entry, error)

	// FindEntries retrieves entries matching the filter, in insertion order.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error)

	// DeleteEntry removes an entry. Deleting an unknown ID is a no-op.
	DeleteEntry(ctx context.Context, id string) error
}

// Slot is a single named location holding the serialized entry collection
// between sessions.
type Slot interface {
	// Read returns the stored bytes.
	// Returns ENOTFOUND if nothing has been written yet.
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the stored bytes.
	Write(ctx context.Context, data []byte) error
}

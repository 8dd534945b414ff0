// Package store provides the in-memory entry collection mirrored to a
// rechlog.Slot after every change.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/fwojciec/rechlog"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ rechlog.EntryService = (*EntryService)(nil)

// EntryService implements rechlog.EntryService over a single slot.
// The whole collection is serialized and written synchronously after each
// successful mutation.
type EntryService struct {
	slot rechlog.Slot

	// Logger receives warnings about unreadable saved data.
	Logger *slog.Logger

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// NewID returns a fresh entry identifier. Defaults to a UUIDv7 string.
	NewID func() (string, error)

	mu      sync.Mutex
	entries []*rechlog.Entry
}

// NewEntryService creates a new EntryService persisting to slot.
// Call Load before use to restore a previous session.
func NewEntryService(slot rechlog.Slot) *EntryService {
	return &EntryService{
		slot:   slot,
		Logger: slog.New(slog.DiscardHandler),
		Now:    time.Now,
		NewID:  newUUIDv7,
	}
}

func newUUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Load replaces the in-memory collection with the slot contents.
// Missing or unreadable contents yield an empty collection.
func (s *EntryService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil

	data, err := s.slot.Read(ctx)
	switch rechlog.ErrorCode(err) {
	case "":
	case rechlog.ENOTFOUND:
		return nil
	case rechlog.EINVALID:
		s.Logger.Warn("ignoring unreadable saved entries", "error", err)
		return nil
	default:
		return fmt.Errorf("failed to read saved entries: %w", err)
	}

	var entries []*rechlog.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.Logger.Warn("ignoring unreadable saved entries", "error", err, "bytes", len(data))
		return nil
	}

	for _, e := range entries {
		if e == nil {
			continue
		}
		s.entries = append(s.entries, e.Normalized())
	}
	return nil
}

// CreateEntry appends a new entry built from the draft.
func (s *EntryService) CreateEntry(ctx context.Context, draft *rechlog.Draft) (*rechlog.Entry, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.uniqueID()
	if err != nil {
		return nil, err
	}

	entry := draft.Entry(id, s.Now().UTC().Format(rechlog.DateLayout))

	prev := s.entries
	s.entries = append(slices.Clip(s.entries), entry)
	if err := s.persist(ctx); err != nil {
		s.entries = prev
		return nil, err
	}

	return entry.Clone(), nil
}

// uniqueID draws identifiers until one is unused. Caller must hold mu.
func (s *EntryService) uniqueID() (string, error) {
	for {
		id, err := s.NewID()
		if err != nil {
			return "", fmt.Errorf("failed to generate entry ID: %w", err)
		}
		if id != "" && s.indexOf(id) < 0 {
			return id, nil
		}
	}
}

// FindEntryByID retrieves an entry by ID.
func (s *EntryService) FindEntryByID(_ context.Context, id string) (*rechlog.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, rechlog.Errorf(rechlog.ENOTFOUND, "entry not found")
	}
	return s.entries[i].Clone(), nil
}

// FindEntries retrieves entries matching the filter in insertion order.
func (s *EntryService) FindEntries(_ context.Context, filter rechlog.EntryFilter) ([]*rechlog.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := rechlog.FilterEntries(s.entries, filter)
	for i, e := range matched {
		matched[i] = e.Clone()
	}
	return matched, nil
}

// DeleteEntry removes the entry with the given ID. Unknown IDs are ignored
// and nothing is written.
func (s *EntryService) DeleteEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	prev := s.entries
	s.entries = slices.Delete(slices.Clone(s.entries), i, i+1)
	if err := s.persist(ctx); err != nil {
		s.entries = prev
		return err
	}
	return nil
}

// Len returns the number of stored entries.
func (s *EntryService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *EntryService) indexOf(id string) int {
	return slices.IndexFunc(s.entries, func(e *rechlog.Entry) bool {
		return e.ID == id
	})
}

// persist writes the whole collection to the slot. Caller must hold mu.
func (s *EntryService) persist(ctx context.Context) error {
	entries := s.entries
	if entries == nil {
		entries = []*rechlog.Entry{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}
	if err := s.slot.Write(ctx, data); err != nil {
		return fmt.Errorf("failed to save entries: %w", err)
	}
	return nil
}

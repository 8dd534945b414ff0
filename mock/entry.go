package mock

import (
	"context"

	"github.com/fwojciec/rechlog"
)

var _ rechlog.EntryService = (*EntryService)(nil)

// EntryService is a mock implementation of rechlog.EntryService.
type EntryService struct {
	CreateEntryFn   func(ctx context.Context, draft *rechlog.Draft) (*rechlog.Entry, error)
	FindEntryByIDFn func(ctx context.Context, id string) (*rechlog.Entry, error)
	FindEntriesFn   func(ctx context.Context, filter rechlog.EntryFilter) ([]*rechlog.Entry, error)
	DeleteEntryFn   func(ctx context.Context, id string) error
}

func (s *EntryService) CreateEntry(ctx context.Context, draft *rechlog.Draft) (*rechlog.Entry, error) {
	return s.CreateEntryFn(ctx, draft)
}

func (s *EntryService) FindEntryByID(ctx context.Context, id string) (*rechlog.Entry, error) {
	return s.FindEntryByIDFn(ctx, id)
}

func (s *EntryService) FindEntries(ctx context.Context, filter rechlog.EntryFilter) ([]*rechlog.Entry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *EntryService) DeleteEntry(ctx context.Context, id string) error {
	return s.DeleteEntryFn(ctx, id)
}

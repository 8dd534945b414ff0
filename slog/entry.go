package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rechlog"
)

// Ensure LoggingEntryService implements rechlog.EntryService.
var _ rechlog.EntryService = (*LoggingEntryService)(nil)

// LoggingEntryService wraps an EntryService with debug logging.
type LoggingEntryService struct {
	next   rechlog.EntryService
	logger *slog.Logger
}

// NewLoggingEntryService creates a new LoggingEntryService.
func NewLoggingEntryService(next rechlog.EntryService, logger *slog.Logger) *LoggingEntryService {
	return &LoggingEntryService{next: next, logger: logger}
}

// CreateEntry delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) CreateEntry(ctx context.Context, draft *rechlog.Draft) (entry *rechlog.Entry, err error) {
	defer func(begin time.Time) {
		var id string
		if entry != nil {
			id = entry.ID
		}
		s.logger.Info("create entry",
			"id", id,
			"title", draft.Title,
			"tags", len(draft.Tags),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateEntry(ctx, draft)
}

// FindEntryByID delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) FindEntryByID(ctx context.Context, id string) (entry *rechlog.Entry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find entry",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindEntryByID(ctx, id)
}

// FindEntries delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) FindEntries(ctx context.Context, filter rechlog.EntryFilter) (entries []*rechlog.Entry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find entries",
			"search", filter.Search,
			"category", string(filter.Category),
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindEntries(ctx, filter)
}

// DeleteEntry delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) DeleteEntry(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete entry",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteEntry(ctx, id)
}

// Package slog provides logging decorators for rechlog services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rechlog"
)

// Ensure LoggingSlot implements rechlog.Slot.
var _ rechlog.Slot = (*LoggingSlot)(nil)

// LoggingSlot wraps a Slot with debug logging.
type LoggingSlot struct {
	next   rechlog.Slot
	logger *slog.Logger
}

// NewLoggingSlot creates a new LoggingSlot.
func NewLoggingSlot(next rechlog.Slot, logger *slog.Logger) *LoggingSlot {
	return &LoggingSlot{next: next, logger: logger}
}

// Read delegates to the wrapped slot and logs the operation.
func (s *LoggingSlot) Read(ctx context.Context) (data []byte, err error) {
	defer func(begin time.Time) {
		s.logger.Info("slot read",
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Read(ctx)
}

// Write delegates to the wrapped slot and logs the operation.
func (s *LoggingSlot) Write(ctx context.Context, data []byte) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("slot write",
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Write(ctx, data)
}

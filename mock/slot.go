package mock

import (
	"context"

	"github.com/fwojciec/rechlog"
)

var _ rechlog.Slot = (*Slot)(nil)

// Slot is a mock implementation of rechlog.Slot.
type Slot struct {
	ReadFn  func(ctx context.Context) ([]byte, error)
	WriteFn func(ctx context.Context, data []byte) error
}

func (s *Slot) Read(ctx context.Context) ([]byte, error) {
	return s.ReadFn(ctx)
}

func (s *Slot) Write(ctx context.Context, data []byte) error {
	return s.WriteFn(ctx, data)
}

// MemorySlot is an in-memory rechlog.Slot that records every write.
type MemorySlot struct {
	Data   []byte
	Writes int
}

var _ rechlog.Slot = (*MemorySlot)(nil)

func (s *MemorySlot) Read(_ context.Context) ([]byte, error) {
	if s.Data == nil {
		return nil, rechlog.Errorf(rechlog.ENOTFOUND, "slot is empty")
	}
	return append([]byte(nil), s.Data...), nil
}

func (s *MemorySlot) Write(_ context.Context, data []byte) error {
	s.Data = append([]byte{}, data...)
	s.Writes++
	return nil
}

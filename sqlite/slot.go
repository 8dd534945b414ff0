package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/rechlog"
)

// DefaultSlotKey names the slot holding the entry collection.
const DefaultSlotKey = "researchEntries"

// Compile-time interface verification.
var _ rechlog.Slot = (*Slot)(nil)

// Slot implements rechlog.Slot as one row of the slots table.
// Each write stores an xxHash of the value, checked again on read.
type Slot struct {
	db  *DB
	key string
}

// NewSlot creates a new Slot stored under key.
func NewSlot(db *DB, key string) *Slot {
	return &Slot{db: db, key: key}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// Read returns the stored value.
// Returns ENOTFOUND if the slot was never written and EINVALID if the stored
// value no longer matches its hash.
func (s *Slot) Read(ctx context.Context) ([]byte, error) {
	var value []byte
	var hash string

	err := s.db.QueryRowContext(ctx, `
		SELECT value, content_hash
		FROM slots
		WHERE key = ?
	`, s.key).Scan(&value, &hash)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, rechlog.Errorf(rechlog.ENOTFOUND, "slot %q is empty", s.key)
	}
	if err != nil {
		return nil, err
	}

	if hashContent(value) != hash {
		return nil, rechlog.Errorf(rechlog.EINVALID, "slot %q failed its integrity check", s.key)
	}

	return value, nil
}

// Write replaces the stored value.
func (s *Slot) Write(ctx context.Context, data []byte) error {
	if data == nil {
		data = []byte{}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO slots (key, value, content_hash, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			content_hash = excluded.content_hash,
			updated_at = excluded.updated_at
	`, s.key, data, hashContent(data), time.Now().UTC().Format(time.RFC3339))

	return err
}

// UpdatedAt returns when the slot was last written.
// Returns ENOTFOUND if the slot was never written.
func (s *Slot) UpdatedAt(ctx context.Context) (time.Time, error) {
	var updatedAt string

	err := s.db.QueryRowContext(ctx, "SELECT updated_at FROM slots WHERE key = ?", s.key).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, rechlog.Errorf(rechlog.ENOTFOUND, "slot %q is empty", s.key)
	}
	if err != nil {
		return time.Time{}, err
	}

	return parseRFC3339(updatedAt, "updated_at")
}

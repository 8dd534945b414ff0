package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/rechlog"
	"github.com/fwojciec/rechlog/mock"
	recslog "github.com/fwojciec/rechlog/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingEntryService_CreateEntry(t *testing.T) {
	t.Parallel()

	t.Run("logs created ID and title", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.EntryService{
			CreateEntryFn: func(_ context.Context, draft *rechlog.Draft) (*rechlog.Entry, error) {
				return draft.Entry("id-1", "2025-01-15"), nil
			},
		}

		svc := recslog.NewLoggingEntryService(inner, logger)
		entry, err := svc.CreateEntry(context.Background(), &rechlog.Draft{Title: "Gait", URL: "http://x"})

		require.NoError(t, err)
		assert.Equal(t, "id-1", entry.ID)
		output := buf.String()
		assert.Contains(t, output, "create entry")
		assert.Contains(t, output, "id=id-1")
		assert.Contains(t, output, "title=Gait")
	})

	t.Run("logs error when validation fails", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.EntryService{
			CreateEntryFn: func(_ context.Context, draft *rechlog.Draft) (*rechlog.Entry, error) {
				return nil, draft.Validate()
			},
		}

		svc := recslog.NewLoggingEntryService(inner, logger)
		_, err := svc.CreateEntry(context.Background(), &rechlog.Draft{})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=")
	})
}

func TestLoggingEntryService_FindEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.EntryService{
		FindEntriesFn: func(context.Context, rechlog.EntryFilter) ([]*rechlog.Entry, error) {
			return []*rechlog.Entry{{ID: "1"}, {ID: "2"}}, nil
		},
	}

	svc := recslog.NewLoggingEntryService(inner, logger)
	entries, err := svc.FindEntries(context.Background(), rechlog.EntryFilter{Search: "gait", Category: rechlog.CategoryAnatomy})

	require.NoError(t, err)
	assert.Len(t, entries, 2)
	output := buf.String()
	assert.Contains(t, output, "find entries")
	assert.Contains(t, output, "search=gait")
	assert.Contains(t, output, "category=Anatomie")
	assert.Contains(t, output, "count=2")
}

func TestLoggingEntryService_Delegates(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	var deleted string
	inner := &mock.EntryService{
		FindEntryByIDFn: func(_ context.Context, id string) (*rechlog.Entry, error) {
			return &rechlog.Entry{ID: id}, nil
		},
		DeleteEntryFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	svc := recslog.NewLoggingEntryService(inner, logger)

	entry, err := svc.FindEntryByID(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", entry.ID)

	require.NoError(t, svc.DeleteEntry(context.Background(), "abc"))
	assert.Equal(t, "abc", deleted)

	output := buf.String()
	assert.Contains(t, output, "find entry")
	assert.Contains(t, output, "delete entry")
}

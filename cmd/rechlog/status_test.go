package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/rechlog"
	main "github.com/fwojciec/rechlog/cmd/rechlog"
	"github.com/fwojciec/rechlog/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports location and count", func(t *testing.T) {
		t.Parallel()

		entries := &mock.EntryService{
			FindEntriesFn: func(context.Context, rechlog.EntryFilter) ([]*rechlog.Entry, error) {
				return []*rechlog.Entry{{ID: "1"}, {ID: "2"}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Entries:  entries,
			Slot:     &mock.MemorySlot{},
			Location: "file /tmp/entries.json",
		}

		err := (&main.StatusCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Storage: file /tmp/entries.json")
		assert.Contains(t, stdout.String(), "Entries: 2")
		assert.NotContains(t, stdout.String(), "Last saved", "memory slot has no timestamp")
	})
}

func TestCategoriesCmd_Run(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: &bytes.Buffer{},
	}

	err := (&main.CategoriesCmd{}).Run(deps)

	require.NoError(t, err)
	for _, c := range rechlog.Categories {
		assert.Contains(t, stdout.String(), string(c))
	}
	for _, l := range rechlog.EvidenceLevels {
		assert.Contains(t, stdout.String(), string(l))
	}
}

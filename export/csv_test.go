package export_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/fwojciec/rechlog"
	"github.com/fwojciec/rechlog/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV_Metadata(t *testing.T) {
	t.Parallel()

	exp := export.NewCSV()

	assert.Equal(t, "recherches_biomedicales.csv", exp.Filename())
	assert.Equal(t, "text/csv;charset=utf-8", exp.ContentType())
}

func TestCSV_Export(t *testing.T) {
	t.Parallel()

	t.Run("writes header and one row per entry", func(t *testing.T) {
		t.Parallel()

		entries := []*rechlog.Entry{
			{ID: "1", Title: "A", URL: "http://x", Date: "2025-01-15", Tags: []string{"t1", "t2"}},
			{ID: "2", Title: "B", URL: "http://y", Date: "2025-01-16", Tags: []string{}},
		}

		var buf bytes.Buffer
		require.NoError(t, export.NewCSV().Export(&buf, entries))

		want := "id,title,url,date,description,evidenceLevel,category,notes,tags\r\n" +
			"1,A,http://x,2025-01-15,,,,,\"t1,t2\"\r\n" +
			"2,B,http://y,2025-01-16,,,,,\r\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("writes only the header for no entries", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, export.NewCSV().Export(&buf, nil))

		assert.Equal(t, "id,title,url,date,description,evidenceLevel,category,notes,tags\r\n", buf.String())
	})

	t.Run("standard reader recovers title and tags", func(t *testing.T) {
		t.Parallel()

		entries := []*rechlog.Entry{
			{ID: "1", Title: "A", URL: "http://x", Tags: []string{"t1", "t2"}},
		}

		var buf bytes.Buffer
		require.NoError(t, export.NewCSV().Export(&buf, entries))

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 2)

		row := records[1]
		assert.Equal(t, "A", row[1])
		assert.Equal(t, []string{"t1", "t2"}, strings.Split(row[8], ","))
	})
}

func TestCSV_RoundTrip(t *testing.T) {
	t.Parallel()

	entries := []*rechlog.Entry{
		{
			ID:            "1",
			Title:         "Étude \"pilote\", phase 1",
			URL:           "http://x",
			Date:          "2025-01-15",
			Description:   "multi\nline",
			EvidenceLevel: rechlog.EvidenceMetaAnalysis,
			Category:      rechlog.CategoryClinicalBiomechanics,
			Notes:         " leading space",
			Tags:          []string{"t1", "with, comma", "with \"quote\"", "t1"},
		},
		{ID: "2", Title: "B", URL: "http://y", Tags: []string{}},
		{ID: "3", Title: "C", URL: "http://z", Tags: []string{""}},
	}

	var buf bytes.Buffer
	require.NoError(t, export.NewCSV().Export(&buf, entries))

	got, err := export.ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestCSV_RoundTrip_LineEndings(t *testing.T) {
	t.Parallel()

	draft := &rechlog.Draft{
		Title:       "A",
		URL:         "http://x",
		Description: "a\rb",
		Notes:       "x\r\ny",
		Tags:        []string{"t\r1", "t\r\n2"},
	}
	entry := draft.Entry("1", "2025-01-15")

	var buf bytes.Buffer
	require.NoError(t, export.NewCSV().Export(&buf, []*rechlog.Entry{entry}))

	got, err := export.ReadCSV(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a\nb", got[0].Description)
	assert.Equal(t, "x\ny", got[0].Notes)
	assert.Equal(t, []string{"t\n1", "t\n2"}, got[0].Tags)
	assert.Equal(t, entry, got[0])
}

func TestCSV_Export_CarriageReturn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry *rechlog.Entry
		field string
	}{
		{name: "description", entry: &rechlog.Entry{ID: "1", Description: "a\rb"}, field: "description"},
		{name: "notes", entry: &rechlog.Entry{ID: "1", Notes: "x\r\ny"}, field: "notes"},
		{name: "tag", entry: &rechlog.Entry{ID: "1", Tags: []string{"t\r1"}}, field: "tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			err := export.NewCSV().Export(&buf, []*rechlog.Entry{{ID: "0", Title: "ok"}, tt.entry})

			require.Error(t, err)
			assert.Equal(t, rechlog.EINVALID, rechlog.ErrorCode(err))
			assert.Contains(t, rechlog.ErrorMessage(err), tt.field)
			assert.Empty(t, buf.String(), "nothing is written for a rejected export")
		})
	}
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	t.Run("locates columns by header name", func(t *testing.T) {
		t.Parallel()

		input := "tags,title,extra\n\"a,b\",Reordered,ignored\n"

		got, err := export.ReadCSV(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Reordered", got[0].Title)
		assert.Equal(t, []string{"a", "b"}, got[0].Tags)
		assert.Empty(t, got[0].URL)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := export.ReadCSV(strings.NewReader(""))

		assert.Equal(t, rechlog.EINVALID, rechlog.ErrorCode(err))
	})

	t.Run("rejects malformed rows", func(t *testing.T) {
		t.Parallel()

		_, err := export.ReadCSV(strings.NewReader("id,title\n1,\"unterminated\n"))

		assert.Equal(t, rechlog.EINVALID, rechlog.ErrorCode(err))
	})
}

func TestEncodeTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tags []string
		want string
	}{
		{name: "no tags", tags: nil, want: ""},
		{name: "single tag", tags: []string{"gait"}, want: "gait"},
		{name: "plain list", tags: []string{"t1", "t2"}, want: "t1,t2"},
		{name: "tag with comma is quoted", tags: []string{"a,b", "c"}, want: "\"a,b\",c"},
		{name: "single empty tag is quoted", tags: []string{""}, want: `""`},
		{name: "two empty tags", tags: []string{"", ""}, want: ","},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := export.EncodeTags(tt.tags)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			back, err := export.DecodeTags(got)
			require.NoError(t, err)
			if len(tt.tags) == 0 {
				assert.Empty(t, back)
			} else {
				assert.Equal(t, tt.tags, back)
			}
		})
	}
}

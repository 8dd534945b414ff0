package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/rechlog"
)

// Ensure CSV implements rechlog.Exporter at compile time.
var _ rechlog.Exporter = (*CSV)(nil)

// CSVHeader is the header row of CSV exports. It mirrors the JSON field names
// of rechlog.Entry.
var CSVHeader = []string{"id", "title", "url", "date", "description", "evidenceLevel", "category", "notes", "tags"}

// CSV exports entries as comma-separated values, one row per entry.
type CSV struct{}

// NewCSV returns a CSV exporter.
func NewCSV() *CSV {
	return &CSV{}
}

func (*CSV) Filename() string    { return baseFilename + ".csv" }
func (*CSV) ContentType() string { return CSVContentType }

// Export writes the header row followed by one row per entry.
// Rows end in CRLF, so a carriage return inside a field can not be read back
// and is rejected with EINVALID before anything is written.
func (*CSV) Export(w io.Writer, entries []*rechlog.Entry) error {
	records := make([][]string, 0, len(entries))
	for _, e := range entries {
		record, err := csvRecord(e)
		if err != nil {
			return err
		}
		records = append(records, record)
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, record := range records {
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func csvRecord(e *rechlog.Entry) ([]string, error) {
	tags, err := EncodeTags(e.Tags)
	if err != nil {
		return nil, err
	}
	record := []string{
		e.ID,
		e.Title,
		e.URL,
		e.Date,
		e.Description,
		string(e.EvidenceLevel),
		string(e.Category),
		e.Notes,
		tags,
	}
	for i, field := range record {
		if strings.ContainsRune(field, '\r') {
			return nil, rechlog.Errorf(rechlog.EINVALID, "entry %q: %s contains a carriage return", e.ID, CSVHeader[i])
		}
	}
	return record, nil
}

// EncodeTags packs tags into a single field as one CSV record, so a plain
// list reads "t1,t2" and tags containing commas or quotes are quoted.
func EncodeTags(tags []string) (string, error) {
	if len(tags) == 0 {
		return "", nil
	}
	// A lone empty field is written bare, which would read back as no tags.
	if len(tags) == 1 && tags[0] == "" {
		return `""`, nil
	}

	var b strings.Builder
	cw := csv.NewWriter(&b)
	if err := cw.Write(tags); err != nil {
		return "", err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// DecodeTags is the inverse of EncodeTags.
func DecodeTags(s string) ([]string, error) {
	if s == "" {
		return []string{}, nil
	}

	r := csv.NewReader(strings.NewReader(s))
	r.FieldsPerRecord = -1
	tags, err := r.Read()
	if err != nil {
		return nil, rechlog.Errorf(rechlog.EINVALID, "malformed tags %q: %v", s, err)
	}
	return tags, nil
}

// ReadCSV parses a CSV export back into entries. Columns are located by
// header name; unknown columns are ignored and missing ones stay empty.
func ReadCSV(r io.Reader) ([]*rechlog.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, rechlog.Errorf(rechlog.EINVALID, "missing CSV header")
	}
	if err != nil {
		return nil, rechlog.Errorf(rechlog.EINVALID, "malformed CSV header: %v", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimPrefix(name, "\ufeff")] = i
	}
	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	entries := []*rechlog.Entry{}
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, rechlog.Errorf(rechlog.EINVALID, "malformed CSV row %d: %v", line, err)
		}

		tags, err := DecodeTags(field(record, "tags"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}

		entries = append(entries, &rechlog.Entry{
			ID:            field(record, "id"),
			Title:         field(record, "title"),
			URL:           field(record, "url"),
			Date:          field(record, "date"),
			Description:   field(record, "description"),
			EvidenceLevel: rechlog.EvidenceLevel(field(record, "evidenceLevel")),
			Category:      rechlog.Category(field(record, "category")),
			Notes:         field(record, "notes"),
			Tags:          tags,
		})
	}
	return entries, nil
}

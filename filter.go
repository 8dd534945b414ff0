package rechlog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// EntryFilter represents a filter for FindEntries.
// The zero value matches every entry.
type EntryFilter struct {
	// Search is matched case-insensitively against title, description and tags.
	Search string `json:"search"`

	// Category, if set, must equal the entry category exactly.
	Category Category `json:"category"`
}

// Match returns true if the entry passes the filter.
func (f EntryFilter) Match(e *Entry) bool {
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Search == "" {
		return true
	}

	term := fold(f.Search)
	if strings.Contains(fold(e.Title), term) || strings.Contains(fold(e.Description), term) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(fold(tag), term) {
			return true
		}
	}
	return false
}

// FilterEntries returns the entries passing the filter, preserving order.
// The input slice is not modified.
func FilterEntries(entries []*Entry, filter EntryFilter) []*Entry {
	result := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		if filter.Match(e) {
			result = append(result, e)
		}
	}
	return result
}

// fold normalizes s to NFC and applies Unicode case folding, so composed and
// decomposed accents compare equal regardless of case.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

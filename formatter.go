package rechlog

import (
	"strings"
)

// FormatEntry formats an entry for display, one labeled field per line.
// Empty optional fields are omitted.
func FormatEntry(e *Entry) string {
	var b strings.Builder
	b.WriteString(e.Title)
	b.WriteString("\n")

	line := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\n")
	}
	line("ID", e.ID)
	line("URL", e.URL)
	line("Date", e.Date)
	line("Catégorie", string(e.Category))
	line("Niveau de preuve", string(e.EvidenceLevel))
	line("Description", e.Description)
	line("Notes", e.Notes)
	line("Tags", strings.Join(e.Tags, ", "))

	return strings.TrimSuffix(b.String(), "\n")
}

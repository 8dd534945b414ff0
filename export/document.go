package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/rechlog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ensure Document implements rechlog.Exporter at compile time.
var _ rechlog.Exporter = (*Document)(nil)

// DocumentHeading opens every document export.
const DocumentHeading = "JOURNAL DE RECHERCHE BIOMÉDICALE"

// Document exports entries as a plain-text report. The file is named and
// typed as a word-processing document but its bytes are plain UTF-8 text,
// not an Office Open XML package.
type Document struct{}

// NewDocument returns a Document exporter.
func NewDocument() *Document {
	return &Document{}
}

func (*Document) Filename() string    { return baseFilename + ".docx" }
func (*Document) ContentType() string { return DocumentContentType }

// Export writes the heading followed by one numbered block per entry.
func (*Document) Export(w io.Writer, entries []*rechlog.Entry) error {
	bw := bufio.NewWriter(w)
	upper := cases.Upper(language.French)

	fmt.Fprintf(bw, "%s\n\n", DocumentHeading)
	for i, e := range entries {
		fmt.Fprintf(bw, "%d. %s\n", i+1, upper.String(e.Title))
		fmt.Fprintf(bw, "URL: %s\n", e.URL)
		fmt.Fprintf(bw, "Date: %s\n", e.Date)
		fmt.Fprintf(bw, "Catégorie: %s\n", e.Category)
		fmt.Fprintf(bw, "Niveau de preuve: %s\n", e.EvidenceLevel)
		fmt.Fprintf(bw, "Description: %s\n", e.Description)
		fmt.Fprintf(bw, "Notes: %s\n", e.Notes)
		fmt.Fprintf(bw, "Tags: %s\n\n", strings.Join(e.Tags, ", "))
	}

	return bw.Flush()
}

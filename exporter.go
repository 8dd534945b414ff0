package rechlog

import "io"

// Exporter serializes entries into a downloadable file.
type Exporter interface {
	// Filename is the suggested name of the produced file.
	Filename() string

	// ContentType is the declared MIME type of the produced file.
	ContentType() string

	// Export writes every entry to w.
	Export(w io.Writer, entries []*Entry) error
}

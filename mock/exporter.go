package mock

import (
	"io"

	"github.com/fwojciec/rechlog"
)

var _ rechlog.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of rechlog.Exporter.
type Exporter struct {
	FilenameFn    func() string
	ContentTypeFn func() string
	ExportFn      func(w io.Writer, entries []*rechlog.Entry) error
}

func (e *Exporter) Filename() string {
	return e.FilenameFn()
}

func (e *Exporter) ContentType() string {
	return e.ContentTypeFn()
}

func (e *Exporter) Export(w io.Writer, entries []*rechlog.Entry) error {
	return e.ExportFn(w, entries)
}

package fs

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/rechlog"
	"golang.org/x/sync/errgroup"
)

// ExportWriter saves exported files into a directory.
type ExportWriter struct {
	dir string
}

// NewExportWriter creates a new ExportWriter writing into dir.
func NewExportWriter(dir string) *ExportWriter {
	return &ExportWriter{dir: dir}
}

// WriteExport renders entries with exp and saves them under exp.Filename().
// It returns the path of the written file. Nothing is written if rendering fails.
func (w *ExportWriter) WriteExport(ctx context.Context, exp rechlog.Exporter, entries []*rechlog.Entry) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := exp.Export(&buf, entries); err != nil {
		return "", err
	}

	path := filepath.Join(w.dir, exp.Filename())
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}

// WriteExports renders entries with every exporter concurrently and returns
// the written paths in exporter order. The first failure cancels the rest.
func (w *ExportWriter) WriteExports(ctx context.Context, exps []rechlog.Exporter, entries []*rechlog.Entry) ([]string, error) {
	paths := make([]string, len(exps))

	g, gctx := errgroup.WithContext(ctx)
	for i, exp := range exps {
		g.Go(func() error {
			path, err := w.WriteExport(gctx, exp, entries)
			if err != nil {
				return fmt.Errorf("%s: %w", exp.Filename(), err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

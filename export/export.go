// Package export renders entry collections as downloadable files.
package export

// Shared filename stem of every export.
const baseFilename = "recherches_biomedicales"

// MIME types declared for exported files.
const (
	CSVContentType      = "text/csv;charset=utf-8"
	DocumentContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

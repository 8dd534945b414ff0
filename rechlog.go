// Package rechlog provides a local, CLI-based log of research-article
// references. Entries carry a title, a source URL, an evidence level, a
// category, tags and free-form notes. They can be searched, filtered by
// category and exported to CSV or to a plain-text report.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, fs/, slog/).
package rechlog

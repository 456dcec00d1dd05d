// Package seed copies files and directories between spaces based on
// configured include/exclude glob patterns.
//
// Patterns that could reference paths outside the source or
// destination root (absolute paths, any form of .. traversal) are
// never expanded: they are logged and skipped, for includes and
// excludes alike. Candidate selection is shared between dry-run and
// real runs, so a dry run reports exactly what a real run would copy.
package seed

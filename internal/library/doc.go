// Package library indexes locally available music files by filename stem.
//
// The Index owns all path storage in a single arena slice; stem lookups yield
// arena offsets rather than copied strings, and candidate order within a stem
// follows scan insertion order. The package also provides the SQLite-backed
// Catalog recording the last scan for inspection via the CLI.
package library

// Package scanner walks the music root and classifies files by extension.
//
// The scan produces flat path lists (music files and playlist files) so the
// index and matcher can be exercised against synthetic paths in tests without
// touching a real filesystem.
package scanner

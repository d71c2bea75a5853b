// Package playlist extracts references from m3u text, assembles resolved
// playlists, and serializes them in plain or extended m3u form.
//
// Extraction and assembly are pure functions over already-loaded text and the
// library index; file I/O happens only in WriteFile and in the callers that
// read playlist text.
package playlist

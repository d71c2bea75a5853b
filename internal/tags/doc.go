// Package tags reads song metadata (title, artist, duration) from audio files.
//
// Lookup is best-effort: any file that cannot be opened or parsed yields a
// zero SongMetadata, never an error. Only ID3v2 tags (MP3) are parsed; other
// music formats fall through to zero values, which the extended playlist
// writer renders as empty fields.
package tags

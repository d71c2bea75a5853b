package tags

import (
	"os"
	"strconv"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
)

// SongMetadata holds the per-song fields used by extended playlist directives.
type SongMetadata struct {
	Title    string
	Artist   string
	Duration int64 // seconds
}

// Read extracts metadata from the audio file at path. ID3v2 is tried first,
// then the container formats (MP4, FLAC, OGG). Failures of any kind return a
// zero SongMetadata.
func Read(path string) SongMetadata {
	if meta, ok := readID3(path); ok {
		return meta
	}
	if meta, ok := readContainer(path); ok {
		return meta
	}
	return SongMetadata{}
}

func readID3(path string) (SongMetadata, bool) {
	id3, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return SongMetadata{}, false
	}
	defer id3.Close()

	// Files without an ID3 header parse as an empty tag; let the container
	// readers have a look instead.
	if !id3.HasFrames() {
		return SongMetadata{}, false
	}
	return SongMetadata{
		Title:    id3.Title(),
		Artist:   id3.Artist(),
		Duration: durationSeconds(id3),
	}, true
}

// readContainer handles the tag atoms and comment blocks of MP4 (m4a, m4b),
// FLAC, and OGG files. Those formats carry no standard length field, so the
// duration stays zero.
func readContainer(path string) (SongMetadata, bool) {
	file, err := os.Open(path)
	if err != nil {
		return SongMetadata{}, false
	}
	defer file.Close()

	meta, err := tag.ReadFrom(file)
	if err != nil {
		return SongMetadata{}, false
	}
	return SongMetadata{
		Title:  meta.Title(),
		Artist: meta.Artist(),
	}, true
}

// durationSeconds reads the TLEN frame, which carries the track length in
// milliseconds. Absent or malformed frames yield zero.
func durationSeconds(id3 *id3v2.Tag) int64 {
	frame := id3.GetTextFrame(id3.CommonID("Length"))
	text := strings.TrimSpace(frame.Text)
	if text == "" {
		return 0
	}
	millis, err := strconv.ParseInt(text, 10, 64)
	if err != nil || millis < 0 {
		return 0
	}
	return millis / 1000
}

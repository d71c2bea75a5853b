package playlist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const extM3UHeader = "#EXTM3U"

// SongInfo carries the per-song fields emitted by extended directives. Zero
// values are written as-is when metadata is unavailable.
type SongInfo struct {
	Title           string
	Artist          string
	DurationSeconds int64
}

// TagReader supplies best-effort metadata for a local song path. It must not
// fail; unavailable metadata is represented by a zero SongInfo.
type TagReader func(path string) SongInfo

// EncodeM3U renders the plain format: one resolved path per line,
// newline-terminated, no header.
func EncodeM3U(pl Playlist) string {
	var b strings.Builder
	for _, song := range pl.Songs {
		b.WriteString(song)
		b.WriteByte('\n')
	}
	return b.String()
}

// EncodeExtM3U renders the extended format: the #EXTM3U header, then per song
// an #EXTINF directive with duration and "artist - title" followed by the
// resolved path.
func EncodeExtM3U(pl Playlist, read TagReader) string {
	var b strings.Builder
	b.WriteString(extM3UHeader)
	for _, song := range pl.Songs {
		var info SongInfo
		if read != nil {
			info = read(song)
		}
		fmt.Fprintf(&b, "\n#EXTINF:%d,%s - %s\n%s", info.DurationSeconds, info.Artist, info.Title, song)
	}
	return b.String()
}

// WriteFile writes content for pl into dir as "<name>.<ext>" and returns the
// written path.
func WriteFile(dir string, pl Playlist, ext string, content string) (string, error) {
	name := pl.Name + "." + strings.TrimPrefix(ext, ".")
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write playlist %q: %w", pl.Name, err)
	}
	return path, nil
}

package playlist

import (
	"playlink/internal/library"
	"playlink/internal/matcher"
)

// Playlist is a named, ordered sequence of resolved local song paths. Songs
// are arena-backed views into the library index and must not outlive it.
type Playlist struct {
	Name  string
	Songs []string
}

// Assemble resolves each reference against the index and collects the songs
// that resolved, in reference order. Unresolved references are dropped
// silently; there is no deduplication and no requirement that the result be
// non-empty.
func Assemble(ix *library.Index, name string, refs []string) Playlist {
	pl := Playlist{Name: name}
	for _, ref := range refs {
		if offset, ok := matcher.Resolve(ix, ref); ok {
			pl.Songs = append(pl.Songs, ix.Path(offset))
		}
	}
	return pl
}

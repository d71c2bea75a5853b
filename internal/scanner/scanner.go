package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// Music file extensions recognized by the scan. Matched case-sensitively
// against the raw extension string.
var musicExtensions = map[string]struct{}{
	".aac":  {},
	".flac": {},
	".m4a":  {},
	".m4b":  {},
	".mp3":  {},
	".ogg":  {},
	".opus": {},
}

var playlistExtensions = map[string]struct{}{
	".m3u": {},
}

// Scan holds the classified results of one directory walk. Paths are absolute
// and appear in walk order.
type Scan struct {
	Music     []string
	Playlists []string
}

// Run walks root recursively and classifies every regular file by extension.
// Files with unrecognized extensions are ignored. Entries that cannot be read
// are skipped rather than failing the walk. An invalid or non-resolvable root
// is the one fatal condition.
func Run(root string) (*Scan, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve music root %q: %w", root, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("resolve music root %q: %w", root, err)
	}

	scan := &Scan{}
	walkErr := filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == resolved {
				return err
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		switch ext := filepath.Ext(path); {
		case isMusicExtension(ext):
			scan.Music = append(scan.Music, path)
		case isPlaylistExtension(ext):
			scan.Playlists = append(scan.Playlists, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk music root %q: %w", resolved, walkErr)
	}
	return scan, nil
}

func isMusicExtension(ext string) bool {
	_, ok := musicExtensions[ext]
	return ok
}

func isPlaylistExtension(ext string) bool {
	_, ok := playlistExtensions[ext]
	return ok
}

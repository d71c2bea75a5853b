package playlist_test

import (
	"os"
	"path/filepath"
	"testing"

	"playlink/internal/playlist"
)

func TestEncodeM3U(t *testing.T) {
	pl := playlist.Playlist{
		Name:  "mix",
		Songs: []string{"/music/One.mp3", "/music/Two.flac"},
	}

	got := playlist.EncodeM3U(pl)
	want := "/music/One.mp3\n/music/Two.flac\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncodeM3UEmptyPlaylist(t *testing.T) {
	if got := playlist.EncodeM3U(playlist.Playlist{Name: "empty"}); got != "" {
		t.Fatalf("expected empty content, got %q", got)
	}
}

func TestEncodeExtM3U(t *testing.T) {
	pl := playlist.Playlist{
		Name:  "mix",
		Songs: []string{"/music/One.mp3", "/music/Two.flac"},
	}
	read := func(path string) playlist.SongInfo {
		if path == "/music/One.mp3" {
			return playlist.SongInfo{Title: "One", Artist: "Somebody", DurationSeconds: 120}
		}
		return playlist.SongInfo{}
	}

	got := playlist.EncodeExtM3U(pl, read)
	want := "#EXTM3U" +
		"\n#EXTINF:120,Somebody - One\n/music/One.mp3" +
		"\n#EXTINF:0, - \n/music/Two.flac"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncodeExtM3UNilReader(t *testing.T) {
	pl := playlist.Playlist{Name: "mix", Songs: []string{"/music/One.mp3"}}

	got := playlist.EncodeExtM3U(pl, nil)
	want := "#EXTM3U\n#EXTINF:0, - \n/music/One.mp3"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	pl := playlist.Playlist{Name: "mix", Songs: []string{"/music/One.mp3"}}

	path, err := playlist.WriteFile(dir, pl, "m3u", playlist.EncodeM3U(pl))
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "mix.m3u") {
		t.Fatalf("unexpected output path %q", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "/music/One.mp3\n" {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestWriteFileStripsExtensionDot(t *testing.T) {
	dir := t.TempDir()
	pl := playlist.Playlist{Name: "mix"}

	path, err := playlist.WriteFile(dir, pl, ".m3u", "")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "mix.m3u" {
		t.Fatalf("unexpected output name %q", filepath.Base(path))
	}
}

func TestWriteFileMissingDirectory(t *testing.T) {
	pl := playlist.Playlist{Name: "mix"}

	if _, err := playlist.WriteFile("/nonexistent-playlink-dir", pl, "m3u", ""); err == nil {
		t.Fatal("expected an error for a missing output directory")
	}
}
